package model

import "time"

// ClubeLeitura maps the clubes_leitura table.
type ClubeLeitura struct {
	ID          uint      `gorm:"primaryKey"                         json:"id"`
	Nome        string    `gorm:"type:varchar(200);not null"         json:"nome"`
	Descricao   string    `gorm:"type:text"                          json:"descricao"`
	PedagogoID  uint      `gorm:"not null"                           json:"pedagogo_id"`
	DataCriacao time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"data_criacao"`

	Pedagogo *Usuario      `gorm:"foreignKey:PedagogoID" json:"-"`
	Membros  []MembroClube `gorm:"foreignKey:ClubeID"    json:"-"`
}

// TableName sets the table name.
func (ClubeLeitura) TableName() string { return "clubes_leitura" }

// MembroClube maps the membros_clube table. Composite key: a user joins a club at
// most once.
type MembroClube struct {
	ClubeID     uint      `gorm:"primaryKey;autoIncrement:false"     json:"clube_id"`
	UsuarioID   uint      `gorm:"primaryKey;autoIncrement:false"     json:"usuario_id"`
	DataEntrada time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"data_entrada"`

	Usuario *Usuario `gorm:"foreignKey:UsuarioID" json:"usuario,omitempty"`
}

// TableName sets the table name.
func (MembroClube) TableName() string { return "membros_clube" }
