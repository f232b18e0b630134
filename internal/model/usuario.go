package model

import "time"

// User roles. The role is fixed at creation.
const (
	TipoAluno    = "aluno"
	TipoPedagogo = "pedagogo"
)

// Usuario maps the usuarios table.
type Usuario struct {
	ID          uint      `gorm:"primaryKey"                                 json:"id"`
	Nome        string    `gorm:"type:varchar(200);not null"                 json:"nome"`
	Email       string    `gorm:"type:varchar(120);not null;uniqueIndex"     json:"email"`
	SenhaHash   string    `gorm:"type:varchar(255);not null"                 json:"-"`
	TipoUsuario string    `gorm:"type:varchar(20);not null"                  json:"tipo_usuario"`
	EscolaID    uint      `gorm:"not null"                                   json:"escola_id"`
	DataCriacao time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"         json:"data_criacao"`

	Escola   *Escola   `gorm:"foreignKey:EscolaID"  json:"escola,omitempty"`
	Leituras []Leitura `gorm:"foreignKey:UsuarioID" json:"-"`
}

// TableName sets the table name.
func (Usuario) TableName() string { return "usuarios" }

// IsPedagogo reports whether the user holds the staff role.
func (u *Usuario) IsPedagogo() bool { return u.TipoUsuario == TipoPedagogo }
