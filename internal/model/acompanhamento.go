package model

import "time"

// AcompanhamentoPedagogico maps the acompanhamento_pedagogico table. A mentoring
// record written by a pedagogue about a student.
type AcompanhamentoPedagogico struct {
	ID              uint      `gorm:"primaryKey"                         json:"id"`
	AlunoID         uint      `gorm:"not null"                           json:"aluno_id"`
	PedagogoID      uint      `gorm:"not null"                           json:"pedagogo_id"`
	Data            time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"data"`
	Observacoes     string    `gorm:"type:text"                          json:"observacoes"`
	NotaEngajamento int       `json:"nota_engajamento"` // scale 1..10

	Aluno    *Usuario `gorm:"foreignKey:AlunoID"    json:"-"`
	Pedagogo *Usuario `gorm:"foreignKey:PedagogoID" json:"-"`
}

// TableName sets the table name.
func (AcompanhamentoPedagogico) TableName() string { return "acompanhamento_pedagogico" }
