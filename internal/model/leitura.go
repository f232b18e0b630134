package model

import "time"

// PontuacaoConclusao is the fixed bonus for finishing a book.
const PontuacaoConclusao = 100

// Leitura maps the leituras table. One row per (usuario, livro); the unique
// constraint backs the idempotent start-reading behavior.
type Leitura struct {
	ID            uint       `gorm:"primaryKey"                                        json:"id"`
	UsuarioID     uint       `gorm:"not null;uniqueIndex:uq_leituras_usuario_livro"    json:"usuario_id"`
	LivroID       uint       `gorm:"not null;uniqueIndex:uq_leituras_usuario_livro"    json:"livro_id"`
	Progresso     int        `gorm:"not null;default:0"                                json:"progresso"`
	DataInicio    time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"                json:"data_inicio"`
	DataConclusao *time.Time `json:"data_conclusao"`
	Pontuacao     int        `gorm:"not null;default:0"                                json:"pontuacao"`

	Usuario *Usuario `gorm:"foreignKey:UsuarioID" json:"-"`
	Livro   *Livro   `gorm:"foreignKey:LivroID"   json:"livro,omitempty"`
}

// TableName sets the table name.
func (Leitura) TableName() string { return "leituras" }

// Concluida reports whether the reading reached 100%.
func (l *Leitura) Concluida() bool { return l.Progresso == 100 }
