package model

import "time"

// Livro maps the livros table.
type Livro struct {
	ID           uint      `gorm:"primaryKey"                         json:"id"`
	Titulo       string    `gorm:"type:varchar(300);not null"         json:"titulo"`
	Autor        string    `gorm:"type:varchar(200);not null"         json:"autor"`
	Genero       string    `gorm:"type:varchar(100)"                  json:"genero"`
	URLConteudo  string    `gorm:"type:varchar(500)"                  json:"url_conteudo"`
	CapaURL      string    `gorm:"type:varchar(500)"                  json:"capa_url"`
	ObraRegional bool      `gorm:"not null;default:false"             json:"obra_regional"`
	Descricao    string    `gorm:"type:text"                          json:"descricao"`
	DataAdicao   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"data_adicao"`

	Leituras []Leitura `gorm:"foreignKey:LivroID" json:"-"`
}

// TableName sets the table name.
func (Livro) TableName() string { return "livros" }
