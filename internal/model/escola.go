package model

// Escola maps the escolas table.
type Escola struct {
	ID     uint   `gorm:"primaryKey"                                        json:"id"`
	Nome   string `gorm:"type:varchar(200);not null"                        json:"nome"`
	Cidade string `gorm:"type:varchar(100);not null"                        json:"cidade"`
	Estado string `gorm:"type:varchar(50);not null;default:'Minas Gerais'"  json:"estado"`

	Usuarios []Usuario `gorm:"foreignKey:EscolaID" json:"-"`
}

// TableName sets the table name.
func (Escola) TableName() string { return "escolas" }
