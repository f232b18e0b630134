package model

import "time"

// TipoLeituraCompleta is the achievement type granted automatically when a
// reading first reaches 100%.
const TipoLeituraCompleta = "leitura_completa"

// AtividadeGamificacao maps the atividades_gamificacao table. An achievement
// definition: a rewardable behavior and its point value.
type AtividadeGamificacao struct {
	ID        uint   `gorm:"primaryKey"                 json:"id"`
	Nome      string `gorm:"type:varchar(200);not null" json:"nome"`
	Descricao string `gorm:"type:text"                  json:"descricao"`
	Pontos    int    `gorm:"not null;default:0"         json:"pontos"`
	Tipo      string `gorm:"type:varchar(50)"           json:"tipo"`

	Conquistas []ConquistaUsuario `gorm:"foreignKey:AtividadeID" json:"-"`
}

// TableName sets the table name.
func (AtividadeGamificacao) TableName() string { return "atividades_gamificacao" }

// ConquistaUsuario maps the conquistas_usuario table. Composite key: an
// achievement is granted to a user at most once.
type ConquistaUsuario struct {
	UsuarioID     uint      `gorm:"primaryKey;autoIncrement:false"     json:"usuario_id"`
	AtividadeID   uint      `gorm:"primaryKey;autoIncrement:false"     json:"atividade_id"`
	DataConquista time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"data_conquista"`

	Atividade *AtividadeGamificacao `gorm:"foreignKey:AtividadeID" json:"atividade,omitempty"`
}

// TableName sets the table name.
func (ConquistaUsuario) TableName() string { return "conquistas_usuario" }
