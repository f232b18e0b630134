package dto

import "minasle/backend/internal/model"

// CreateAtividadeRequest is the body of POST /api/gamificacao/atividades
type CreateAtividadeRequest struct {
	Nome      string `json:"nome"      binding:"required,max=200"`
	Descricao string `json:"descricao" binding:"required"`
	Pontos    int    `json:"pontos"    binding:"omitempty,min=0"`
	Tipo      string `json:"tipo"      binding:"required,max=50"`
}

// ConcederConquistaRequest is the body of POST /api/gamificacao/conquistas
type ConcederConquistaRequest struct {
	UsuarioID   uint `json:"usuario_id"   binding:"required"`
	AtividadeID uint `json:"atividade_id" binding:"required"`
}

// AtividadeResponse is the public projection of an achievement definition.
type AtividadeResponse struct {
	ID        uint   `json:"id"`
	Nome      string `json:"nome"`
	Descricao string `json:"descricao"`
	Pontos    int    `json:"pontos"`
	Tipo      string `json:"tipo"`
}

// NewAtividadeResponse projects an AtividadeGamificacao.
func NewAtividadeResponse(a *model.AtividadeGamificacao) *AtividadeResponse {
	return &AtividadeResponse{
		ID:        a.ID,
		Nome:      a.Nome,
		Descricao: a.Descricao,
		Pontos:    a.Pontos,
		Tipo:      a.Tipo,
	}
}

// NewAtividadeResponseList projects a slice of AtividadeGamificacao.
func NewAtividadeResponseList(atividades []model.AtividadeGamificacao) []AtividadeResponse {
	result := make([]AtividadeResponse, 0, len(atividades))
	for i := range atividades {
		result = append(result, *NewAtividadeResponse(&atividades[i]))
	}
	return result
}

// ConquistaResponse is a grant joined with its definition.
type ConquistaResponse struct {
	UsuarioID     uint               `json:"usuario_id"`
	AtividadeID   uint               `json:"atividade_id"`
	DataConquista string             `json:"data_conquista"`
	Atividade     *AtividadeResponse `json:"atividade,omitempty"`
}

// NewConquistaResponse projects a ConquistaUsuario.
func NewConquistaResponse(c *model.ConquistaUsuario) *ConquistaResponse {
	resp := &ConquistaResponse{
		UsuarioID:     c.UsuarioID,
		AtividadeID:   c.AtividadeID,
		DataConquista: formatTime(c.DataConquista),
	}
	if c.Atividade != nil {
		resp.Atividade = NewAtividadeResponse(c.Atividade)
	}
	return resp
}

// RankingEntry is one row of the points ranking.
type RankingEntry struct {
	Posicao   int    `json:"posicao"`
	UsuarioID uint   `json:"usuario_id"`
	Nome      string `json:"nome"`
	Pontuacao int64  `json:"pontuacao"`
}

// EstatisticasEscolaResponse is the payload of GET /api/gamificacao/estatisticas/escola/:id
type EstatisticasEscolaResponse struct {
	TotalAlunos     int64   `json:"total_alunos"`
	AlunosAtivos    int64   `json:"alunos_ativos"`
	TaxaEngajamento float64 `json:"taxa_engajamento"`
	PontuacaoMedia  float64 `json:"pontuacao_media"`
	LivrosCompletos int64   `json:"livros_completos"`
}
