package dto

import "minasle/backend/internal/model"

// CreateAcompanhamentoRequest is the body of POST /api/acompanhamentos. NotaEngajamento
// is bounded to the 1..10 scale at the boundary.
type CreateAcompanhamentoRequest struct {
	AlunoID         uint   `json:"aluno_id"         binding:"required"`
	Observacoes     string `json:"observacoes"`
	NotaEngajamento int    `json:"nota_engajamento" binding:"required,min=1,max=10"`
}

// AcompanhamentoResponse is the public projection of a mentoring record.
type AcompanhamentoResponse struct {
	ID              uint   `json:"id"`
	AlunoID         uint   `json:"aluno_id"`
	PedagogoID      uint   `json:"pedagogo_id"`
	Data            string `json:"data"`
	Observacoes     string `json:"observacoes"`
	NotaEngajamento int    `json:"nota_engajamento"`
}

// NewAcompanhamentoResponse projects an AcompanhamentoPedagogico.
func NewAcompanhamentoResponse(a *model.AcompanhamentoPedagogico) *AcompanhamentoResponse {
	return &AcompanhamentoResponse{
		ID:              a.ID,
		AlunoID:         a.AlunoID,
		PedagogoID:      a.PedagogoID,
		Data:            formatTime(a.Data),
		Observacoes:     a.Observacoes,
		NotaEngajamento: a.NotaEngajamento,
	}
}

// NewAcompanhamentoResponseList projects a slice of AcompanhamentoPedagogico.
func NewAcompanhamentoResponseList(items []model.AcompanhamentoPedagogico) []AcompanhamentoResponse {
	result := make([]AcompanhamentoResponse, 0, len(items))
	for i := range items {
		result = append(result, *NewAcompanhamentoResponse(&items[i]))
	}
	return result
}
