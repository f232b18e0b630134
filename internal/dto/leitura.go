package dto

import "minasle/backend/internal/model"

// IniciarLeituraRequest is the body of POST /api/leituras
type IniciarLeituraRequest struct {
	LivroID uint `json:"livro_id" binding:"required"`
}

// AtualizarProgressoRequest is the body of PUT /api/leituras/:id. Progresso is a pointer
// so that an absent field is distinguishable from an explicit 0.
type AtualizarProgressoRequest struct {
	Progresso *int `json:"progresso" binding:"required"`
}

// LeituraResponse is the public projection of a reading, optionally
// embedding its book.
type LeituraResponse struct {
	ID            uint           `json:"id"`
	UsuarioID     uint           `json:"usuario_id"`
	LivroID       uint           `json:"livro_id"`
	Progresso     int            `json:"progresso"`
	DataInicio    string         `json:"data_inicio"`
	DataConclusao *string        `json:"data_conclusao"`
	Pontuacao     int            `json:"pontuacao"`
	Livro         *LivroResponse `json:"livro,omitempty"`
}

// NewLeituraResponse projects a Leitura.
func NewLeituraResponse(l *model.Leitura) *LeituraResponse {
	resp := &LeituraResponse{
		ID:            l.ID,
		UsuarioID:     l.UsuarioID,
		LivroID:       l.LivroID,
		Progresso:     l.Progresso,
		DataInicio:    formatTime(l.DataInicio),
		DataConclusao: formatTimePtr(l.DataConclusao),
		Pontuacao:     l.Pontuacao,
	}
	if l.Livro != nil {
		resp.Livro = NewLivroResponse(l.Livro)
	}
	return resp
}

// NewLeituraResponseList projects a slice of Leitura.
func NewLeituraResponseList(leituras []model.Leitura) []LeituraResponse {
	result := make([]LeituraResponse, 0, len(leituras))
	for i := range leituras {
		result = append(result, *NewLeituraResponse(&leituras[i]))
	}
	return result
}

// EstatisticasLeituraResponse is the payload of GET /api/leituras/estatisticas
type EstatisticasLeituraResponse struct {
	TotalLeituras            int64   `json:"total_leituras"`
	LeiturasCompletas        int64   `json:"leituras_completas"`
	PontuacaoTotal           int64   `json:"pontuacao_total"`
	ProgressoMedio           float64 `json:"progresso_medio"`
	LivrosRegionaisCompletos int64   `json:"livros_regionais_completos"`
	TaxaConclusao            float64 `json:"taxa_conclusao"`
}
