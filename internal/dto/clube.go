package dto

import "minasle/backend/internal/model"

// CreateClubeRequest is the body of POST /api/clubes
type CreateClubeRequest struct {
	Nome      string `json:"nome"      binding:"required,max=200"`
	Descricao string `json:"descricao"`
}

// ClubeResponse is the public projection of a reading club.
type ClubeResponse struct {
	ID           uint   `json:"id"`
	Nome         string `json:"nome"`
	Descricao    string `json:"descricao"`
	PedagogoID   uint   `json:"pedagogo_id"`
	DataCriacao  string `json:"data_criacao"`
	TotalMembros int64  `json:"total_membros"`
}

// NewClubeResponse projects a ClubeLeitura.
func NewClubeResponse(c *model.ClubeLeitura, totalMembros int64) *ClubeResponse {
	return &ClubeResponse{
		ID:           c.ID,
		Nome:         c.Nome,
		Descricao:    c.Descricao,
		PedagogoID:   c.PedagogoID,
		DataCriacao:  formatTime(c.DataCriacao),
		TotalMembros: totalMembros,
	}
}

// MembroClubeResponse is one club membership, embedding the member.
type MembroClubeResponse struct {
	ClubeID     uint             `json:"clube_id"`
	UsuarioID   uint             `json:"usuario_id"`
	DataEntrada string           `json:"data_entrada"`
	Usuario     *UsuarioResponse `json:"usuario,omitempty"`
}

// NewMembroClubeResponse projects a MembroClube.
func NewMembroClubeResponse(m *model.MembroClube) *MembroClubeResponse {
	resp := &MembroClubeResponse{
		ClubeID:     m.ClubeID,
		UsuarioID:   m.UsuarioID,
		DataEntrada: formatTime(m.DataEntrada),
	}
	if m.Usuario != nil {
		resp.Usuario = NewUsuarioResponse(m.Usuario)
	}
	return resp
}
