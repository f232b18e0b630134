package dto

import (
	"time"

	"minasle/backend/internal/model"
)

// Model-to-response projection lives here, once per entity, instead of being
// repeated ad hoc at every call site.

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

// EscolaResponse is the public projection of a school.
type EscolaResponse struct {
	ID     uint   `json:"id"`
	Nome   string `json:"nome"`
	Cidade string `json:"cidade"`
	Estado string `json:"estado"`
}

// NewEscolaResponse projects an Escola.
func NewEscolaResponse(e *model.Escola) *EscolaResponse {
	return &EscolaResponse{
		ID:     e.ID,
		Nome:   e.Nome,
		Cidade: e.Cidade,
		Estado: e.Estado,
	}
}

// UsuarioResponse is the public projection of a user. The password hash
// never leaves the model layer.
type UsuarioResponse struct {
	ID          uint            `json:"id"`
	Nome        string          `json:"nome"`
	Email       string          `json:"email"`
	TipoUsuario string          `json:"tipo_usuario"`
	EscolaID    uint            `json:"escola_id"`
	DataCriacao string          `json:"data_criacao"`
	Escola      *EscolaResponse `json:"escola,omitempty"`
}

// NewUsuarioResponse projects a Usuario, embedding the school when loaded.
func NewUsuarioResponse(u *model.Usuario) *UsuarioResponse {
	resp := &UsuarioResponse{
		ID:          u.ID,
		Nome:        u.Nome,
		Email:       u.Email,
		TipoUsuario: u.TipoUsuario,
		EscolaID:    u.EscolaID,
		DataCriacao: formatTime(u.DataCriacao),
	}
	if u.Escola != nil {
		resp.Escola = NewEscolaResponse(u.Escola)
	}
	return resp
}
