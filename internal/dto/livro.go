package dto

import "minasle/backend/internal/model"

// CreateLivroRequest is the body of POST /api/livros
type CreateLivroRequest struct {
	Titulo       string `json:"titulo"        binding:"required,max=300"`
	Autor        string `json:"autor"         binding:"required,max=200"`
	Genero       string `json:"genero"        binding:"omitempty,max=100"`
	URLConteudo  string `json:"url_conteudo"  binding:"omitempty,max=500"`
	CapaURL      string `json:"capa_url"      binding:"omitempty,max=500"`
	ObraRegional bool   `json:"obra_regional"`
	Descricao    string `json:"descricao"`
}

// UpdateLivroRequest is the body of PUT /api/livros/:id. Only fields present in the
// payload are applied.
type UpdateLivroRequest struct {
	Titulo       *string `json:"titulo"        binding:"omitempty,min=1,max=300"`
	Autor        *string `json:"autor"         binding:"omitempty,min=1,max=200"`
	Genero       *string `json:"genero"        binding:"omitempty,max=100"`
	URLConteudo  *string `json:"url_conteudo"  binding:"omitempty,max=500"`
	CapaURL      *string `json:"capa_url"      binding:"omitempty,max=500"`
	ObraRegional *bool   `json:"obra_regional"`
	Descricao    *string `json:"descricao"`
}

// ListLivrosRequest holds the query filters of GET /api/livros.
type ListLivrosRequest struct {
	Genero       string `form:"genero"`
	Autor        string `form:"autor"`
	ObraRegional *bool  `form:"obra_regional"`
}

// LivroResponse is the public projection of a book.
type LivroResponse struct {
	ID           uint   `json:"id"`
	Titulo       string `json:"titulo"`
	Autor        string `json:"autor"`
	Genero       string `json:"genero"`
	URLConteudo  string `json:"url_conteudo"`
	CapaURL      string `json:"capa_url"`
	ObraRegional bool   `json:"obra_regional"`
	Descricao    string `json:"descricao"`
	DataAdicao   string `json:"data_adicao"`
}

// NewLivroResponse projects a Livro.
func NewLivroResponse(l *model.Livro) *LivroResponse {
	return &LivroResponse{
		ID:           l.ID,
		Titulo:       l.Titulo,
		Autor:        l.Autor,
		Genero:       l.Genero,
		URLConteudo:  l.URLConteudo,
		CapaURL:      l.CapaURL,
		ObraRegional: l.ObraRegional,
		Descricao:    l.Descricao,
		DataAdicao:   formatTime(l.DataAdicao),
	}
}

// NewLivroResponseList projects a slice of Livro.
func NewLivroResponseList(livros []model.Livro) []LivroResponse {
	result := make([]LivroResponse, 0, len(livros))
	for i := range livros {
		result = append(result, *NewLivroResponse(&livros[i]))
	}
	return result
}
