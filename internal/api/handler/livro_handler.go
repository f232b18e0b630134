package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"minasle/backend/internal/dto"
	"minasle/backend/internal/service"
	"minasle/backend/pkg/response"
)

// LivroHandler serves the book catalog.
type LivroHandler struct {
	svc    service.LivroService
	logger *zap.Logger
}

// NewLivroHandler creates the LivroHandler.
func NewLivroHandler(svc service.LivroService, logger *zap.Logger) *LivroHandler {
	return &LivroHandler{svc: svc, logger: logger}
}

// List handles GET /api/livros.
func (h *LivroHandler) List(c *gin.Context) {
	var req dto.ListLivrosRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Filtros inválidos")
		return
	}

	livros, err := h.svc.List(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := dto.NewLivroResponseList(livros)
	response.OK(c, gin.H{"livros": resp, "total": len(resp)})
}

// ListRegionais handles GET /api/livros/regionais.
func (h *LivroHandler) ListRegionais(c *gin.Context) {
	livros, err := h.svc.ListRegionais(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := dto.NewLivroResponseList(livros)
	response.OK(c, gin.H{"livros": resp, "total": len(resp)})
}

// Get handles GET /api/livros/:id.
func (h *LivroHandler) Get(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		response.BadRequest(c, "ID de livro inválido")
		return
	}

	livro, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, gin.H{"livro": dto.NewLivroResponse(livro)})
}

// Create handles POST /api/livros.
func (h *LivroHandler) Create(c *gin.Context) {
	var req dto.CreateLivroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dados do livro inválidos")
		return
	}

	livro, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, gin.H{
		"mensagem": "Livro criado com sucesso",
		"livro":    dto.NewLivroResponse(livro),
	})
}

// Update handles PUT /api/livros/:id.
func (h *LivroHandler) Update(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		response.BadRequest(c, "ID de livro inválido")
		return
	}

	var req dto.UpdateLivroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dados do livro inválidos")
		return
	}

	livro, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, gin.H{
		"mensagem": "Livro atualizado com sucesso",
		"livro":    dto.NewLivroResponse(livro),
	})
}

// Delete handles DELETE /api/livros/:id.
func (h *LivroHandler) Delete(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		response.BadRequest(c, "ID de livro inválido")
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, gin.H{"mensagem": "Livro removido com sucesso"})
}

func (h *LivroHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrLivroNaoEncontrado):
		response.NotFound(c, err.Error())
	default:
		h.logger.Error("erro no catálogo de livros", zap.Error(err))
		response.InternalError(c)
	}
}
