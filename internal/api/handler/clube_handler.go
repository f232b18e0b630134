package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"minasle/backend/internal/dto"
	"minasle/backend/internal/service"
	"minasle/backend/pkg/response"
)

// ClubeHandler serves reading clubs.
type ClubeHandler struct {
	svc    service.ClubeService
	logger *zap.Logger
}

// NewClubeHandler creates the ClubeHandler.
func NewClubeHandler(svc service.ClubeService, logger *zap.Logger) *ClubeHandler {
	return &ClubeHandler{svc: svc, logger: logger}
}

// List handles GET /api/clubes.
func (h *ClubeHandler) List(c *gin.Context) {
	clubes, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, gin.H{"clubes": clubes, "total": len(clubes)})
}

// Get handles GET /api/clubes/:id.
func (h *ClubeHandler) Get(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		response.BadRequest(c, "ID de clube inválido")
		return
	}

	clube, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, gin.H{"clube": clube})
}

// Criar handles POST /api/clubes. Pedagogue only.
func (h *ClubeHandler) Criar(c *gin.Context) {
	var req dto.CreateClubeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dados do clube inválidos")
		return
	}

	clube, err := h.svc.Criar(c.Request.Context(), currentUserID(c), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, gin.H{
		"mensagem": "Clube criado com sucesso",
		"clube":    dto.NewClubeResponse(clube, 0),
	})
}

// Entrar handles POST /api/clubes/:id/entrar.
func (h *ClubeHandler) Entrar(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		response.BadRequest(c, "ID de clube inválido")
		return
	}

	membro, err := h.svc.Entrar(c.Request.Context(), id, currentUserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, gin.H{
		"mensagem": "Entrada no clube realizada com sucesso",
		"membro":   dto.NewMembroClubeResponse(membro),
	})
}

// Sair handles POST /api/clubes/:id/sair.
func (h *ClubeHandler) Sair(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		response.BadRequest(c, "ID de clube inválido")
		return
	}

	if err := h.svc.Sair(c.Request.Context(), id, currentUserID(c)); err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, gin.H{"mensagem": "Saída do clube realizada com sucesso"})
}

// Membros handles GET /api/clubes/:id/membros.
func (h *ClubeHandler) Membros(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		response.BadRequest(c, "ID de clube inválido")
		return
	}

	membros, err := h.svc.Membros(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.MembroClubeResponse, 0, len(membros))
	for i := range membros {
		resp = append(resp, *dto.NewMembroClubeResponse(&membros[i]))
	}
	response.OK(c, gin.H{"membros": resp, "total": len(resp)})
}

func (h *ClubeHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrClubeNaoEncontrado):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrJaMembro):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrNaoMembro):
		response.BadRequest(c, err.Error())
	default:
		h.logger.Error("erro nos clubes de leitura", zap.Error(err))
		response.InternalError(c)
	}
}
