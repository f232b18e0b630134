package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"minasle/backend/internal/dto"
	"minasle/backend/internal/service"
	"minasle/backend/pkg/response"
)

// LeituraHandler serves reading progress tracking.
type LeituraHandler struct {
	svc    service.LeituraService
	logger *zap.Logger
}

// NewLeituraHandler creates the LeituraHandler.
func NewLeituraHandler(svc service.LeituraService, logger *zap.Logger) *LeituraHandler {
	return &LeituraHandler{svc: svc, logger: logger}
}

// ListMinhas handles GET /api/leituras (the caller's own readings).
func (h *LeituraHandler) ListMinhas(c *gin.Context) {
	userID := currentUserID(c)
	leituras, err := h.svc.ListByUsuario(c.Request.Context(), userID, currentTipoUsuario(c), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := dto.NewLeituraResponseList(leituras)
	response.OK(c, gin.H{"leituras": resp, "total": len(resp)})
}

// ListByUsuario handles GET /api/leituras/:usuario_id.
func (h *LeituraHandler) ListByUsuario(c *gin.Context) {
	usuarioID, ok := paramUint(c, "usuario_id")
	if !ok {
		response.BadRequest(c, "ID de usuário inválido")
		return
	}

	leituras, err := h.svc.ListByUsuario(c.Request.Context(), currentUserID(c), currentTipoUsuario(c), usuarioID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := dto.NewLeituraResponseList(leituras)
	response.OK(c, gin.H{"leituras": resp, "total": len(resp)})
}

// Iniciar handles POST /api/leituras. Starting a book the caller already
// reads returns the existing reading with 200 instead of 201.
func (h *LeituraHandler) Iniciar(c *gin.Context) {
	var req dto.IniciarLeituraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Informe o livro para iniciar a leitura")
		return
	}

	leitura, criada, err := h.svc.Iniciar(c.Request.Context(), currentUserID(c), req.LivroID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	payload := gin.H{"leitura": dto.NewLeituraResponse(leitura)}
	if criada {
		payload["mensagem"] = "Leitura iniciada com sucesso"
		response.Created(c, payload)
		return
	}
	payload["mensagem"] = "Leitura já estava em andamento"
	response.OK(c, payload)
}

// AtualizarProgresso handles PUT /api/leituras/:id.
func (h *LeituraHandler) AtualizarProgresso(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		response.BadRequest(c, "ID de leitura inválido")
		return
	}

	var req dto.AtualizarProgressoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Informe o progresso da leitura")
		return
	}

	leitura, err := h.svc.AtualizarProgresso(c.Request.Context(), currentUserID(c), id, *req.Progresso)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, gin.H{
		"mensagem": "Progresso atualizado com sucesso",
		"leitura":  dto.NewLeituraResponse(leitura),
	})
}

// Estatisticas handles GET /api/leituras/estatisticas (the caller's own).
func (h *LeituraHandler) Estatisticas(c *gin.Context) {
	userID := currentUserID(c)
	stats, err := h.svc.Estatisticas(c.Request.Context(), userID, currentTipoUsuario(c), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, gin.H{"estatisticas": stats})
}

// EstatisticasUsuario handles GET /api/leituras/estatisticas/:usuario_id.
func (h *LeituraHandler) EstatisticasUsuario(c *gin.Context) {
	usuarioID, ok := paramUint(c, "usuario_id")
	if !ok {
		response.BadRequest(c, "ID de usuário inválido")
		return
	}

	stats, err := h.svc.Estatisticas(c.Request.Context(), currentUserID(c), currentTipoUsuario(c), usuarioID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, gin.H{"estatisticas": stats})
}

func (h *LeituraHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrLeituraNaoEncontrada):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrLivroNaoEncontrado):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrAcessoNegado):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrProgressoInvalido):
		response.BadRequest(c, err.Error())
	default:
		h.logger.Error("erro no acompanhamento de leituras", zap.Error(err))
		response.InternalError(c)
	}
}
