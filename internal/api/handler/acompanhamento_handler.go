package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"minasle/backend/internal/dto"
	"minasle/backend/internal/service"
	"minasle/backend/pkg/response"
)

// AcompanhamentoHandler serves the pedagogical mentoring records.
type AcompanhamentoHandler struct {
	svc    service.AcompanhamentoService
	logger *zap.Logger
}

// NewAcompanhamentoHandler creates the AcompanhamentoHandler.
func NewAcompanhamentoHandler(svc service.AcompanhamentoService, logger *zap.Logger) *AcompanhamentoHandler {
	return &AcompanhamentoHandler{svc: svc, logger: logger}
}

// Criar handles POST /api/acompanhamentos. Pedagogue only.
func (h *AcompanhamentoHandler) Criar(c *gin.Context) {
	var req dto.CreateAcompanhamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dados de acompanhamento inválidos")
		return
	}

	registro, err := h.svc.Criar(c.Request.Context(), currentUserID(c), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, gin.H{
		"mensagem":       "Acompanhamento registrado com sucesso",
		"acompanhamento": dto.NewAcompanhamentoResponse(registro),
	})
}

// ListByAluno handles GET /api/acompanhamentos/aluno/:aluno_id.
func (h *AcompanhamentoHandler) ListByAluno(c *gin.Context) {
	alunoID, ok := paramUint(c, "aluno_id")
	if !ok {
		response.BadRequest(c, "ID de aluno inválido")
		return
	}

	registros, err := h.svc.ListByAluno(c.Request.Context(), currentUserID(c), currentTipoUsuario(c), alunoID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := dto.NewAcompanhamentoResponseList(registros)
	response.OK(c, gin.H{"acompanhamentos": resp, "total": len(resp)})
}

func (h *AcompanhamentoHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUsuarioNaoEncontrado):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrAlunoInvalido):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrAcessoNegado):
		response.Forbidden(c, err.Error())
	default:
		h.logger.Error("erro no acompanhamento pedagógico", zap.Error(err))
		response.InternalError(c)
	}
}
