package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"minasle/backend/internal/dto"
	"minasle/backend/internal/service"
	"minasle/backend/pkg/response"
)

// GamificacaoHandler serves achievements, ranking and school statistics.
type GamificacaoHandler struct {
	svc    service.GamificacaoService
	logger *zap.Logger
}

// NewGamificacaoHandler creates the GamificacaoHandler.
func NewGamificacaoHandler(svc service.GamificacaoService, logger *zap.Logger) *GamificacaoHandler {
	return &GamificacaoHandler{svc: svc, logger: logger}
}

// Ranking handles GET /api/gamificacao/ranking.
func (h *GamificacaoHandler) Ranking(c *gin.Context) {
	ranking, err := h.svc.Ranking(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, gin.H{"ranking": ranking, "total": len(ranking)})
}

// ListAtividades handles GET /api/gamificacao/atividades.
func (h *GamificacaoHandler) ListAtividades(c *gin.Context) {
	atividades, err := h.svc.ListAtividades(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := dto.NewAtividadeResponseList(atividades)
	response.OK(c, gin.H{"atividades": resp, "total": len(resp)})
}

// CriarAtividade handles POST /api/gamificacao/atividades.
func (h *GamificacaoHandler) CriarAtividade(c *gin.Context) {
	var req dto.CreateAtividadeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dados da atividade inválidos")
		return
	}

	atividade, err := h.svc.CriarAtividade(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, gin.H{
		"mensagem":  "Atividade criada com sucesso",
		"atividade": dto.NewAtividadeResponse(atividade),
	})
}

// MinhasConquistas handles GET /api/gamificacao/conquistas (the caller's).
func (h *GamificacaoHandler) MinhasConquistas(c *gin.Context) {
	userID := currentUserID(c)
	conquistas, err := h.svc.ConquistasUsuario(c.Request.Context(), userID, currentTipoUsuario(c), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ConquistaResponse, 0, len(conquistas))
	for i := range conquistas {
		resp = append(resp, *dto.NewConquistaResponse(&conquistas[i]))
	}
	response.OK(c, gin.H{"conquistas": resp, "total": len(resp)})
}

// ConquistasUsuario handles GET /api/gamificacao/conquistas/:usuario_id.
func (h *GamificacaoHandler) ConquistasUsuario(c *gin.Context) {
	usuarioID, ok := paramUint(c, "usuario_id")
	if !ok {
		response.BadRequest(c, "ID de usuário inválido")
		return
	}

	conquistas, err := h.svc.ConquistasUsuario(c.Request.Context(), currentUserID(c), currentTipoUsuario(c), usuarioID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ConquistaResponse, 0, len(conquistas))
	for i := range conquistas {
		resp = append(resp, *dto.NewConquistaResponse(&conquistas[i]))
	}
	response.OK(c, gin.H{"conquistas": resp, "total": len(resp)})
}

// ConcederConquista handles POST /api/gamificacao/conquistas.
func (h *GamificacaoHandler) ConcederConquista(c *gin.Context) {
	var req dto.ConcederConquistaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Informe o usuário e a atividade")
		return
	}

	conquista, err := h.svc.ConcederConquista(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, gin.H{
		"mensagem":  "Conquista concedida com sucesso",
		"conquista": dto.NewConquistaResponse(conquista),
	})
}

// EstatisticasEscola handles GET /api/gamificacao/estatisticas/escola/:id.
func (h *GamificacaoHandler) EstatisticasEscola(c *gin.Context) {
	escolaID, ok := paramUint(c, "id")
	if !ok {
		response.BadRequest(c, "ID de escola inválido")
		return
	}

	stats, err := h.svc.EstatisticasEscola(c.Request.Context(), escolaID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, gin.H{"estatisticas": stats})
}

func (h *GamificacaoHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAcessoNegado):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrUsuarioNaoEncontrado):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrAtividadeNaoEncontrada):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrEscolaNaoEncontrada):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrConquistaJaConcedida):
		response.BadRequest(c, err.Error())
	default:
		h.logger.Error("erro na gamificação", zap.Error(err))
		response.InternalError(c)
	}
}
