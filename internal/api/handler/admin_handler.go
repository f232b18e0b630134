package handler

import (
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"minasle/backend/internal/dto"
	"minasle/backend/internal/model"
	"minasle/backend/internal/service"
	"minasle/backend/pkg/response"
)

//go:embed admin_console.html
var adminConsoleHTML []byte

// AdminHandler serves the management console and its API: user, school and
// catalog administration plus the XLSX export.
type AdminHandler struct {
	svc      service.AdminService
	livroSvc service.LivroService
	export   service.ExportService
	logger   *zap.Logger
}

// NewAdminHandler creates the AdminHandler.
func NewAdminHandler(svc service.AdminService, livroSvc service.LivroService, export service.ExportService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{svc: svc, livroSvc: livroSvc, export: export, logger: logger}
}

// Console handles GET /api/admin: the embedded management page. The page
// itself is public; every call it makes is role-gated.
func (h *AdminHandler) Console(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", adminConsoleHTML)
}

// ListUsuarios handles GET /api/admin/usuarios.
func (h *AdminHandler) ListUsuarios(c *gin.Context) {
	usuarios, err := h.svc.ListUsuarios(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UsuarioResponse, 0, len(usuarios))
	for i := range usuarios {
		resp = append(resp, *dto.NewUsuarioResponse(&usuarios[i]))
	}
	response.OK(c, gin.H{"usuarios": resp, "total": len(resp)})
}

// CriarUsuario handles POST /api/admin/usuarios.
func (h *AdminHandler) CriarUsuario(c *gin.Context) {
	var req dto.AdminCreateUsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dados de usuário inválidos")
		return
	}

	usuario, err := h.svc.CriarUsuario(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, gin.H{
		"mensagem": "Usuário criado com sucesso",
		"usuario":  dto.NewUsuarioResponse(usuario),
	})
}

// DeletarUsuario handles DELETE /api/admin/usuarios/:id. Readings, club
// memberships, grants and mentoring records go with the user.
func (h *AdminHandler) DeletarUsuario(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		response.BadRequest(c, "ID de usuário inválido")
		return
	}

	if err := h.svc.DeletarUsuario(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, gin.H{"mensagem": "Usuário removido com sucesso"})
}

// ListEscolas handles GET /api/admin/escolas. Public so the registration
// form can offer the school list.
func (h *AdminHandler) ListEscolas(c *gin.Context) {
	escolas, err := h.svc.ListEscolas(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EscolaResponse, 0, len(escolas))
	for i := range escolas {
		resp = append(resp, *dto.NewEscolaResponse(&escolas[i]))
	}
	response.OK(c, gin.H{"escolas": resp, "total": len(resp)})
}

// CriarEscola handles POST /api/admin/escolas.
func (h *AdminHandler) CriarEscola(c *gin.Context) {
	var req dto.CreateEscolaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dados de escola inválidos")
		return
	}

	escola := &model.Escola{Nome: req.Nome, Cidade: req.Cidade, Estado: req.Estado}
	if escola.Estado == "" {
		escola.Estado = "Minas Gerais"
	}
	if err := h.svc.CriarEscola(c.Request.Context(), escola); err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, gin.H{
		"mensagem": "Escola criada com sucesso",
		"escola":   dto.NewEscolaResponse(escola),
	})
}

// DeletarEscola handles DELETE /api/admin/escolas/:id.
func (h *AdminHandler) DeletarEscola(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		response.BadRequest(c, "ID de escola inválido")
		return
	}

	if err := h.svc.DeletarEscola(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, gin.H{"mensagem": "Escola removida com sucesso"})
}

// ExportUsuarios handles GET /api/admin/export/usuarios: the XLSX report.
func (h *AdminHandler) ExportUsuarios(c *gin.Context) {
	buf, err := h.export.ExportUsuarios(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	filename := fmt.Sprintf("usuarios-minasle-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}

func (h *AdminHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUsuarioNaoEncontrado):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrEscolaNaoEncontrada):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrEmailJaCadastrado):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrEscolaComUsuarios):
		response.BadRequest(c, err.Error())
	default:
		h.logger.Error("erro na administração", zap.Error(err))
		response.InternalError(c)
	}
}
