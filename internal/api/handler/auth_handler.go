package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"minasle/backend/config"
	"minasle/backend/internal/api/middleware"
	"minasle/backend/internal/dto"
	"minasle/backend/internal/service"
	"minasle/backend/pkg/response"
)

// AuthHandler serves registration, login, logout and the current-user
// endpoint.
type AuthHandler struct {
	svc    service.AuthService
	cfg    *config.AuthConfig
	logger *zap.Logger
}

// NewAuthHandler creates the AuthHandler.
func NewAuthHandler(svc service.AuthService, cfg *config.AuthConfig, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, cfg: cfg, logger: logger}
}

// Register handles POST /api/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dados de cadastro inválidos")
		return
	}

	token, err := h.svc.Register(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.setAuthCookie(c, token.Token, token.ExpiresIn)
	response.Created(c, gin.H{
		"mensagem":   "Cadastro realizado com sucesso",
		"token":      token.Token,
		"expires_in": token.ExpiresIn,
		"usuario":    token.Usuario,
	})
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Email e senha são obrigatórios")
		return
	}

	token, err := h.svc.Login(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.setAuthCookie(c, token.Token, token.ExpiresIn)
	response.OK(c, gin.H{
		"mensagem":   "Login realizado com sucesso",
		"token":      token.Token,
		"expires_in": token.ExpiresIn,
		"usuario":    token.Usuario,
	})
}

// Logout handles POST /api/logout. The route is public: an expired or absent
// token still logs out cleanly on the client side.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token := middleware.ExtractToken(c); token != "" {
		_ = h.svc.Logout(c.Request.Context(), token)
	}

	h.clearAuthCookie(c)
	response.OK(c, gin.H{"mensagem": "Logout realizado com sucesso"})
}

// Me handles GET /api/me.
func (h *AuthHandler) Me(c *gin.Context) {
	usuario, err := h.svc.CurrentUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, gin.H{"usuario": dto.NewUsuarioResponse(usuario)})
}

func (h *AuthHandler) setAuthCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(sameSiteMode(h.cfg.Cookie.SameSite))
	c.SetCookie(middleware.TokenCookieName, token, maxAge,
		"/", h.cfg.Cookie.Domain, h.cfg.Cookie.Secure, true)
}

func (h *AuthHandler) clearAuthCookie(c *gin.Context) {
	c.SetSameSite(sameSiteMode(h.cfg.Cookie.SameSite))
	c.SetCookie(middleware.TokenCookieName, "", -1,
		"/", h.cfg.Cookie.Domain, h.cfg.Cookie.Secure, true)
}

func sameSiteMode(s string) http.SameSite {
	switch s {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

func (h *AuthHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCredenciaisInvalidas):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, service.ErrEmailJaCadastrado):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrEscolaNaoEncontrada):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrUsuarioNaoEncontrado):
		response.NotFound(c, err.Error())
	default:
		h.logger.Error("erro no módulo de autenticação", zap.Error(err))
		response.InternalError(c)
	}
}
