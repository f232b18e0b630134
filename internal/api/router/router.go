package router

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"minasle/backend/config"
	"minasle/backend/internal/api/handler"
	"minasle/backend/internal/api/middleware"
	"minasle/backend/internal/model"
	"minasle/backend/pkg/jwt"
	"minasle/backend/pkg/redis"
	"minasle/backend/pkg/response"
)

const maxBodyBytes = 1 << 20 // 1 MiB

// Setup builds the gin engine: middleware chain, API routes and the static
// frontend fallback.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(maxBodyBytes))
	r.Use(middleware.CORS(&cfg.Server.CORS))

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		response.OK(c, gin.H{"status": "ok"})
	})

	// auth; login and register are rate limited per client IP
	authLimit := middleware.RateLimit(rdb, 10, time.Minute)
	api.POST("/login", authLimit, h.Auth.Login)
	api.POST("/register", authLimit, h.Auth.Register)
	api.POST("/logout", h.Auth.Logout)

	// public catalog
	api.GET("/livros", h.Livro.List)
	api.GET("/livros/regionais", h.Livro.ListRegionais)
	api.GET("/livros/:id", h.Livro.Get)

	// public gamification
	api.GET("/gamificacao/ranking", h.Gamificacao.Ranking)
	api.GET("/gamificacao/atividades", h.Gamificacao.ListAtividades)

	// admin console page and the school list the registration form needs
	api.GET("/admin", h.Admin.Console)
	api.GET("/admin/escolas", h.Admin.ListEscolas)

	auth := api.Group("", middleware.JWTAuth(jwtMgr, rdb))
	pedagogo := middleware.RoleAuth(model.TipoPedagogo)

	auth.GET("/me", h.Auth.Me)

	// catalog management
	auth.POST("/livros", pedagogo, h.Livro.Create)
	auth.PUT("/livros/:id", pedagogo, h.Livro.Update)
	auth.DELETE("/livros/:id", pedagogo, h.Livro.Delete)

	// reading progress
	auth.GET("/leituras", h.Leitura.ListMinhas)
	auth.POST("/leituras", h.Leitura.Iniciar)
	auth.PUT("/leituras/:id", h.Leitura.AtualizarProgresso)
	auth.GET("/leituras/estatisticas", h.Leitura.Estatisticas)
	auth.GET("/leituras/estatisticas/:usuario_id", h.Leitura.EstatisticasUsuario)
	auth.GET("/leituras/:usuario_id", h.Leitura.ListByUsuario)

	// gamification
	auth.GET("/gamificacao/conquistas", h.Gamificacao.MinhasConquistas)
	auth.GET("/gamificacao/conquistas/:usuario_id", h.Gamificacao.ConquistasUsuario)
	auth.POST("/gamificacao/atividades", pedagogo, h.Gamificacao.CriarAtividade)
	auth.POST("/gamificacao/conquistas", pedagogo, h.Gamificacao.ConcederConquista)
	auth.GET("/gamificacao/estatisticas/escola/:id", pedagogo, h.Gamificacao.EstatisticasEscola)

	// reading clubs
	auth.GET("/clubes", h.Clube.List)
	auth.GET("/clubes/:id", h.Clube.Get)
	auth.GET("/clubes/:id/membros", h.Clube.Membros)
	auth.POST("/clubes", pedagogo, h.Clube.Criar)
	auth.POST("/clubes/:id/entrar", h.Clube.Entrar)
	auth.POST("/clubes/:id/sair", h.Clube.Sair)

	// mentoring
	auth.POST("/acompanhamentos", pedagogo, h.Acompanhamento.Criar)
	auth.GET("/acompanhamentos/aluno/:aluno_id", h.Acompanhamento.ListByAluno)

	// administration
	admin := auth.Group("/admin", pedagogo)
	admin.GET("/usuarios", h.Admin.ListUsuarios)
	admin.POST("/usuarios", h.Admin.CriarUsuario)
	admin.DELETE("/usuarios/:id", h.Admin.DeletarUsuario)
	admin.POST("/escolas", h.Admin.CriarEscola)
	admin.DELETE("/escolas/:id", h.Admin.DeletarEscola)
	admin.GET("/export/usuarios", h.Admin.ExportUsuarios)

	// console book management reuses the catalog handlers
	admin.GET("/livros", h.Livro.List)
	admin.POST("/livros", h.Livro.Create)
	admin.DELETE("/livros/:id", h.Livro.Delete)

	// everything outside /api serves the frontend build; unknown paths fall
	// back to index.html so client-side routing works
	r.NoRoute(staticFallback(cfg.Server.StaticDir))

	return r
}

func staticFallback(staticDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") || c.Request.URL.Path == "/api" {
			response.NotFound(c, "Rota não encontrada")
			return
		}
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			response.NotFound(c, "Rota não encontrada")
			return
		}

		requested := filepath.Join(staticDir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			c.File(requested)
			return
		}

		index := filepath.Join(staticDir, "index.html")
		if _, err := os.Stat(index); err == nil {
			c.File(index)
			return
		}
		response.NotFound(c, "Rota não encontrada")
	}
}
