package handler

import (
	"go.uber.org/zap"

	"minasle/backend/config"
	"minasle/backend/internal/service"
)

// Handler aggregates the per-module HTTP handlers.
type Handler struct {
	Auth           *AuthHandler
	Livro          *LivroHandler
	Leitura        *LeituraHandler
	Gamificacao    *GamificacaoHandler
	Clube          *ClubeHandler
	Acompanhamento *AcompanhamentoHandler
	Admin          *AdminHandler
}

// NewHandler wires the handler aggregate.
func NewHandler(svc *service.Service, cfg *config.Config, logger *zap.Logger) *Handler {
	return &Handler{
		Auth:           NewAuthHandler(svc.Auth, &cfg.Auth, logger),
		Livro:          NewLivroHandler(svc.Livro, logger),
		Leitura:        NewLeituraHandler(svc.Leitura, logger),
		Gamificacao:    NewGamificacaoHandler(svc.Gamificacao, logger),
		Clube:          NewClubeHandler(svc.Clube, logger),
		Acompanhamento: NewAcompanhamentoHandler(svc.Acompanhamento, logger),
		Admin:          NewAdminHandler(svc.Admin, svc.Livro, svc.Export, logger),
	}
}
