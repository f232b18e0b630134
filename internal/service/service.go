package service

import (
	"go.uber.org/zap"

	"minasle/backend/internal/repository"
	"minasle/backend/pkg/jwt"
	"minasle/backend/pkg/redis"
)

// Service aggregates the per-module services.
type Service struct {
	Auth           AuthService
	Livro          LivroService
	Leitura        LeituraService
	Gamificacao    GamificacaoService
	Clube          ClubeService
	Acompanhamento AcompanhamentoService
	Admin          AdminService
	Export         ExportService
}

// NewService wires the service aggregate. rdb may be nil; token revocation
// then degrades to expiry-only.
func NewService(repo *repository.Repository, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *Service {
	return &Service{
		Auth:           NewAuthService(repo, jwtMgr, rdb, logger),
		Livro:          NewLivroService(repo),
		Leitura:        NewLeituraService(repo, logger),
		Gamificacao:    NewGamificacaoService(repo),
		Clube:          NewClubeService(repo),
		Acompanhamento: NewAcompanhamentoService(repo),
		Admin:          NewAdminService(repo),
		Export:         NewExportService(repo),
	}
}
