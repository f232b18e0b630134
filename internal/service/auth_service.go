package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"minasle/backend/internal/dto"
	"minasle/backend/internal/model"
	"minasle/backend/internal/repository"
	"minasle/backend/pkg/jwt"
	pkgerrors "minasle/backend/pkg/errors"
	"minasle/backend/pkg/redis"
)

var (
	ErrCredenciaisInvalidas = errors.New("email ou senha inválidos")
	ErrEmailJaCadastrado    = errors.New("Email já cadastrado")
	ErrEscolaNaoEncontrada  = errors.New("escola não encontrada")
	ErrUsuarioNaoEncontrado = errors.New("usuário não encontrado")
)

// AuthService handles registration, login and token revocation.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, tokenString string) error
	CurrentUser(ctx context.Context, userID uint) (*model.Usuario, error)
}

type authService struct {
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	logger *zap.Logger
}

// NewAuthService creates the AuthService.
func NewAuthService(repo *repository.Repository, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) AuthService {
	return &authService{repo: repo, jwtMgr: jwtMgr, rdb: rdb, logger: logger}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	tipo := req.TipoUsuario
	if tipo == "" {
		tipo = model.TipoAluno
	}

	if _, err := s.repo.Escola.GetByID(ctx, req.EscolaID); err != nil {
		if pkgerrors.IsNotFound(err) {
			return nil, ErrEscolaNaoEncontrada
		}
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	usuario := &model.Usuario{
		Nome:        req.Nome,
		Email:       req.Email,
		SenhaHash:   string(hash),
		TipoUsuario: tipo,
		EscolaID:    req.EscolaID,
	}
	if err := s.repo.Usuario.Create(ctx, usuario); err != nil {
		if pkgerrors.IsDuplicate(err) {
			return nil, ErrEmailJaCadastrado
		}
		return nil, err
	}

	s.logger.Info("usuário registrado",
		zap.Uint("usuario_id", usuario.ID),
		zap.String("tipo", usuario.TipoUsuario))

	return s.issueToken(ctx, usuario)
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	usuario, err := s.repo.Usuario.GetByEmail(ctx, req.Email)
	if err != nil {
		if pkgerrors.IsNotFound(err) {
			// bcrypt on a constant hash keeps timing comparable whether or
			// not the email exists
			_ = bcrypt.CompareHashAndPassword(
				[]byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"),
				[]byte(req.Senha))
			return nil, ErrCredenciaisInvalidas
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.SenhaHash), []byte(req.Senha)); err != nil {
		return nil, ErrCredenciaisInvalidas
	}

	return s.issueToken(ctx, usuario)
}

// Logout revokes the token by blacklisting its ID until natural expiry.
// Revocation is best effort: an invalid or expired token needs no
// revocation, and with Redis unavailable the token simply runs out its TTL.
func (s *authService) Logout(ctx context.Context, tokenString string) error {
	if s.rdb == nil || tokenString == "" {
		return nil
	}

	claims, err := s.jwtMgr.ParseToken(tokenString)
	if err != nil || claims.ID == "" || claims.ExpiresAt == nil {
		return nil
	}

	if err := s.rdb.BlacklistToken(ctx, claims.ID, time.Until(claims.ExpiresAt.Time)); err != nil {
		s.logger.Warn("falha ao revogar token", zap.String("jti", claims.ID), zap.Error(err))
	}
	return nil
}

func (s *authService) CurrentUser(ctx context.Context, userID uint) (*model.Usuario, error) {
	usuario, err := s.repo.Usuario.GetByID(ctx, userID)
	if err != nil {
		if pkgerrors.IsNotFound(err) {
			return nil, ErrUsuarioNaoEncontrado
		}
		return nil, err
	}
	return usuario, nil
}

func (s *authService) issueToken(ctx context.Context, usuario *model.Usuario) (*dto.TokenResponse, error) {
	token, err := s.jwtMgr.GenerateToken(usuario.ID, usuario.TipoUsuario, usuario.EscolaID)
	if err != nil {
		return nil, err
	}

	if usuario.Escola == nil {
		// re-read to embed the school in the response
		if full, err := s.repo.Usuario.GetByID(ctx, usuario.ID); err == nil {
			usuario = full
		}
	}

	return &dto.TokenResponse{
		Token:     token,
		ExpiresIn: int(s.jwtMgr.TokenTTL().Seconds()),
		Usuario:   *dto.NewUsuarioResponse(usuario),
	}, nil
}
