package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"minasle/backend/internal/dto"
	"minasle/backend/internal/model"
	"minasle/backend/internal/repository"
	pkgerrors "minasle/backend/pkg/errors"
)

var ErrEscolaComUsuarios = errors.New("escola possui usuários vinculados")

// AdminService is the management surface behind the admin console: user
// and school administration for pedagogues.
type AdminService interface {
	ListUsuarios(ctx context.Context) ([]model.Usuario, error)
	CriarUsuario(ctx context.Context, req *dto.AdminCreateUsuarioRequest) (*model.Usuario, error)
	DeletarUsuario(ctx context.Context, id uint) error
	ListEscolas(ctx context.Context) ([]model.Escola, error)
	CriarEscola(ctx context.Context, escola *model.Escola) error
	DeletarEscola(ctx context.Context, id uint) error
}

type adminService struct {
	repo *repository.Repository
}

// NewAdminService creates the AdminService.
func NewAdminService(repo *repository.Repository) AdminService {
	return &adminService{repo: repo}
}

func (s *adminService) ListUsuarios(ctx context.Context) ([]model.Usuario, error) {
	return s.repo.Usuario.List(ctx)
}

func (s *adminService) CriarUsuario(ctx context.Context, req *dto.AdminCreateUsuarioRequest) (*model.Usuario, error) {
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
		TipoUsuario: req.TipoUsuario,
		EscolaID:    req.EscolaID,
	}
	if err := s.repo.Usuario.Create(ctx, usuario); err != nil {
		if pkgerrors.IsDuplicate(err) {
			return nil, ErrEmailJaCadastrado
		}
		return nil, err
	}
	return usuario, nil
}

func (s *adminService) DeletarUsuario(ctx context.Context, id uint) error {
	if _, err := s.repo.Usuario.GetByID(ctx, id); err != nil {
		if pkgerrors.IsNotFound(err) {
			return ErrUsuarioNaoEncontrado
		}
		return err
	}
	return s.repo.Usuario.Delete(ctx, id)
}

func (s *adminService) ListEscolas(ctx context.Context) ([]model.Escola, error) {
	return s.repo.Escola.List(ctx)
}

func (s *adminService) CriarEscola(ctx context.Context, escola *model.Escola) error {
	return s.repo.Escola.Create(ctx, escola)
}

// DeletarEscola refuses while users still reference the school; the schema
// backs this with ON DELETE RESTRICT.
func (s *adminService) DeletarEscola(ctx context.Context, id uint) error {
	if _, err := s.repo.Escola.GetByID(ctx, id); err != nil {
		if pkgerrors.IsNotFound(err) {
			return ErrEscolaNaoEncontrada
		}
		return err
	}

	total, err := s.repo.Escola.CountUsuarios(ctx, id)
	if err != nil {
		return err
	}
	if total > 0 {
		return ErrEscolaComUsuarios
	}

	if err := s.repo.Escola.Delete(ctx, id); err != nil {
		if pkgerrors.IsForeignKeyViolation(err) {
			return ErrEscolaComUsuarios
		}
		return err
	}
	return nil
}
