package service

import (
	"context"
	"errors"

	"minasle/backend/internal/dto"
	"minasle/backend/internal/model"
	"minasle/backend/internal/repository"
	pkgerrors "minasle/backend/pkg/errors"
)

var ErrLivroNaoEncontrado = errors.New("livro não encontrado")

// LivroService is the book catalog.
type LivroService interface {
	List(ctx context.Context, req *dto.ListLivrosRequest) ([]model.Livro, error)
	ListRegionais(ctx context.Context) ([]model.Livro, error)
	Get(ctx context.Context, id uint) (*model.Livro, error)
	Create(ctx context.Context, req *dto.CreateLivroRequest) (*model.Livro, error)
	Update(ctx context.Context, id uint, req *dto.UpdateLivroRequest) (*model.Livro, error)
	Delete(ctx context.Context, id uint) error
}

type livroService struct {
	repo *repository.Repository
}

// NewLivroService creates the LivroService.
func NewLivroService(repo *repository.Repository) LivroService {
	return &livroService{repo: repo}
}

func (s *livroService) List(ctx context.Context, req *dto.ListLivrosRequest) ([]model.Livro, error) {
	return s.repo.Livro.List(ctx, repository.LivroFiltros{
		Genero:       req.Genero,
		Autor:        req.Autor,
		ObraRegional: req.ObraRegional,
	})
}

func (s *livroService) ListRegionais(ctx context.Context) ([]model.Livro, error) {
	regional := true
	return s.repo.Livro.List(ctx, repository.LivroFiltros{ObraRegional: &regional})
}

func (s *livroService) Get(ctx context.Context, id uint) (*model.Livro, error) {
	livro, err := s.repo.Livro.GetByID(ctx, id)
	if err != nil {
		if pkgerrors.IsNotFound(err) {
			return nil, ErrLivroNaoEncontrado
		}
		return nil, err
	}
	return livro, nil
}

func (s *livroService) Create(ctx context.Context, req *dto.CreateLivroRequest) (*model.Livro, error) {
	livro := &model.Livro{
		Titulo:       req.Titulo,
		Autor:        req.Autor,
		Genero:       req.Genero,
		URLConteudo:  req.URLConteudo,
		CapaURL:      req.CapaURL,
		ObraRegional: req.ObraRegional,
		Descricao:    req.Descricao,
	}
	if err := s.repo.Livro.Create(ctx, livro); err != nil {
		return nil, err
	}
	return livro, nil
}

func (s *livroService) Update(ctx context.Context, id uint, req *dto.UpdateLivroRequest) (*model.Livro, error) {
	livro, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Titulo != nil {
		livro.Titulo = *req.Titulo
	}
	if req.Autor != nil {
		livro.Autor = *req.Autor
	}
	if req.Genero != nil {
		livro.Genero = *req.Genero
	}
	if req.URLConteudo != nil {
		livro.URLConteudo = *req.URLConteudo
	}
	if req.CapaURL != nil {
		livro.CapaURL = *req.CapaURL
	}
	if req.ObraRegional != nil {
		livro.ObraRegional = *req.ObraRegional
	}
	if req.Descricao != nil {
		livro.Descricao = *req.Descricao
	}

	if err := s.repo.Livro.Update(ctx, livro); err != nil {
		return nil, err
	}
	return livro, nil
}

func (s *livroService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	// readings of the book cascade in the database schema
	return s.repo.Livro.Delete(ctx, id)
}
