package service

import (
	"context"
	"errors"
	"time"

	"minasle/backend/internal/dto"
	"minasle/backend/internal/model"
	"minasle/backend/internal/repository"
	pkgerrors "minasle/backend/pkg/errors"
)

var (
	ErrClubeNaoEncontrado = errors.New("clube não encontrado")
	ErrJaMembro           = errors.New("usuário já é membro deste clube")
	ErrNaoMembro          = errors.New("usuário não é membro deste clube")
)

// ClubeService manages reading clubs and their memberships.
type ClubeService interface {
	List(ctx context.Context) ([]dto.ClubeResponse, error)
	Get(ctx context.Context, id uint) (*dto.ClubeResponse, error)
	Criar(ctx context.Context, pedagogoID uint, req *dto.CreateClubeRequest) (*model.ClubeLeitura, error)
	Entrar(ctx context.Context, clubeID, usuarioID uint) (*model.MembroClube, error)
	Sair(ctx context.Context, clubeID, usuarioID uint) error
	Membros(ctx context.Context, clubeID uint) ([]model.MembroClube, error)
}

type clubeService struct {
	repo *repository.Repository
}

// NewClubeService creates the ClubeService.
func NewClubeService(repo *repository.Repository) ClubeService {
	return &clubeService{repo: repo}
}

func (s *clubeService) List(ctx context.Context) ([]dto.ClubeResponse, error) {
	clubes, err := s.repo.Clube.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]dto.ClubeResponse, 0, len(clubes))
	for i := range clubes {
		total, err := s.repo.Clube.CountMembros(ctx, clubes[i].ID)
		if err != nil {
			return nil, err
		}
		result = append(result, *dto.NewClubeResponse(&clubes[i], total))
	}
	return result, nil
}

func (s *clubeService) Get(ctx context.Context, id uint) (*dto.ClubeResponse, error) {
	clube, err := s.repo.Clube.GetByID(ctx, id)
	if err != nil {
		if pkgerrors.IsNotFound(err) {
			return nil, ErrClubeNaoEncontrado
		}
		return nil, err
	}
	total, err := s.repo.Clube.CountMembros(ctx, clube.ID)
	if err != nil {
		return nil, err
	}
	return dto.NewClubeResponse(clube, total), nil
}

func (s *clubeService) Criar(ctx context.Context, pedagogoID uint, req *dto.CreateClubeRequest) (*model.ClubeLeitura, error) {
	clube := &model.ClubeLeitura{
		Nome:        req.Nome,
		Descricao:   req.Descricao,
		PedagogoID:  pedagogoID,
		DataCriacao: time.Now(),
	}
	if err := s.repo.Clube.Create(ctx, clube); err != nil {
		return nil, err
	}
	return clube, nil
}

func (s *clubeService) Entrar(ctx context.Context, clubeID, usuarioID uint) (*model.MembroClube, error) {
	if _, err := s.repo.Clube.GetByID(ctx, clubeID); err != nil {
		if pkgerrors.IsNotFound(err) {
			return nil, ErrClubeNaoEncontrado
		}
		return nil, err
	}

	membro := &model.MembroClube{
		ClubeID:     clubeID,
		UsuarioID:   usuarioID,
		DataEntrada: time.Now(),
	}
	if err := s.repo.Clube.AddMembro(ctx, membro); err != nil {
		if pkgerrors.IsDuplicate(err) {
			return nil, ErrJaMembro
		}
		return nil, err
	}
	return membro, nil
}

func (s *clubeService) Sair(ctx context.Context, clubeID, usuarioID uint) error {
	if _, err := s.repo.Clube.GetMembro(ctx, clubeID, usuarioID); err != nil {
		if pkgerrors.IsNotFound(err) {
			return ErrNaoMembro
		}
		return err
	}
	return s.repo.Clube.RemoveMembro(ctx, clubeID, usuarioID)
}

func (s *clubeService) Membros(ctx context.Context, clubeID uint) ([]model.MembroClube, error) {
	if _, err := s.repo.Clube.GetByID(ctx, clubeID); err != nil {
		if pkgerrors.IsNotFound(err) {
			return nil, ErrClubeNaoEncontrado
		}
		return nil, err
	}
	return s.repo.Clube.ListMembros(ctx, clubeID)
}
