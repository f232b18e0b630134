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

var ErrAlunoInvalido = errors.New("o usuário indicado não é um aluno")

// AcompanhamentoService records pedagogue observations about students.
type AcompanhamentoService interface {
	Criar(ctx context.Context, pedagogoID uint, req *dto.CreateAcompanhamentoRequest) (*model.AcompanhamentoPedagogico, error)
	ListByAluno(ctx context.Context, callerID uint, callerTipo string, alunoID uint) ([]model.AcompanhamentoPedagogico, error)
}

type acompanhamentoService struct {
	repo *repository.Repository
}

// NewAcompanhamentoService creates the AcompanhamentoService.
func NewAcompanhamentoService(repo *repository.Repository) AcompanhamentoService {
	return &acompanhamentoService{repo: repo}
}

func (s *acompanhamentoService) Criar(ctx context.Context, pedagogoID uint, req *dto.CreateAcompanhamentoRequest) (*model.AcompanhamentoPedagogico, error) {
	aluno, err := s.repo.Usuario.GetByID(ctx, req.AlunoID)
	if err != nil {
		if pkgerrors.IsNotFound(err) {
			return nil, ErrUsuarioNaoEncontrado
		}
		return nil, err
	}
	if aluno.TipoUsuario != model.TipoAluno {
		return nil, ErrAlunoInvalido
	}

	registro := &model.AcompanhamentoPedagogico{
		AlunoID:         req.AlunoID,
		PedagogoID:      pedagogoID,
		Data:            time.Now(),
		Observacoes:     req.Observacoes,
		NotaEngajamento: req.NotaEngajamento,
	}
	if err := s.repo.Acompanhamento.Create(ctx, registro); err != nil {
		return nil, err
	}
	return registro, nil
}

func (s *acompanhamentoService) ListByAluno(ctx context.Context, callerID uint, callerTipo string, alunoID uint) ([]model.AcompanhamentoPedagogico, error) {
	if callerTipo != model.TipoPedagogo && callerID != alunoID {
		return nil, ErrAcessoNegado
	}
	return s.repo.Acompanhamento.ListByAluno(ctx, alunoID)
}
