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
	ErrAtividadeNaoEncontrada = errors.New("atividade não encontrada")
	ErrConquistaJaConcedida   = errors.New("conquista já concedida a este usuário")
)

// RankingSize caps the public ranking at the top students.
const RankingSize = 50

// GamificacaoService covers achievements, the points ranking and the
// school engagement statistics.
type GamificacaoService interface {
	Ranking(ctx context.Context) ([]dto.RankingEntry, error)
	ListAtividades(ctx context.Context) ([]model.AtividadeGamificacao, error)
	CriarAtividade(ctx context.Context, req *dto.CreateAtividadeRequest) (*model.AtividadeGamificacao, error)
	ConquistasUsuario(ctx context.Context, callerID uint, callerTipo string, usuarioID uint) ([]model.ConquistaUsuario, error)
	ConcederConquista(ctx context.Context, req *dto.ConcederConquistaRequest) (*model.ConquistaUsuario, error)
	EstatisticasEscola(ctx context.Context, escolaID uint) (*dto.EstatisticasEscolaResponse, error)
}

type gamificacaoService struct {
	repo *repository.Repository
}

// NewGamificacaoService creates the GamificacaoService.
func NewGamificacaoService(repo *repository.Repository) GamificacaoService {
	return &gamificacaoService{repo: repo}
}

func (s *gamificacaoService) Ranking(ctx context.Context) ([]dto.RankingEntry, error) {
	rows, err := s.repo.Leitura.Ranking(ctx, RankingSize)
	if err != nil {
		return nil, err
	}

	entries := make([]dto.RankingEntry, 0, len(rows))
	for i, row := range rows {
		entries = append(entries, dto.RankingEntry{
			Posicao:   i + 1,
			UsuarioID: row.UsuarioID,
			Nome:      row.Nome,
			Pontuacao: row.Pontuacao,
		})
	}
	return entries, nil
}

func (s *gamificacaoService) ListAtividades(ctx context.Context) ([]model.AtividadeGamificacao, error) {
	return s.repo.Atividade.List(ctx)
}

func (s *gamificacaoService) CriarAtividade(ctx context.Context, req *dto.CreateAtividadeRequest) (*model.AtividadeGamificacao, error) {
	atividade := &model.AtividadeGamificacao{
		Nome:      req.Nome,
		Descricao: req.Descricao,
		Pontos:    req.Pontos,
		Tipo:      req.Tipo,
	}
	if err := s.repo.Atividade.Create(ctx, atividade); err != nil {
		return nil, err
	}
	return atividade, nil
}

func (s *gamificacaoService) ConquistasUsuario(ctx context.Context, callerID uint, callerTipo string, usuarioID uint) ([]model.ConquistaUsuario, error) {
	if callerTipo != model.TipoPedagogo && callerID != usuarioID {
		return nil, ErrAcessoNegado
	}
	return s.repo.Conquista.ListByUsuario(ctx, usuarioID)
}

func (s *gamificacaoService) ConcederConquista(ctx context.Context, req *dto.ConcederConquistaRequest) (*model.ConquistaUsuario, error) {
	if _, err := s.repo.Usuario.GetByID(ctx, req.UsuarioID); err != nil {
		if pkgerrors.IsNotFound(err) {
			return nil, ErrUsuarioNaoEncontrado
		}
		return nil, err
	}
	atividade, err := s.repo.Atividade.GetByID(ctx, req.AtividadeID)
	if err != nil {
		if pkgerrors.IsNotFound(err) {
			return nil, ErrAtividadeNaoEncontrada
		}
		return nil, err
	}

	conquista := &model.ConquistaUsuario{
		UsuarioID:     req.UsuarioID,
		AtividadeID:   req.AtividadeID,
		DataConquista: time.Now(),
	}
	if err := s.repo.Conquista.Create(ctx, conquista); err != nil {
		if pkgerrors.IsDuplicate(err) {
			return nil, ErrConquistaJaConcedida
		}
		return nil, err
	}
	conquista.Atividade = atividade
	return conquista, nil
}

func (s *gamificacaoService) EstatisticasEscola(ctx context.Context, escolaID uint) (*dto.EstatisticasEscolaResponse, error) {
	if _, err := s.repo.Escola.GetByID(ctx, escolaID); err != nil {
		if pkgerrors.IsNotFound(err) {
			return nil, ErrEscolaNaoEncontrada
		}
		return nil, err
	}

	stats, err := s.repo.Leitura.EstatisticasEscola(ctx, escolaID)
	if err != nil {
		return nil, err
	}

	resp := &dto.EstatisticasEscolaResponse{
		TotalAlunos:     stats.TotalAlunos,
		AlunosAtivos:    stats.AlunosAtivos,
		PontuacaoMedia:  round2(stats.PontuacaoMedia),
		LivrosCompletos: stats.LivrosCompletos,
	}
	if stats.TotalAlunos > 0 {
		resp.TaxaEngajamento = round2(float64(stats.AlunosAtivos) / float64(stats.TotalAlunos) * 100)
	}
	return resp, nil
}
