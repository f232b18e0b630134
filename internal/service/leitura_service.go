package service

import (
	"context"
	"errors"
	"math"
	"time"

	"go.uber.org/zap"

	"minasle/backend/internal/dto"
	"minasle/backend/internal/model"
	"minasle/backend/internal/repository"
	pkgerrors "minasle/backend/pkg/errors"
)

var (
	ErrLeituraNaoEncontrada = errors.New("leitura não encontrada")
	ErrAcessoNegado         = errors.New("acesso negado")
	ErrProgressoInvalido    = errors.New("progresso deve estar entre 0 e 100")
)

// LeituraService tracks per-user reading progress and derives the reading
// statistics. Students only reach their own readings; pedagogues reach any.
type LeituraService interface {
	ListByUsuario(ctx context.Context, callerID uint, callerTipo string, usuarioID uint) ([]model.Leitura, error)
	Iniciar(ctx context.Context, usuarioID, livroID uint) (*model.Leitura, bool, error)
	AtualizarProgresso(ctx context.Context, callerID, leituraID uint, progresso int) (*model.Leitura, error)
	Estatisticas(ctx context.Context, callerID uint, callerTipo string, usuarioID uint) (*dto.EstatisticasLeituraResponse, error)
}

type leituraService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewLeituraService creates the LeituraService.
func NewLeituraService(repo *repository.Repository, logger *zap.Logger) LeituraService {
	return &leituraService{repo: repo, logger: logger}
}

func (s *leituraService) ListByUsuario(ctx context.Context, callerID uint, callerTipo string, usuarioID uint) ([]model.Leitura, error) {
	if callerTipo != model.TipoPedagogo && callerID != usuarioID {
		return nil, ErrAcessoNegado
	}
	return s.repo.Leitura.ListByUsuario(ctx, usuarioID)
}

// Iniciar starts a reading for the user, or returns the existing one when
// the pair already exists. The second return value reports whether a new
// reading was created.
func (s *leituraService) Iniciar(ctx context.Context, usuarioID, livroID uint) (*model.Leitura, bool, error) {
	if _, err := s.repo.Livro.GetByID(ctx, livroID); err != nil {
		if pkgerrors.IsNotFound(err) {
			return nil, false, ErrLivroNaoEncontrado
		}
		return nil, false, err
	}

	existente, err := s.repo.Leitura.GetByUsuarioAndLivro(ctx, usuarioID, livroID)
	if err == nil {
		return existente, false, nil
	}
	if !pkgerrors.IsNotFound(err) {
		return nil, false, err
	}

	leitura := &model.Leitura{
		UsuarioID:  usuarioID,
		LivroID:    livroID,
		Progresso:  0,
		DataInicio: time.Now(),
	}
	if err := s.repo.Leitura.Create(ctx, leitura); err != nil {
		if pkgerrors.IsDuplicate(err) {
			// concurrent start lost the race; the unique constraint kept a
			// single row, return it
			existente, getErr := s.repo.Leitura.GetByUsuarioAndLivro(ctx, usuarioID, livroID)
			if getErr != nil {
				return nil, false, getErr
			}
			return existente, false, nil
		}
		return nil, false, err
	}

	return leitura, true, nil
}

// AtualizarProgresso moves a reading to the given progress. The first time
// a reading reaches 100 it earns the completion bonus and, when a
// "leitura_completa" achievement exists, that achievement is granted. Both
// writes happen in a single transaction so points and grant never diverge.
func (s *leituraService) AtualizarProgresso(ctx context.Context, callerID, leituraID uint, progresso int) (*model.Leitura, error) {
	if progresso < 0 || progresso > 100 {
		return nil, ErrProgressoInvalido
	}

	leitura, err := s.repo.Leitura.GetByID(ctx, leituraID)
	if err != nil {
		if pkgerrors.IsNotFound(err) {
			return nil, ErrLeituraNaoEncontrada
		}
		return nil, err
	}
	if leitura.UsuarioID != callerID {
		return nil, ErrAcessoNegado
	}

	primeiraConclusao := progresso == 100 && leitura.DataConclusao == nil

	leitura.Progresso = progresso
	if primeiraConclusao {
		now := time.Now()
		leitura.DataConclusao = &now
		leitura.Pontuacao += model.PontuacaoConclusao
	}

	if !primeiraConclusao {
		if err := s.repo.Leitura.Update(ctx, leitura); err != nil {
			return nil, err
		}
		return leitura, nil
	}

	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.Leitura.Update(ctx, leitura); err != nil {
			return err
		}
		return s.concederConquistaConclusao(ctx, tx, leitura.UsuarioID)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("leitura concluída",
		zap.Uint("leitura_id", leitura.ID),
		zap.Uint("usuario_id", leitura.UsuarioID),
		zap.Uint("livro_id", leitura.LivroID))

	return leitura, nil
}

// concederConquistaConclusao grants the completion achievement when one is
// defined and not yet held. The composite key makes repeat grants no-ops.
func (s *leituraService) concederConquistaConclusao(ctx context.Context, tx *repository.Repository, usuarioID uint) error {
	atividade, err := tx.Atividade.FirstByTipo(ctx, model.TipoLeituraCompleta)
	if err != nil {
		if pkgerrors.IsNotFound(err) {
			return nil // no completion achievement defined
		}
		return err
	}

	conquista := &model.ConquistaUsuario{
		UsuarioID:     usuarioID,
		AtividadeID:   atividade.ID,
		DataConquista: time.Now(),
	}
	if err := tx.Conquista.Create(ctx, conquista); err != nil {
		if pkgerrors.IsDuplicate(err) {
			return nil // already granted by an earlier completion
		}
		return err
	}
	return nil
}

func (s *leituraService) Estatisticas(ctx context.Context, callerID uint, callerTipo string, usuarioID uint) (*dto.EstatisticasLeituraResponse, error) {
	if callerTipo != model.TipoPedagogo && callerID != usuarioID {
		return nil, ErrAcessoNegado
	}

	stats, err := s.repo.Leitura.EstatisticasUsuario(ctx, usuarioID)
	if err != nil {
		return nil, err
	}

	resp := &dto.EstatisticasLeituraResponse{
		TotalLeituras:            stats.Total,
		LeiturasCompletas:        stats.Completas,
		PontuacaoTotal:           stats.Pontuacao,
		ProgressoMedio:           round2(stats.ProgressoMedio),
		LivrosRegionaisCompletos: stats.RegionaisCompletas,
	}
	if stats.Total > 0 {
		resp.TaxaConclusao = round2(float64(stats.Completas) / float64(stats.Total) * 100)
	}
	return resp, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
