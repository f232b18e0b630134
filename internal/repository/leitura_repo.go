package repository

import (
	"context"

	"gorm.io/gorm"

	"minasle/backend/internal/model"
)

// EstatisticasUsuario are the per-user reading aggregates.
type EstatisticasUsuario struct {
	Total              int64
	Completas          int64
	Pontuacao          int64
	ProgressoMedio     float64
	RegionaisCompletas int64
}

// EstatisticasEscola are the school-wide reading aggregates over students.
type EstatisticasEscola struct {
	TotalAlunos     int64
	AlunosAtivos    int64
	PontuacaoMedia  float64
	LivrosCompletos int64
}

// RankingRow is one row of the student points ranking.
type RankingRow struct {
	UsuarioID uint
	Nome      string
	Pontuacao int64
}

// LeituraRepository is the reading data-access interface. It also owns the
// aggregate queries over readings (stats, ranking).
type LeituraRepository interface {
	Create(ctx context.Context, leitura *model.Leitura) error
	GetByID(ctx context.Context, id uint) (*model.Leitura, error)
	GetByUsuarioAndLivro(ctx context.Context, usuarioID, livroID uint) (*model.Leitura, error)
	ListByUsuario(ctx context.Context, usuarioID uint) ([]model.Leitura, error)
	Update(ctx context.Context, leitura *model.Leitura) error
	EstatisticasUsuario(ctx context.Context, usuarioID uint) (*EstatisticasUsuario, error)
	EstatisticasEscola(ctx context.Context, escolaID uint) (*EstatisticasEscola, error)
	Ranking(ctx context.Context, limit int) ([]RankingRow, error)
}

type leituraRepo struct {
	db *gorm.DB
}

// NewLeituraRepo creates the GORM-backed LeituraRepository.
func NewLeituraRepo(db *gorm.DB) LeituraRepository {
	return &leituraRepo{db: db}
}

func (r *leituraRepo) Create(ctx context.Context, leitura *model.Leitura) error {
	return r.db.WithContext(ctx).Create(leitura).Error
}

func (r *leituraRepo) GetByID(ctx context.Context, id uint) (*model.Leitura, error) {
	var leitura model.Leitura
	err := r.db.WithContext(ctx).
		Preload("Livro").
		First(&leitura, id).Error
	if err != nil {
		return nil, err
	}
	return &leitura, nil
}

func (r *leituraRepo) GetByUsuarioAndLivro(ctx context.Context, usuarioID, livroID uint) (*model.Leitura, error) {
	var leitura model.Leitura
	err := r.db.WithContext(ctx).
		Where("usuario_id = ? AND livro_id = ?", usuarioID, livroID).
		First(&leitura).Error
	if err != nil {
		return nil, err
	}
	return &leitura, nil
}

func (r *leituraRepo) ListByUsuario(ctx context.Context, usuarioID uint) ([]model.Leitura, error) {
	var leituras []model.Leitura
	err := r.db.WithContext(ctx).
		Preload("Livro").
		Where("usuario_id = ?", usuarioID).
		Order("data_inicio DESC").
		Find(&leituras).Error
	if err != nil {
		return nil, err
	}
	return leituras, nil
}

func (r *leituraRepo) Update(ctx context.Context, leitura *model.Leitura) error {
	return r.db.WithContext(ctx).Save(leitura).Error
}

func (r *leituraRepo) EstatisticasUsuario(ctx context.Context, usuarioID uint) (*EstatisticasUsuario, error) {
	var stats EstatisticasUsuario

	err := r.db.WithContext(ctx).
		Model(&model.Leitura{}).
		Select(`COUNT(*) AS total,
			COUNT(*) FILTER (WHERE progresso = 100) AS completas,
			COALESCE(SUM(pontuacao), 0) AS pontuacao,
			COALESCE(AVG(progresso), 0) AS progresso_medio`).
		Where("usuario_id = ?", usuarioID).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).
		Model(&model.Leitura{}).
		Joins("JOIN livros ON livros.id = leituras.livro_id").
		Where("leituras.usuario_id = ? AND livros.obra_regional AND leituras.progresso = 100", usuarioID).
		Count(&stats.RegionaisCompletas).Error
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

func (r *leituraRepo) EstatisticasEscola(ctx context.Context, escolaID uint) (*EstatisticasEscola, error) {
	var stats EstatisticasEscola

	err := r.db.WithContext(ctx).
		Model(&model.Usuario{}).
		Where("escola_id = ? AND tipo_usuario = ?", escolaID, model.TipoAluno).
		Count(&stats.TotalAlunos).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).
		Model(&model.Usuario{}).
		Distinct("usuarios.id").
		Joins("JOIN leituras ON leituras.usuario_id = usuarios.id").
		Where("usuarios.escola_id = ? AND usuarios.tipo_usuario = ?", escolaID, model.TipoAluno).
		Count(&stats.AlunosAtivos).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).
		Model(&model.Leitura{}).
		Select("COALESCE(AVG(leituras.pontuacao), 0)").
		Joins("JOIN usuarios ON usuarios.id = leituras.usuario_id").
		Where("usuarios.escola_id = ? AND usuarios.tipo_usuario = ?", escolaID, model.TipoAluno).
		Scan(&stats.PontuacaoMedia).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).
		Model(&model.Leitura{}).
		Joins("JOIN usuarios ON usuarios.id = leituras.usuario_id").
		Where("usuarios.escola_id = ? AND usuarios.tipo_usuario = ? AND leituras.progresso = 100",
			escolaID, model.TipoAluno).
		Count(&stats.LivrosCompletos).Error
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

func (r *leituraRepo) Ranking(ctx context.Context, limit int) ([]RankingRow, error) {
	var rows []RankingRow
	// LEFT JOIN keeps students without readings in the ranking with 0
	// points; ties break on user id so the order is stable.
	err := r.db.WithContext(ctx).
		Model(&model.Usuario{}).
		Select("usuarios.id AS usuario_id, usuarios.nome, COALESCE(SUM(leituras.pontuacao), 0) AS pontuacao").
		Joins("LEFT JOIN leituras ON leituras.usuario_id = usuarios.id").
		Where("usuarios.tipo_usuario = ?", model.TipoAluno).
		Group("usuarios.id, usuarios.nome").
		Order("pontuacao DESC, usuarios.id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
