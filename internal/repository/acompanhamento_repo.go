package repository

import (
	"context"

	"gorm.io/gorm"

	"minasle/backend/internal/model"
)

// AcompanhamentoRepository is the mentoring-record data-access interface.
type AcompanhamentoRepository interface {
	Create(ctx context.Context, acompanhamento *model.AcompanhamentoPedagogico) error
	ListByAluno(ctx context.Context, alunoID uint) ([]model.AcompanhamentoPedagogico, error)
}

type acompanhamentoRepo struct {
	db *gorm.DB
}

// NewAcompanhamentoRepo creates the GORM-backed AcompanhamentoRepository.
func NewAcompanhamentoRepo(db *gorm.DB) AcompanhamentoRepository {
	return &acompanhamentoRepo{db: db}
}

func (r *acompanhamentoRepo) Create(ctx context.Context, acompanhamento *model.AcompanhamentoPedagogico) error {
	return r.db.WithContext(ctx).Create(acompanhamento).Error
}

func (r *acompanhamentoRepo) ListByAluno(ctx context.Context, alunoID uint) ([]model.AcompanhamentoPedagogico, error) {
	var registros []model.AcompanhamentoPedagogico
	err := r.db.WithContext(ctx).
		Preload("Pedagogo").
		Where("aluno_id = ?", alunoID).
		Order("data DESC").
		Find(&registros).Error
	if err != nil {
		return nil, err
	}
	return registros, nil
}
