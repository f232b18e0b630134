package repository

import (
	"context"

	"gorm.io/gorm"

	"minasle/backend/internal/model"
)

// AtividadeRepository is the achievement-definition data-access interface.
type AtividadeRepository interface {
	Create(ctx context.Context, atividade *model.AtividadeGamificacao) error
	GetByID(ctx context.Context, id uint) (*model.AtividadeGamificacao, error)
	List(ctx context.Context) ([]model.AtividadeGamificacao, error)
	FirstByTipo(ctx context.Context, tipo string) (*model.AtividadeGamificacao, error)
}

type atividadeRepo struct {
	db *gorm.DB
}

// NewAtividadeRepo creates the GORM-backed AtividadeRepository.
func NewAtividadeRepo(db *gorm.DB) AtividadeRepository {
	return &atividadeRepo{db: db}
}

func (r *atividadeRepo) Create(ctx context.Context, atividade *model.AtividadeGamificacao) error {
	return r.db.WithContext(ctx).Create(atividade).Error
}

func (r *atividadeRepo) GetByID(ctx context.Context, id uint) (*model.AtividadeGamificacao, error) {
	var atividade model.AtividadeGamificacao
	if err := r.db.WithContext(ctx).First(&atividade, id).Error; err != nil {
		return nil, err
	}
	return &atividade, nil
}

func (r *atividadeRepo) List(ctx context.Context) ([]model.AtividadeGamificacao, error) {
	var atividades []model.AtividadeGamificacao
	if err := r.db.WithContext(ctx).Order("id").Find(&atividades).Error; err != nil {
		return nil, err
	}
	return atividades, nil
}

func (r *atividadeRepo) FirstByTipo(ctx context.Context, tipo string) (*model.AtividadeGamificacao, error) {
	var atividade model.AtividadeGamificacao
	err := r.db.WithContext(ctx).
		Where("tipo = ?", tipo).
		Order("id").
		First(&atividade).Error
	if err != nil {
		return nil, err
	}
	return &atividade, nil
}

// ConquistaRepository is the achievement-grant data-access interface.
type ConquistaRepository interface {
	Create(ctx context.Context, conquista *model.ConquistaUsuario) error
	Get(ctx context.Context, usuarioID, atividadeID uint) (*model.ConquistaUsuario, error)
	ListByUsuario(ctx context.Context, usuarioID uint) ([]model.ConquistaUsuario, error)
}

type conquistaRepo struct {
	db *gorm.DB
}

// NewConquistaRepo creates the GORM-backed ConquistaRepository.
func NewConquistaRepo(db *gorm.DB) ConquistaRepository {
	return &conquistaRepo{db: db}
}

func (r *conquistaRepo) Create(ctx context.Context, conquista *model.ConquistaUsuario) error {
	return r.db.WithContext(ctx).Create(conquista).Error
}

func (r *conquistaRepo) Get(ctx context.Context, usuarioID, atividadeID uint) (*model.ConquistaUsuario, error) {
	var conquista model.ConquistaUsuario
	err := r.db.WithContext(ctx).
		Where("usuario_id = ? AND atividade_id = ?", usuarioID, atividadeID).
		First(&conquista).Error
	if err != nil {
		return nil, err
	}
	return &conquista, nil
}

func (r *conquistaRepo) ListByUsuario(ctx context.Context, usuarioID uint) ([]model.ConquistaUsuario, error) {
	var conquistas []model.ConquistaUsuario
	err := r.db.WithContext(ctx).
		Preload("Atividade").
		Where("usuario_id = ?", usuarioID).
		Order("data_conquista DESC").
		Find(&conquistas).Error
	if err != nil {
		return nil, err
	}
	return conquistas, nil
}
