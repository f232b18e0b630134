package repository

import (
	"context"

	"gorm.io/gorm"

	"minasle/backend/internal/model"
)

// EscolaRepository is the school data-access interface.
type EscolaRepository interface {
	Create(ctx context.Context, escola *model.Escola) error
	GetByID(ctx context.Context, id uint) (*model.Escola, error)
	List(ctx context.Context) ([]model.Escola, error)
	CountUsuarios(ctx context.Context, escolaID uint) (int64, error)
	Delete(ctx context.Context, id uint) error
}

type escolaRepo struct {
	db *gorm.DB
}

// NewEscolaRepo creates the GORM-backed EscolaRepository.
func NewEscolaRepo(db *gorm.DB) EscolaRepository {
	return &escolaRepo{db: db}
}

func (r *escolaRepo) Create(ctx context.Context, escola *model.Escola) error {
	return r.db.WithContext(ctx).Create(escola).Error
}

func (r *escolaRepo) GetByID(ctx context.Context, id uint) (*model.Escola, error) {
	var escola model.Escola
	if err := r.db.WithContext(ctx).First(&escola, id).Error; err != nil {
		return nil, err
	}
	return &escola, nil
}

func (r *escolaRepo) List(ctx context.Context) ([]model.Escola, error) {
	var escolas []model.Escola
	if err := r.db.WithContext(ctx).Order("id").Find(&escolas).Error; err != nil {
		return nil, err
	}
	return escolas, nil
}

func (r *escolaRepo) CountUsuarios(ctx context.Context, escolaID uint) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.Usuario{}).
		Where("escola_id = ?", escolaID).
		Count(&total).Error
	return total, err
}

func (r *escolaRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Escola{}, id).Error
}
