package repository

import (
	"context"

	"gorm.io/gorm"

	"minasle/backend/internal/model"
)

// ClubeRepository is the reading-club data-access interface.
type ClubeRepository interface {
	Create(ctx context.Context, clube *model.ClubeLeitura) error
	GetByID(ctx context.Context, id uint) (*model.ClubeLeitura, error)
	List(ctx context.Context) ([]model.ClubeLeitura, error)
	CountMembros(ctx context.Context, clubeID uint) (int64, error)
	AddMembro(ctx context.Context, membro *model.MembroClube) error
	GetMembro(ctx context.Context, clubeID, usuarioID uint) (*model.MembroClube, error)
	RemoveMembro(ctx context.Context, clubeID, usuarioID uint) error
	ListMembros(ctx context.Context, clubeID uint) ([]model.MembroClube, error)
}

type clubeRepo struct {
	db *gorm.DB
}

// NewClubeRepo creates the GORM-backed ClubeRepository.
func NewClubeRepo(db *gorm.DB) ClubeRepository {
	return &clubeRepo{db: db}
}

func (r *clubeRepo) Create(ctx context.Context, clube *model.ClubeLeitura) error {
	return r.db.WithContext(ctx).Create(clube).Error
}

func (r *clubeRepo) GetByID(ctx context.Context, id uint) (*model.ClubeLeitura, error) {
	var clube model.ClubeLeitura
	if err := r.db.WithContext(ctx).First(&clube, id).Error; err != nil {
		return nil, err
	}
	return &clube, nil
}

func (r *clubeRepo) List(ctx context.Context) ([]model.ClubeLeitura, error) {
	var clubes []model.ClubeLeitura
	if err := r.db.WithContext(ctx).Order("id").Find(&clubes).Error; err != nil {
		return nil, err
	}
	return clubes, nil
}

func (r *clubeRepo) CountMembros(ctx context.Context, clubeID uint) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.MembroClube{}).
		Where("clube_id = ?", clubeID).
		Count(&total).Error
	return total, err
}

func (r *clubeRepo) AddMembro(ctx context.Context, membro *model.MembroClube) error {
	return r.db.WithContext(ctx).Create(membro).Error
}

func (r *clubeRepo) GetMembro(ctx context.Context, clubeID, usuarioID uint) (*model.MembroClube, error) {
	var membro model.MembroClube
	err := r.db.WithContext(ctx).
		Where("clube_id = ? AND usuario_id = ?", clubeID, usuarioID).
		First(&membro).Error
	if err != nil {
		return nil, err
	}
	return &membro, nil
}

func (r *clubeRepo) RemoveMembro(ctx context.Context, clubeID, usuarioID uint) error {
	return r.db.WithContext(ctx).
		Where("clube_id = ? AND usuario_id = ?", clubeID, usuarioID).
		Delete(&model.MembroClube{}).Error
}

func (r *clubeRepo) ListMembros(ctx context.Context, clubeID uint) ([]model.MembroClube, error) {
	var membros []model.MembroClube
	err := r.db.WithContext(ctx).
		Preload("Usuario").
		Where("clube_id = ?", clubeID).
		Order("data_entrada").
		Find(&membros).Error
	if err != nil {
		return nil, err
	}
	return membros, nil
}
