package repository

import (
	"context"

	"gorm.io/gorm"

	"minasle/backend/internal/model"
)

// UsuarioRepository is the user data-access interface.
type UsuarioRepository interface {
	Create(ctx context.Context, usuario *model.Usuario) error
	GetByID(ctx context.Context, id uint) (*model.Usuario, error)
	GetByEmail(ctx context.Context, email string) (*model.Usuario, error)
	List(ctx context.Context) ([]model.Usuario, error)
	Delete(ctx context.Context, id uint) error
}

type usuarioRepo struct {
	db *gorm.DB
}

// NewUsuarioRepo creates the GORM-backed UsuarioRepository.
func NewUsuarioRepo(db *gorm.DB) UsuarioRepository {
	return &usuarioRepo{db: db}
}

func (r *usuarioRepo) Create(ctx context.Context, usuario *model.Usuario) error {
	return r.db.WithContext(ctx).Create(usuario).Error
}

func (r *usuarioRepo) GetByID(ctx context.Context, id uint) (*model.Usuario, error) {
	var usuario model.Usuario
	err := r.db.WithContext(ctx).
		Preload("Escola").
		First(&usuario, id).Error
	if err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (r *usuarioRepo) GetByEmail(ctx context.Context, email string) (*model.Usuario, error) {
	var usuario model.Usuario
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&usuario).Error
	if err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (r *usuarioRepo) List(ctx context.Context) ([]model.Usuario, error) {
	var usuarios []model.Usuario
	err := r.db.WithContext(ctx).
		Preload("Escola").
		Order("id").
		Find(&usuarios).Error
	if err != nil {
		return nil, err
	}
	return usuarios, nil
}

func (r *usuarioRepo) Delete(ctx context.Context, id uint) error {
	// readings, memberships, grants and mentoring records cascade in the
	// database schema
	return r.db.WithContext(ctx).Delete(&model.Usuario{}, id).Error
}
