package repository

import (
	"context"

	"gorm.io/gorm"

	"minasle/backend/internal/model"
)

// LivroFiltros are the optional catalog filters. Genero and Autor match by
// case-insensitive substring, ObraRegional by exact flag.
type LivroFiltros struct {
	Genero       string
	Autor        string
	ObraRegional *bool
}

// LivroRepository is the book data-access interface.
type LivroRepository interface {
	Create(ctx context.Context, livro *model.Livro) error
	GetByID(ctx context.Context, id uint) (*model.Livro, error)
	List(ctx context.Context, filtros LivroFiltros) ([]model.Livro, error)
	Update(ctx context.Context, livro *model.Livro) error
	Delete(ctx context.Context, id uint) error
}

type livroRepo struct {
	db *gorm.DB
}

// NewLivroRepo creates the GORM-backed LivroRepository.
func NewLivroRepo(db *gorm.DB) LivroRepository {
	return &livroRepo{db: db}
}

func (r *livroRepo) Create(ctx context.Context, livro *model.Livro) error {
	return r.db.WithContext(ctx).Create(livro).Error
}

func (r *livroRepo) GetByID(ctx context.Context, id uint) (*model.Livro, error) {
	var livro model.Livro
	if err := r.db.WithContext(ctx).First(&livro, id).Error; err != nil {
		return nil, err
	}
	return &livro, nil
}

func (r *livroRepo) List(ctx context.Context, filtros LivroFiltros) ([]model.Livro, error) {
	db := r.db.WithContext(ctx).Model(&model.Livro{})

	if filtros.Genero != "" {
		db = db.Where("genero ILIKE ?", "%"+filtros.Genero+"%")
	}
	if filtros.Autor != "" {
		db = db.Where("autor ILIKE ?", "%"+filtros.Autor+"%")
	}
	if filtros.ObraRegional != nil {
		db = db.Where("obra_regional = ?", *filtros.ObraRegional)
	}

	var livros []model.Livro
	if err := db.Order("id").Find(&livros).Error; err != nil {
		return nil, err
	}
	return livros, nil
}

func (r *livroRepo) Update(ctx context.Context, livro *model.Livro) error {
	return r.db.WithContext(ctx).Save(livro).Error
}

func (r *livroRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Livro{}, id).Error
}
