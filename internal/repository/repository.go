package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository aggregates the per-entity repositories.
type Repository struct {
	db *gorm.DB

	Escola         EscolaRepository
	Usuario        UsuarioRepository
	Livro          LivroRepository
	Leitura        LeituraRepository
	Atividade      AtividadeRepository
	Conquista      ConquistaRepository
	Clube          ClubeRepository
	Acompanhamento AcompanhamentoRepository
}

// NewRepository wires the repository aggregate.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:             db,
		Escola:         NewEscolaRepo(db),
		Usuario:        NewUsuarioRepo(db),
		Livro:          NewLivroRepo(db),
		Leitura:        NewLeituraRepo(db),
		Atividade:      NewAtividadeRepo(db),
		Conquista:      NewConquistaRepo(db),
		Clube:          NewClubeRepo(db),
		Acompanhamento: NewAcompanhamentoRepo(db),
	}
}

// Transaction runs fn against a repository aggregate bound to a single
// database transaction. Any error rolls back every write made inside fn.
// With no database bound, fn runs against the receiver itself.
func (r *Repository) Transaction(ctx context.Context, fn func(txRepo *Repository) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}
