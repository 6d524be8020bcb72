package database

import (
	"context"
	"database/sql"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*TaskRepo
	*WorkspaceRepo

	// db is nil when the repository is bound to a transaction
	db *sql.DB
}

var _ DataStore = (*Repository)(nil)

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return newRepository(db, db)
}

func newRepository(q querier, db *sql.DB) *Repository {
	return &Repository{
		TaskRepo:      &TaskRepo{db: q},
		WorkspaceRepo: &WorkspaceRepo{db: q},
		db:            db,
	}
}

// InTx runs fn inside a transaction. Nested calls reuse the outer transaction.
func (r *Repository) InTx(ctx context.Context, fn func(DataStore) error) error {
	if r.db == nil {
		return fn(r)
	}
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		return fn(newRepository(tx, nil))
	})
}
