// Package repository provides bun-backed data access for the gym models.
//
// Every repository is constructed over a bun.IDB so the same code runs against
// a *bun.DB or inside a bun.Tx.
package repository

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository is generic CRUD access for a bun model with a single integer primary key.
type Repository[T any] struct {
	db bun.IDB
}

// New returns a Repository for T over db.
func New[T any](db bun.IDB) *Repository[T] {
	return &Repository[T]{db: db}
}

// FindAll returns every row in primary key order.
func (r *Repository[T]) FindAll(ctx context.Context) ([]T, error) {
	rows := []T{}
	err := r.db.NewSelect().Model(&rows).OrderExpr("?TablePKs ASC").Scan(ctx)
	return rows, err
}

// FindByID returns the row with the given primary key or sql.ErrNoRows.
func (r *Repository[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	m := new(T)
	if err := r.db.NewSelect().Model(m).Where("?TablePKs = ?", id).Scan(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

// ExistsByID reports whether a row with the given primary key exists.
func (r *Repository[T]) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return r.db.NewSelect().Model((*T)(nil)).Where("?TablePKs = ?", id).Exists(ctx)
}

// Count returns the number of rows.
func (r *Repository[T]) Count(ctx context.Context) (int, error) {
	return r.db.NewSelect().Model((*T)(nil)).Count(ctx)
}

// Create inserts m and fills in its generated primary key.
func (r *Repository[T]) Create(ctx context.Context, m *T) error {
	_, err := r.db.NewInsert().Model(m).Exec(ctx)
	return err
}

// Update writes every column of m, matched by primary key.
func (r *Repository[T]) Update(ctx context.Context, m *T) error {
	_, err := r.db.NewUpdate().Model(m).WherePK().Exec(ctx)
	return err
}

// DeleteByID removes the row with the given primary key. Deleting a missing row is not an error.
func (r *Repository[T]) DeleteByID(ctx context.Context, id int64) error {
	_, err := r.db.NewDelete().Model((*T)(nil)).Where("?PKs = ?", id).Exec(ctx)
	return err
}
