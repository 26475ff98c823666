package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

type categoryStore interface {
	ListCategoriesByType(ctx context.Context) ([]sqlcgen.Category, error)
	ListCategoriesByID(ctx context.Context) ([]sqlcgen.Category, error)
	GetCategory(ctx context.Context, id int64) (sqlcgen.Category, error)
	CreateCategory(ctx context.Context, type_ string) (sqlcgen.Category, error)
	DeleteCategory(ctx context.Context, id int64) (int64, error)
}

// CategoryRepository exposes typed DB operations for category rows.
type CategoryRepository struct {
	store categoryStore
}

// NewCategoryRepository wraps sqlc Queries for category-specific operations.
func NewCategoryRepository(store categoryStore) *CategoryRepository {
	return &CategoryRepository{store: store}
}

// ListByType returns every category ordered by its label.
func (r *CategoryRepository) ListByType(ctx context.Context) ([]sqlcgen.Category, error) {
	return r.store.ListCategoriesByType(ctx)
}

// ListByID returns every category ordered by id.
func (r *CategoryRepository) ListByID(ctx context.Context) ([]sqlcgen.Category, error) {
	return r.store.ListCategoriesByID(ctx)
}

func (r *CategoryRepository) Get(ctx context.Context, id int64) (sqlcgen.Category, error) {
	c, err := r.store.GetCategory(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return sqlcgen.Category{}, ErrNotFound
	}
	return c, err
}

func (r *CategoryRepository) Insert(ctx context.Context, label string) (sqlcgen.Category, error) {
	return r.store.CreateCategory(ctx, label)
}

// Delete removes a category. Questions referencing it are left untouched.
func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	n, err := r.store.DeleteCategory(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
