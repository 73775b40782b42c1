package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/cytochromxxx/StockControl/internal/domain/entity"
	"github.com/cytochromxxx/StockControl/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación de CategoryRepository sobre PostgreSQL (usable con pool o tx).
// Las categorías se siembran en la migración inicial; la columna position
// fija el orden de definición que gobierna dashboard y agrupación.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// List devuelve las categorías en su orden de definición.
func (r *CategoryRepo) List() ([]*entity.CategoryDef, error) {
	query := `
		SELECT id, key, label, default_threshold, created_at
		FROM categories ORDER BY position`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var list []*entity.CategoryDef
	for rows.Next() {
		var c entity.CategoryDef
		if err := rows.Scan(&c.ID, &c.Key, &c.Label, &c.DefaultThreshold, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// GetByKey obtiene una categoría por su clave. Devuelve (nil, nil) si no existe.
func (r *CategoryRepo) GetByKey(key string) (*entity.CategoryDef, error) {
	query := `
		SELECT id, key, label, default_threshold, created_at
		FROM categories WHERE key = $1`
	var c entity.CategoryDef
	err := r.q.QueryRow(context.Background(), query, key).Scan(
		&c.ID, &c.Key, &c.Label, &c.DefaultThreshold, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}
