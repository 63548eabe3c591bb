package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// CategoryRepo implementa repository.CategoryRepository sobre PostgreSQL.
// Las categorías no tienen tabla propia: se derivan del jsonb de productos.
type CategoryRepo struct {
	db Querier
}

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

func NewCategoryRepo(db Querier) *CategoryRepo {
	return &CategoryRepo{db: db}
}

func (r *CategoryRepo) ListNames(ctx context.Context, client string) ([]string, error) {
	query := `
		SELECT DISTINCT jsonb_array_elements_text(categories) AS category
		FROM products
		WHERE _client = $1
			AND COALESCE(deleted, false) = false
			AND jsonb_typeof(categories) = 'array'
		ORDER BY category`

	rows, err := r.db.Query(ctx, query, client)
	if err != nil {
		return nil, fmt.Errorf("error al listar categorías: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("error al leer categoría: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
