package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// CounterRepo implementa repository.CounterRepository sobre PostgreSQL.
// Upsert con incremento en una sola sentencia: dos transacciones concurrentes
// nunca obtienen el mismo número.
type CounterRepo struct {
	db Querier
}

var _ repository.CounterRepository = (*CounterRepo)(nil)

func NewCounterRepo(db Querier) *CounterRepo {
	return &CounterRepo{db: db}
}

func (r *CounterRepo) Next(ctx context.Context, client, name string) (int64, error) {
	query := `
		INSERT INTO doc_counters (_client, name, value)
		VALUES ($1, $2, 1)
		ON CONFLICT (_client, name)
		DO UPDATE SET value = doc_counters.value + 1
		RETURNING value`

	var value int64
	if err := r.db.QueryRow(ctx, query, client, name).Scan(&value); err != nil {
		return 0, fmt.Errorf("error al asignar número de secuencia %s: %w", name, err)
	}
	return value, nil
}
