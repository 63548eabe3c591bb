package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// StatsRepo implementa repository.StatsRepository sobre PostgreSQL.
type StatsRepo struct {
	db Querier
}

var _ repository.StatsRepository = (*StatsRepo)(nil)

func NewStatsRepo(db Querier) *StatsRepo {
	return &StatsRepo{db: db}
}

func (r *StatsRepo) StockStats(ctx context.Context, client string) (*repository.StockStats, error) {
	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(COALESCE(total_stock, 0)), 0),
			COALESCE(SUM(COALESCE(price, 0) * COALESCE(total_stock, 0)), 0),
			COALESCE(SUM(COALESCE(cost, 0) * COALESCE(total_stock, 0)), 0),
			COUNT(*) FILTER (WHERE COALESCE(cost, 0) = 0),
			COUNT(*) FILTER (WHERE COALESCE(total_stock, 0) < 0)
		FROM products
		WHERE _client = $1 AND COALESCE(deleted, false) = false`

	var s repository.StockStats
	err := r.db.QueryRow(ctx, query, client).Scan(
		&s.ProductsCount,
		&s.TotalQuantity,
		&s.RetailValue,
		&s.CostValue,
		&s.ZeroCostCount,
		&s.NegativeStockCount,
	)
	if err != nil {
		return nil, fmt.Errorf("error al calcular estadísticas de inventario: %w", err)
	}

	// Best-effort: no todos los esquemas tienen expiry_date; el error se
	// traga y el conteo queda en cero.
	var expired int
	expiredQuery := `
		SELECT COUNT(*)
		FROM products
		WHERE _client = $1 AND COALESCE(deleted, false) = false
			AND expiry_date IS NOT NULL
			AND expiry_date < EXTRACT(EPOCH FROM NOW())`
	if err := r.db.QueryRow(ctx, expiredQuery, client).Scan(&expired); err == nil {
		s.ExpiredCount = expired
	}

	return &s, nil
}

func (r *StatsRepo) FilteredProducts(ctx context.Context, client, filter string, limit, offset int) ([]*entity.Product, int, error) {
	var cond string
	switch filter {
	case repository.ProductFilterZeroCost:
		cond = `COALESCE(cost, 0) = 0`
	case repository.ProductFilterNegativeStock:
		cond = `COALESCE(total_stock, 0) < 0`
	case repository.ProductFilterExpired:
		cond = `expiry_date IS NOT NULL AND expiry_date < EXTRACT(EPOCH FROM NOW())`
	default:
		return nil, 0, domain.ErrInvalidInput
	}

	where := `WHERE _client = $1 AND COALESCE(deleted, false) = false AND ` + cond

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products `+where, client).Scan(&total); err != nil {
		if filter == repository.ProductFilterExpired {
			// Esquema sin expiry_date: lista vacía en vez de 500.
			return nil, 0, nil
		}
		return nil, 0, fmt.Errorf("error al contar productos filtrados: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM products %s ORDER BY name LIMIT $2 OFFSET $3`, productColumns, where)
	rows, err := r.db.Query(ctx, query, client, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("error al listar productos filtrados: %w", err)
	}
	defer rows.Close()

	products, err := collectProducts(rows)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}
