package repository

import (
	"context"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// MoneyFilter filtros de búsqueda de movimientos de dinero.
type MoneyFilter struct {
	Type     string
	Account  string
	FromDate *int64
	ToDate   *int64
}

// MoneyMovementRepository puerto de solo lectura sobre money_movements.
type MoneyMovementRepository interface {
	Search(ctx context.Context, client string, f MoneyFilter, limit, offset int) ([]*entity.MoneyMovement, int, error)
}
