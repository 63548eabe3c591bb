package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// ShiftClose campos opcionales al cerrar un turno (COALESCE: nil no modifica).
type ShiftClose struct {
	ClosingBalance *decimal.Decimal
	Notes          *string
}

// ShiftRepository define el puerto de persistencia para Shift.
type ShiftRepository interface {
	Create(ctx context.Context, shift *entity.Shift) error
	// OpenByClient devuelve el turno abierto más reciente del inquilino, nil si no hay.
	OpenByClient(ctx context.Context, client string) (*entity.Shift, error)
	// OpenByUser devuelve el turno abierto de la pareja (inquilino, operador), nil si no hay.
	OpenByUser(ctx context.Context, client, user string) (*entity.Shift, error)
	History(ctx context.Context, client string, limit, offset int) ([]*entity.Shift, error)
	CountByClient(ctx context.Context, client string) (int, error)
	// CloseOpen cierra el turno abierto de (inquilino, operador) y devuelve la
	// fila actualizada; nil si no había turno abierto.
	CloseOpen(ctx context.Context, client, user string, c ShiftClose, now int64) (*entity.Shift, error)
}
