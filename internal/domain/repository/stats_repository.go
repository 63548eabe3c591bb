package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// Filtros de producto para el listado de problemas de inventario.
const (
	ProductFilterZeroCost      = "zero_cost"
	ProductFilterNegativeStock = "negative_stock"
	ProductFilterExpired       = "expired"
)

// StockStats agregados de inventario de un inquilino.
type StockStats struct {
	ProductsCount      int             `json:"productsCount"`
	TotalQuantity      decimal.Decimal `json:"totalQuantity"`
	RetailValue        decimal.Decimal `json:"retailValue"`
	CostValue          decimal.Decimal `json:"costValue"`
	ZeroCostCount      int             `json:"zeroCostCount"`
	NegativeStockCount int             `json:"negativeStockCount"`
	ExpiredCount       int             `json:"expiredCount"`
}

// StatsRepository consultas de solo lectura sobre el inventario.
type StatsRepository interface {
	// StockStats calcula los agregados sobre los productos no borrados con
	// stock. El conteo de vencidos es best-effort: un esquema sin columna
	// expiry_date devuelve 0 sin fallar.
	StockStats(ctx context.Context, client string) (*StockStats, error)
	// FilteredProducts pagina los productos que caen en uno de los filtros
	// de problema (costo cero, stock negativo, vencidos).
	FilteredProducts(ctx context.Context, client, filter string, limit, offset int) ([]*entity.Product, int, error)
}
