package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// CatalogFilter filtros de búsqueda de productos.
type CatalogFilter struct {
	Search   string // ILIKE sobre name, sku y barcode
	Category string
	InStock  bool
}

// ProductLookup datos mínimos de un producto para hidratar resultados de búsqueda.
type ProductLookup struct {
	Name    string
	Cost    decimal.Decimal
	Price   decimal.Decimal
	Barcode string
	SKU     string
}

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, client, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	ListByClient(ctx context.Context, client string, limit, offset int) ([]*entity.Product, error)
	CountByClient(ctx context.Context, client string) (int, error)
	Search(ctx context.Context, client string, f CatalogFilter, limit, offset int) ([]*entity.Product, int, error)
	// LookupByIDs devuelve nombre, costo, precio, barcode y sku por id.
	// Los ids no encontrados simplemente se omiten del mapa.
	LookupByIDs(ctx context.Context, ids []string) (map[string]ProductLookup, error)
	// AddStock suma qty (con signo) a stock[store] y a total_stock en una
	// sola sentencia. No valida existencias: el stock negativo se permite.
	AddStock(ctx context.Context, client, productID, store string, qty decimal.Decimal, now int64) error
}
