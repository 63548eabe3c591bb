package entity

import "github.com/shopspring/decimal"

// StockMap existencias por tienda: id de tienda -> cantidad disponible.
// El mapa es disperso: una tienda ausente equivale a cantidad cero.
type StockMap map[string]decimal.Decimal

// Total suma todas las cantidades del mapa.
func (s StockMap) Total() decimal.Decimal {
	total := decimal.Zero
	for _, qty := range s {
		total = total.Add(qty)
	}
	return total
}

// Product representa un artículo del catálogo.
// TotalStock es la suma desnormalizada de Stock; la creación de documentos
// actualiza ambos en la misma sentencia, nada reconcilia derivas de otros
// escritores.
type Product struct {
	ID          string
	Client      string // inquilino (_client)
	User        string // creador (_user)
	App         string
	Name        string
	SKU         string
	Code        string
	Barcode     string
	Price       decimal.Decimal
	Cost        decimal.Decimal
	Type        string // inventory, service, ...
	Categories  []string
	Unit        string
	Description string
	TaxFree     bool
	FreePrice   bool
	IsWeighed   bool
	Stock       StockMap
	TotalStock  decimal.Decimal
	Deleted     bool
	Created     int64 // epoch segundos
	Updated     int64
	CreatedMS   int64
}
