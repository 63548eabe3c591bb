package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name        string           `json:"name"`
	SKU         string           `json:"sku"`
	Code        string           `json:"code"`
	Barcode     string           `json:"barcode"`
	Price       *decimal.Decimal `json:"price"`
	Cost        *decimal.Decimal `json:"cost"`
	Type        string           `json:"type"`
	Categories  []string         `json:"categories"`
	Unit        string           `json:"unit"`
	Description string           `json:"description"`
	TaxFree     bool             `json:"tax_free"`
	FreePrice   bool             `json:"free_price"`
	IsWeighed   bool             `json:"is_weighed"`
}

// UpdateProductRequest actualización parcial: un campo nil deja el valor
// almacenado intacto (semántica COALESCE del API legado).
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	SKU         *string          `json:"sku"`
	Code        *string          `json:"code"`
	Barcode     *string          `json:"barcode"`
	Price       *decimal.Decimal `json:"price"`
	Cost        *decimal.Decimal `json:"cost"`
	Type        *string          `json:"type"`
	Categories  []string         `json:"categories"`
	Unit        *string          `json:"unit"`
	Description *string          `json:"description"`
	Deleted     *bool            `json:"deleted"`
	TaxFree     *bool            `json:"tax_free"`
	FreePrice   *bool            `json:"free_price"`
	IsWeighed   *bool            `json:"is_weighed"`
	Stock       entity.StockMap  `json:"stock"`
	TotalStock  *decimal.Decimal `json:"total_stock"`
}

// ProductResponse salida de un producto con los nombres de campo legados.
type ProductResponse struct {
	ID          string          `json:"_id"`
	Client      string          `json:"_client"`
	User        string          `json:"_user"`
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	Code        string          `json:"code"`
	Barcode     string          `json:"barcode"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	Type        string          `json:"type"`
	Categories  []string        `json:"categories"`
	Unit        string          `json:"unit"`
	Description string          `json:"description"`
	TaxFree     bool            `json:"tax_free"`
	FreePrice   bool            `json:"free_price"`
	IsWeighed   bool            `json:"is_weighed"`
	Stock       entity.StockMap `json:"stock"`
	TotalStock  decimal.Decimal `json:"total_stock"`
	Deleted     bool            `json:"deleted"`
	Created     int64           `json:"created"`
	Updated     int64           `json:"updated"`
}

// ToProductResponse convierte la entidad al contrato JSON legado.
func ToProductResponse(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID:          p.ID,
		Client:      p.Client,
		User:        p.User,
		Name:        p.Name,
		SKU:         p.SKU,
		Code:        p.Code,
		Barcode:     p.Barcode,
		Price:       p.Price,
		Cost:        p.Cost,
		Type:        p.Type,
		Categories:  p.Categories,
		Unit:        p.Unit,
		Description: p.Description,
		TaxFree:     p.TaxFree,
		FreePrice:   p.FreePrice,
		IsWeighed:   p.IsWeighed,
		Stock:       p.Stock,
		TotalStock:  p.TotalStock,
		Deleted:     p.Deleted,
		Created:     p.Created,
		Updated:     p.Updated,
	}
}

// ToProductResponses convierte un listado.
func ToProductResponses(list []*entity.Product) []ProductResponse {
	items := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *ToProductResponse(p))
	}
	return items
}
