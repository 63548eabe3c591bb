package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// SearchDocsRequest filtros del cuerpo de POST /search/docs. Acepta tanto
// from/to como from_date/to_date (el frontend legado usa ambas formas).
type SearchDocsRequest struct {
	Type     string   `json:"type"`
	Types    []string `json:"types"`
	Store    string   `json:"store"`
	Stores   []string `json:"stores"`
	From     *int64   `json:"from"`
	To       *int64   `json:"to"`
	FromDate *int64   `json:"from_date"`
	ToDate   *int64   `json:"to_date"`
	Search   string   `json:"search"`
}

// SearchMoneyRequest filtros del cuerpo de POST /search/money.
type SearchMoneyRequest struct {
	Type     string `json:"type"`
	Account  string `json:"account"`
	FromDate *int64 `json:"from_date"`
	ToDate   *int64 `json:"to_date"`
}

// SearchCatalogRequest filtros del cuerpo de POST /search/catalog.
type SearchCatalogRequest struct {
	Search   string `json:"search"`
	Category string `json:"category"`
	InStock  bool   `json:"in_stock"`
}

// SearchClientsRequest filtros del cuerpo de POST /search/clients.
type SearchClientsRequest struct {
	Search string `json:"search"`
	Type   string `json:"type"`
}

// SearchLineItem línea de documento enriquecida por la hidratación.
type SearchLineItem struct {
	entity.DocLine
	Name    string          `json:"name"`
	Barcode string          `json:"barcode"`
	SKU     string          `json:"sku"`
	Price   decimal.Decimal `json:"price"`
	Cost    decimal.Decimal `json:"cost"`
}

// SearchDocResponse fila de documento hidratada: además de los campos del
// documento lleva nombres resueltos y el costo total calculado.
type SearchDocResponse struct {
	DocumentResponse
	Total           decimal.Decimal  `json:"total"`
	CostTotal       decimal.Decimal  `json:"cost_total"`
	StoreID         string           `json:"_store,omitempty"`
	StoreName       string           `json:"store_name"`
	TargetID        string           `json:"_target,omitempty"`
	TargetStoreName string           `json:"target_store_name"`
	CustomerID      string           `json:"_customer,omitempty"`
	CustomerName    string           `json:"customer_name"`
	AuthorName      string           `json:"author_name"`
	Items           []SearchLineItem `json:"items"`
	Discount        decimal.Decimal  `json:"discount"`
}

// MoneyMovementResponse salida con los nombres de campo legados.
type MoneyMovementResponse struct {
	ID          string          `json:"_id"`
	Client      string          `json:"_client"`
	User        string          `json:"_user"`
	Type        string          `json:"type"`
	Account     string          `json:"account"`
	Sum         decimal.Decimal `json:"sum"`
	Date        int64           `json:"date"`
	Description string          `json:"description,omitempty"`
	Created     int64           `json:"created"`
	Updated     int64           `json:"updated"`
}

// ToMoneyMovementResponses convierte un listado.
func ToMoneyMovementResponses(list []*entity.MoneyMovement) []MoneyMovementResponse {
	items := make([]MoneyMovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, MoneyMovementResponse{
			ID: m.ID, Client: m.Client, User: m.User,
			Type: m.Type, Account: m.Account, Sum: m.Sum, Date: m.Date,
			Description: m.Description, Created: m.Created, Updated: m.Updated,
		})
	}
	return items
}
