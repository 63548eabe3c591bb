package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// CreateDocumentRequest entrada para crear un documento (venta, compra,
// traslado, devolución). Las líneas llegan tal como las arma el punto de
// venta: qty con signo, sum opcional.
type CreateDocumentRequest struct {
	Type            string           `json:"type"`
	From            *entity.PartyRef `json:"from"`
	To              *entity.PartyRef `json:"to"`
	Store           string           `json:"store"`
	ToStore         string           `json:"to_store"`
	Customer        string           `json:"customer"`
	Products        []entity.DocLine `json:"products"`
	Payments        []entity.Payment `json:"payments"`
	DiscountPercent *decimal.Decimal `json:"discount_percent"`
	DiscountSum     *decimal.Decimal `json:"discount_sum"`
	Notes           string           `json:"notes"`
	Comment         string           `json:"comment"`
}

// DocumentResponse salida con los nombres de campo legados.
type DocumentResponse struct {
	ID              string           `json:"_id"`
	Client          string           `json:"_client"`
	User            string           `json:"_user"`
	Type            string           `json:"type"`
	Number          int64            `json:"number"`
	Status          bool             `json:"status"`
	Date            int64            `json:"date"`
	Store           string           `json:"store,omitempty"`
	ToStore         string           `json:"to_store,omitempty"`
	Customer        string           `json:"customer,omitempty"`
	From            *entity.PartyRef `json:"from,omitempty"`
	To              *entity.PartyRef `json:"to,omitempty"`
	Sum             decimal.Decimal  `json:"sum"`
	Paid            decimal.Decimal  `json:"paid"`
	DiscountPercent decimal.Decimal  `json:"discount_percent"`
	DiscountSum     decimal.Decimal  `json:"discount_sum"`
	Products        []entity.DocLine `json:"products"`
	Payments        []entity.Payment `json:"payments"`
	Notes           string           `json:"notes,omitempty"`
	Comment         string           `json:"comment,omitempty"`
	Info            json.RawMessage  `json:"info,omitempty"`
	Created         int64            `json:"created"`
	Updated         int64            `json:"updated"`
}

// ToDocumentResponse convierte la entidad al contrato JSON legado.
func ToDocumentResponse(d *entity.Document) *DocumentResponse {
	if d == nil {
		return nil
	}
	products := d.Products
	if products == nil {
		products = []entity.DocLine{}
	}
	payments := d.Payments
	if payments == nil {
		payments = []entity.Payment{}
	}
	return &DocumentResponse{
		ID:              d.ID,
		Client:          d.Client,
		User:            d.User,
		Type:            d.Type,
		Number:          d.Number,
		Status:          d.Status,
		Date:            d.Date,
		Store:           d.Store,
		ToStore:         d.ToStore,
		Customer:        d.Customer,
		From:            d.From,
		To:              d.To,
		Sum:             d.Sum,
		Paid:            d.Paid,
		DiscountPercent: d.DiscountPercent,
		DiscountSum:     d.DiscountSum,
		Products:        products,
		Payments:        payments,
		Notes:           d.Notes,
		Comment:         d.Comment,
		Info:            d.Info,
		Created:         d.Created,
		Updated:         d.Updated,
	}
}

// ToDocumentResponses convierte un listado.
func ToDocumentResponses(list []*entity.Document) []DocumentResponse {
	items := make([]DocumentResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *ToDocumentResponse(d))
	}
	return items
}
