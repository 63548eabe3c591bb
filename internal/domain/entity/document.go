package entity

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Tipos de documento reconocidos por la búsqueda y los reportes.
const (
	DocTypeSales      = "sales"
	DocTypePurchase   = "purchase"
	DocTypeTransfer   = "transfer"
	DocTypeReturnSale = "return_sales"
)

// PartyRef instantánea desnormalizada de la contraparte de un documento
// ({_id, type, name} al momento de escribir), evita un join en lectura.
type PartyRef struct {
	ID   string `json:"_id"`
	Type string `json:"type"` // stores | clients
	Name string `json:"name"`
}

// DocLine línea de un documento. Qty es con signo: negativa en devoluciones.
// Sum nil o cero significa "no informado": el total de la línea se calcula
// como price × |qty| (misma semántica laxa del API legado).
type DocLine struct {
	ID      string           `json:"_id,omitempty"`
	Name    string           `json:"name,omitempty"`
	Barcode string           `json:"barcode,omitempty"`
	SKU     string           `json:"sku,omitempty"`
	Qty     *decimal.Decimal `json:"qty,omitempty"`
	Price   decimal.Decimal  `json:"price"`
	Sum     *decimal.Decimal `json:"sum,omitempty"`
	Product *LineProduct     `json:"product,omitempty"` // snapshot embebido opcional
}

// LineProduct datos del producto embebidos en la línea al momento de la venta.
type LineProduct struct {
	ID      string `json:"_id,omitempty"`
	Name    string `json:"name,omitempty"`
	Barcode string `json:"barcode,omitempty"`
	SKU     string `json:"sku,omitempty"`
}

// ProductID devuelve el id de producto de la línea, prefiriendo el campo
// directo y cayendo al snapshot embebido. Vacío si no hay referencia.
func (l DocLine) ProductID() string {
	if l.ID != "" {
		return l.ID
	}
	if l.Product != nil {
		return l.Product.ID
	}
	return ""
}

// Quantity devuelve la cantidad de la línea, 0 si no fue informada.
func (l DocLine) Quantity() decimal.Decimal {
	if l.Qty == nil {
		return decimal.Zero
	}
	return *l.Qty
}

// Total devuelve el importe de la línea: sum explícito si viene y no es
// cero, si no price × |qty| con qty por defecto 1.
func (l DocLine) Total() decimal.Decimal {
	if l.Sum != nil && !l.Sum.IsZero() {
		return *l.Sum
	}
	qty := decimal.NewFromInt(1)
	if l.Qty != nil && !l.Qty.IsZero() {
		qty = l.Qty.Abs()
	}
	return l.Price.Mul(qty)
}

// Payment pago asociado a un documento.
type Payment struct {
	Sum  decimal.Decimal `json:"sum"`
	Type string          `json:"type,omitempty"` // cash, card, ...
}

// Document registro de negocio: venta, compra, traslado o devolución.
// Number es secuencial por inquilino; Status siempre true (no hay borradores).
type Document struct {
	ID              string
	Client          string
	User            string
	App             string
	Type            string
	Number          int64
	Status          bool
	Date            int64
	Store           string
	ToStore         string
	Customer        string
	From            *PartyRef
	To              *PartyRef
	Sum             decimal.Decimal
	Paid            decimal.Decimal
	DiscountPercent decimal.Decimal
	DiscountSum     decimal.Decimal
	Products        []DocLine
	Payments        []Payment
	Notes           string
	Comment         string
	Info            json.RawMessage // metadatos opcionales (info.user.name los usa la búsqueda)
	Created         int64
	Updated         int64
	CreatedMS       int64
}
