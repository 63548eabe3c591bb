package entity

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Customer representa un cliente del inquilino.
type Customer struct {
	ID           string
	Client       string
	User         string
	App          string
	Name         string
	Type         string // person | business
	Sex          string
	Description  string
	Address      json.RawMessage
	Phones       []string
	Emails       []string
	Discount     decimal.Decimal // porcentaje de descuento fijo
	DiscountCard string
	LoyaltyType  string
	CashbackRate decimal.Decimal
	Deleted      bool
	Created      int64
	Updated      int64
	CreatedMS    int64
}
