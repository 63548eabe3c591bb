package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// CreateCustomerRequest entrada para crear un cliente.
type CreateCustomerRequest struct {
	Name         string           `json:"name"`
	Type         string           `json:"type"`
	Sex          string           `json:"sex"`
	Description  string           `json:"description"`
	Address      json.RawMessage  `json:"address"`
	Phones       []string         `json:"phones"`
	Emails       []string         `json:"emails"`
	Discount     *decimal.Decimal `json:"discount"`
	DiscountCard string           `json:"discount_card"`
	LoyaltyType  string           `json:"loyalty_type"`
	CashbackRate *decimal.Decimal `json:"cashback_rate"`
}

// UpdateCustomerRequest actualización parcial (nil = sin cambio).
type UpdateCustomerRequest struct {
	Name         *string          `json:"name"`
	Type         *string          `json:"type"`
	Sex          *string          `json:"sex"`
	Description  *string          `json:"description"`
	Address      json.RawMessage  `json:"address"`
	Phones       []string         `json:"phones"`
	Emails       []string         `json:"emails"`
	Discount     *decimal.Decimal `json:"discount"`
	DiscountCard *string          `json:"discount_card"`
	LoyaltyType  *string          `json:"loyalty_type"`
	CashbackRate *decimal.Decimal `json:"cashback_rate"`
	Deleted      *bool            `json:"deleted"`
}

// CustomerResponse salida con los nombres de campo legados.
type CustomerResponse struct {
	ID           string          `json:"_id"`
	Client       string          `json:"_client"`
	User         string          `json:"_user"`
	Name         string          `json:"name"`
	Type         string          `json:"type"`
	Sex          string          `json:"sex"`
	Description  string          `json:"description"`
	Address      json.RawMessage `json:"address,omitempty"`
	Phones       []string        `json:"phones"`
	Emails       []string        `json:"emails"`
	Discount     decimal.Decimal `json:"discount"`
	DiscountCard string          `json:"discount_card"`
	LoyaltyType  string          `json:"loyalty_type"`
	CashbackRate decimal.Decimal `json:"cashback_rate"`
	Deleted      bool            `json:"deleted"`
	Created      int64           `json:"created"`
	Updated      int64           `json:"updated"`
}

// ToCustomerResponse convierte la entidad al contrato JSON legado.
func ToCustomerResponse(c *entity.Customer) *CustomerResponse {
	if c == nil {
		return nil
	}
	return &CustomerResponse{
		ID:           c.ID,
		Client:       c.Client,
		User:         c.User,
		Name:         c.Name,
		Type:         c.Type,
		Sex:          c.Sex,
		Description:  c.Description,
		Address:      c.Address,
		Phones:       c.Phones,
		Emails:       c.Emails,
		Discount:     c.Discount,
		DiscountCard: c.DiscountCard,
		LoyaltyType:  c.LoyaltyType,
		CashbackRate: c.CashbackRate,
		Deleted:      c.Deleted,
		Created:      c.Created,
		Updated:      c.Updated,
	}
}

// ToCustomerResponses convierte un listado.
func ToCustomerResponses(list []*entity.Customer) []CustomerResponse {
	items := make([]CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *ToCustomerResponse(c))
	}
	return items
}
