package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// OpenShiftRequest entrada para abrir un turno.
type OpenShiftRequest struct {
	Store          string           `json:"store"`
	Register       string           `json:"register"`
	OpeningBalance *decimal.Decimal `json:"opening_balance"`
}

// CloseShiftRequest entrada para cerrar el turno abierto (nil = sin cambio).
type CloseShiftRequest struct {
	ClosingBalance *decimal.Decimal `json:"closing_balance"`
	Notes          *string          `json:"notes"`
}

// ShiftResponse salida con los nombres de campo legados.
type ShiftResponse struct {
	ID             string          `json:"_id"`
	Client         string          `json:"_client"`
	User           string          `json:"_user"`
	Store          string          `json:"_store"`
	Register       string          `json:"_register"`
	Number         int64           `json:"number"`
	Status         string          `json:"status"`
	OpenedAt       int64           `json:"opened_at"`
	ClosedAt       int64           `json:"closed_at,omitempty"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
	Notes          string          `json:"notes,omitempty"`
	Created        int64           `json:"created"`
	Updated        int64           `json:"updated"`
}

// ToShiftResponse convierte la entidad al contrato JSON legado.
func ToShiftResponse(s *entity.Shift) *ShiftResponse {
	if s == nil {
		return nil
	}
	return &ShiftResponse{
		ID:             s.ID,
		Client:         s.Client,
		User:           s.User,
		Store:          s.Store,
		Register:       s.Register,
		Number:         s.Number,
		Status:         s.Status,
		OpenedAt:       s.OpenedAt,
		ClosedAt:       s.ClosedAt,
		OpeningBalance: s.OpeningBalance,
		ClosingBalance: s.ClosingBalance,
		Notes:          s.Notes,
		Created:        s.Created,
		Updated:        s.Updated,
	}
}

// ToShiftResponses convierte un listado.
func ToShiftResponses(list []*entity.Shift) []ShiftResponse {
	items := make([]ShiftResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *ToShiftResponse(s))
	}
	return items
}
