package dto

import (
	"encoding/json"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// ── Accounts ──────────────────────────────────────────────────────────────────

// CreateAccountRequest entrada para crear una cuenta financiera.
type CreateAccountRequest struct {
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Include     *bool           `json:"include"`
	UseTerminal bool            `json:"use_terminal"`
	BankDetails json.RawMessage `json:"bank_details"`
}

// UpdateAccountRequest actualización parcial (nil = sin cambio).
type UpdateAccountRequest struct {
	Name        *string         `json:"name"`
	Type        *string         `json:"type"`
	Include     *bool           `json:"include"`
	UseTerminal *bool           `json:"use_terminal"`
	BankDetails json.RawMessage `json:"bank_details"`
	Deleted     *bool           `json:"deleted"`
}

// AccountResponse salida con los nombres de campo legados.
type AccountResponse struct {
	ID          string          `json:"_id"`
	Client      string          `json:"_client"`
	User        string          `json:"_user"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Include     bool            `json:"include"`
	UseTerminal bool            `json:"use_terminal"`
	BankDetails json.RawMessage `json:"bank_details,omitempty"`
	Deleted     bool            `json:"deleted"`
	Created     int64           `json:"created"`
	Updated     int64           `json:"updated"`
}

// ToAccountResponse convierte la entidad al contrato JSON legado.
func ToAccountResponse(a *entity.Account) *AccountResponse {
	if a == nil {
		return nil
	}
	return &AccountResponse{
		ID: a.ID, Client: a.Client, User: a.User,
		Name: a.Name, Type: a.Type, Include: a.Include,
		UseTerminal: a.UseTerminal, BankDetails: a.BankDetails,
		Deleted: a.Deleted, Created: a.Created, Updated: a.Updated,
	}
}

// ToAccountResponses convierte un listado.
func ToAccountResponses(list []*entity.Account) []AccountResponse {
	items := make([]AccountResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *ToAccountResponse(a))
	}
	return items
}

// ── Suppliers ─────────────────────────────────────────────────────────────────

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	Name        string          `json:"name"`
	Site        string          `json:"site"`
	Address     json.RawMessage `json:"address"`
	Description string          `json:"description"`
	Phones      []string        `json:"phones"`
	Emails      []string        `json:"emails"`
	BankDetails json.RawMessage `json:"bank_details"`
}

// UpdateSupplierRequest actualización parcial (nil = sin cambio).
type UpdateSupplierRequest struct {
	Name        *string         `json:"name"`
	Site        *string         `json:"site"`
	Address     json.RawMessage `json:"address"`
	Description *string         `json:"description"`
	Phones      []string        `json:"phones"`
	Emails      []string        `json:"emails"`
	Deleted     *bool           `json:"deleted"`
}

// SupplierResponse salida con los nombres de campo legados.
type SupplierResponse struct {
	ID          string          `json:"_id"`
	Client      string          `json:"_client"`
	User        string          `json:"_user"`
	Name        string          `json:"name"`
	Site        string          `json:"site"`
	Address     json.RawMessage `json:"address,omitempty"`
	Description string          `json:"description"`
	Phones      []string        `json:"phones"`
	Emails      []string        `json:"emails"`
	BankDetails json.RawMessage `json:"bank_details,omitempty"`
	Deleted     bool            `json:"deleted"`
	Created     int64           `json:"created"`
	Updated     int64           `json:"updated"`
}

// ToSupplierResponse convierte la entidad al contrato JSON legado.
func ToSupplierResponse(s *entity.Supplier) *SupplierResponse {
	if s == nil {
		return nil
	}
	return &SupplierResponse{
		ID: s.ID, Client: s.Client, User: s.User,
		Name: s.Name, Site: s.Site, Address: s.Address,
		Description: s.Description, Phones: s.Phones, Emails: s.Emails,
		BankDetails: s.BankDetails, Deleted: s.Deleted,
		Created: s.Created, Updated: s.Updated,
	}
}

// ToSupplierResponses convierte un listado.
func ToSupplierResponses(list []*entity.Supplier) []SupplierResponse {
	items := make([]SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *ToSupplierResponse(s))
	}
	return items
}

// ── Registers ─────────────────────────────────────────────────────────────────

// CreateRegisterRequest entrada para crear una caja registradora.
type CreateRegisterRequest struct {
	Name     string          `json:"name"`
	Type     string          `json:"type"`
	Store    string          `json:"store"`
	Settings json.RawMessage `json:"settings"`
}

// UpdateRegisterRequest actualización parcial (nil = sin cambio).
type UpdateRegisterRequest struct {
	Name     *string         `json:"name"`
	Type     *string         `json:"type"`
	Store    *string         `json:"store"`
	Settings json.RawMessage `json:"settings"`
	Deleted  *bool           `json:"deleted"`
}

// RegisterResponse salida con los nombres de campo legados.
type RegisterResponse struct {
	ID       string          `json:"_id"`
	Client   string          `json:"_client"`
	User     string          `json:"_user"`
	Store    string          `json:"_store"`
	Name     string          `json:"name"`
	Type     string          `json:"type"`
	Settings json.RawMessage `json:"settings,omitempty"`
	Deleted  bool            `json:"deleted"`
	Created  int64           `json:"created"`
	Updated  int64           `json:"updated"`
}

// ToRegisterResponse convierte la entidad al contrato JSON legado.
func ToRegisterResponse(r *entity.Register) *RegisterResponse {
	if r == nil {
		return nil
	}
	return &RegisterResponse{
		ID: r.ID, Client: r.Client, User: r.User, Store: r.Store,
		Name: r.Name, Type: r.Type, Settings: r.Settings,
		Deleted: r.Deleted, Created: r.Created, Updated: r.Updated,
	}
}

// ToRegisterResponses convierte un listado.
func ToRegisterResponses(list []*entity.Register) []RegisterResponse {
	items := make([]RegisterResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *ToRegisterResponse(r))
	}
	return items
}

// ── Money sources ─────────────────────────────────────────────────────────────

// CreateSourceRequest entrada para crear un método de pago (tabla global).
type CreateSourceRequest struct {
	Title   string `json:"title"`
	Type    string `json:"type"`
	Country string `json:"country"`
}

// SourceResponse salida con los nombres de campo legados.
type SourceResponse struct {
	ID      string `json:"_id"`
	Legacy  string `json:"id"`
	Title   string `json:"title"`
	Type    string `json:"type"`
	Country string `json:"country"`
}

// ToSourceResponse convierte la entidad al contrato JSON legado.
func ToSourceResponse(s *entity.MoneySource) *SourceResponse {
	if s == nil {
		return nil
	}
	return &SourceResponse{ID: s.ID, Legacy: s.LegacyID, Title: s.Title, Type: s.Type, Country: s.Country}
}

// ToSourceResponses convierte un listado.
func ToSourceResponses(list []*entity.MoneySource) []SourceResponse {
	items := make([]SourceResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *ToSourceResponse(s))
	}
	return items
}
