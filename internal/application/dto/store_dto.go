package dto

import "github.com/jhoicas/pos-api/internal/domain/entity"

// CreateStoreRequest entrada para crear una tienda o bodega.
type CreateStoreRequest struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// UpdateStoreRequest actualización parcial (nil = sin cambio).
type UpdateStoreRequest struct {
	Name        *string `json:"name"`
	Address     *string `json:"address"`
	Description *string `json:"description"`
	Type        *string `json:"type"`
	Deleted     *bool   `json:"deleted"`
	Include     *bool   `json:"include"`
}

// StoreResponse salida con los nombres de campo legados.
type StoreResponse struct {
	ID          string `json:"_id"`
	Client      string `json:"_client"`
	User        string `json:"_user"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Include     bool   `json:"include"`
	Default     bool   `json:"default"`
	Deleted     bool   `json:"deleted"`
	Created     int64  `json:"created"`
	Updated     int64  `json:"updated"`
}

// ToStoreResponse convierte la entidad al contrato JSON legado.
func ToStoreResponse(s *entity.Store) *StoreResponse {
	if s == nil {
		return nil
	}
	return &StoreResponse{
		ID:          s.ID,
		Client:      s.Client,
		User:        s.User,
		Name:        s.Name,
		Address:     s.Address,
		Description: s.Description,
		Type:        s.Type,
		Include:     s.Include,
		Default:     s.Default,
		Deleted:     s.Deleted,
		Created:     s.Created,
		Updated:     s.Updated,
	}
}

// ToStoreResponses convierte un listado.
func ToStoreResponses(list []*entity.Store) []StoreResponse {
	items := make([]StoreResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *ToStoreResponse(s))
	}
	return items
}
