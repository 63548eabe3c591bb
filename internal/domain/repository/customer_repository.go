package repository

import (
	"context"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// ClientFilter filtros de búsqueda de clientes.
type ClientFilter struct {
	Search string // ILIKE sobre name, phones y emails
	Type   string // person | business
}

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, client, id string) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	ListByClient(ctx context.Context, client string, limit, offset int) ([]*entity.Customer, error)
	CountByClient(ctx context.Context, client string) (int, error)
	Search(ctx context.Context, client string, f ClientFilter, limit, offset int) ([]*entity.Customer, int, error)
	NamesByIDs(ctx context.Context, ids []string) (map[string]string, error)
}
