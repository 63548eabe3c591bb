package repository

import (
	"context"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// StoreRepository define el puerto de persistencia para Store.
type StoreRepository interface {
	Create(ctx context.Context, store *entity.Store) error
	GetByID(ctx context.Context, client, id string) (*entity.Store, error)
	Update(ctx context.Context, store *entity.Store) error
	ListByClient(ctx context.Context, client string) ([]*entity.Store, error)
	NamesByIDs(ctx context.Context, ids []string) (map[string]string, error)
}
