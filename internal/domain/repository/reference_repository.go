package repository

import (
	"context"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// AccountRepository define el puerto de persistencia para Account.
type AccountRepository interface {
	Create(ctx context.Context, account *entity.Account) error
	Update(ctx context.Context, account *entity.Account) error
	GetByID(ctx context.Context, client, id string) (*entity.Account, error)
	ListByClient(ctx context.Context, client string) ([]*entity.Account, error)
}

// SupplierRepository define el puerto de persistencia para Supplier.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	Update(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, client, id string) (*entity.Supplier, error)
	ListByClient(ctx context.Context, client string) ([]*entity.Supplier, error)
}

// RegisterRepository define el puerto de persistencia para Register.
type RegisterRepository interface {
	Create(ctx context.Context, register *entity.Register) error
	Update(ctx context.Context, register *entity.Register) error
	GetByID(ctx context.Context, client, id string) (*entity.Register, error)
	ListByClient(ctx context.Context, client string) ([]*entity.Register, error)
}

// SourceRepository define el puerto para MoneySource. La tabla es global
// (sin _client): List devuelve todas las filas sin filtrar por inquilino.
type SourceRepository interface {
	Create(ctx context.Context, source *entity.MoneySource) error
	List(ctx context.Context) ([]*entity.MoneySource, error)
}

// CategoryRepository define el puerto para categorías de catálogo.
type CategoryRepository interface {
	ListNames(ctx context.Context, client string) ([]string, error)
}

// UserRepository define el puerto para usuarios (login).
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
}
