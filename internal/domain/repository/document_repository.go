package repository

import (
	"context"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// DocFilter filtros de búsqueda de documentos. Type y Types (resp. Store y
// Stores) son excluyentes: el valor singular tiene prioridad si ambos vienen.
type DocFilter struct {
	Type     string
	Types    []string
	Store    string
	Stores   []string
	FromDate *int64
	ToDate   *int64
	Search   string // LIKE sobre number::text e ILIKE sobre products::text
}

// DocumentRepository define el puerto de persistencia para Document.
type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.Document) error
	GetByID(ctx context.Context, client, id string) (*entity.Document, error)
	ListByClient(ctx context.Context, client, docType string, limit, offset int) ([]*entity.Document, error)
	CountByClient(ctx context.Context, client, docType string) (int, error)
	Search(ctx context.Context, client string, f DocFilter, limit, offset int) ([]*entity.Document, int, error)
}
