package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// SourceRepo implementa repository.SourceRepository sobre PostgreSQL.
// La tabla sources es global: no tiene columna _client.
type SourceRepo struct {
	db Querier
}

var _ repository.SourceRepository = (*SourceRepo)(nil)

func NewSourceRepo(db Querier) *SourceRepo {
	return &SourceRepo{db: db}
}

func (r *SourceRepo) Create(ctx context.Context, s *entity.MoneySource) error {
	// El esquema legado duplica _id en la columna id; se conserva para no
	// romper a los consumidores que leen cualquiera de las dos.
	query := `INSERT INTO sources (_id, id, title, type, country) VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query, s.ID, s.LegacyID, s.Title, s.Type, s.Country)
	if err != nil {
		return fmt.Errorf("error al crear método de pago: %w", err)
	}
	return nil
}

func (r *SourceRepo) List(ctx context.Context) ([]*entity.MoneySource, error) {
	query := `
		SELECT _id, COALESCE(id, ''), COALESCE(title, ''), COALESCE(type, ''), COALESCE(country, '')
		FROM sources
		ORDER BY title`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error al listar métodos de pago: %w", err)
	}
	defer rows.Close()

	var sources []*entity.MoneySource
	for rows.Next() {
		var s entity.MoneySource
		if err := rows.Scan(&s.ID, &s.LegacyID, &s.Title, &s.Type, &s.Country); err != nil {
			return nil, fmt.Errorf("error al leer método de pago: %w", err)
		}
		sources = append(sources, &s)
	}
	return sources, rows.Err()
}
