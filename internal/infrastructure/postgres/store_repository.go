package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// StoreRepo implementa repository.StoreRepository sobre PostgreSQL.
type StoreRepo struct {
	db Querier
}

var _ repository.StoreRepository = (*StoreRepo)(nil)

func NewStoreRepo(db Querier) *StoreRepo {
	return &StoreRepo{db: db}
}

const storeColumns = `_id, _client, COALESCE(_user, ''), COALESCE(_app, ''),
	COALESCE(name, ''), COALESCE(address, ''), COALESCE(description, ''),
	COALESCE(type, 'store'), COALESCE(include, true), COALESCE("default", false),
	COALESCE(deleted, false), COALESCE(created, 0), COALESCE(updated, 0), COALESCE(created_ms, 0)`

func scanStore(row pgx.Row) (*entity.Store, error) {
	var s entity.Store
	err := row.Scan(
		&s.ID, &s.Client, &s.User, &s.App,
		&s.Name, &s.Address, &s.Description,
		&s.Type, &s.Include, &s.Default,
		&s.Deleted, &s.Created, &s.Updated, &s.CreatedMS,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StoreRepo) Create(ctx context.Context, s *entity.Store) error {
	query := `
		INSERT INTO stores (
			_id, _client, _user, _app, name, address, description,
			type, include, "default", deleted, created, updated, created_ms
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.db.Exec(ctx, query,
		s.ID, s.Client, s.User, s.App, s.Name, s.Address, s.Description,
		s.Type, s.Include, s.Default, s.Deleted, s.Created, s.Updated, s.CreatedMS,
	)
	if err != nil {
		return fmt.Errorf("error al crear tienda: %w", err)
	}
	return nil
}

func (r *StoreRepo) GetByID(ctx context.Context, client, id string) (*entity.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores WHERE _client = $1 AND _id = $2`

	s, err := scanStore(r.db.QueryRow(ctx, query, client, id))
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("error al obtener tienda: %w", err)
	}
	return s, nil
}

func (r *StoreRepo) Update(ctx context.Context, s *entity.Store) error {
	query := `
		UPDATE stores SET
			name = $3, address = $4, description = $5, type = $6,
			include = $7, "default" = $8, deleted = $9, updated = $10
		WHERE _client = $1 AND _id = $2`

	tag, err := r.db.Exec(ctx, query,
		s.Client, s.ID,
		s.Name, s.Address, s.Description, s.Type,
		s.Include, s.Default, s.Deleted, s.Updated,
	)
	if err != nil {
		return fmt.Errorf("error al actualizar tienda: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *StoreRepo) ListByClient(ctx context.Context, client string) ([]*entity.Store, error) {
	query := `SELECT ` + storeColumns + `
		FROM stores
		WHERE _client = $1 AND COALESCE(deleted, false) = false
		ORDER BY name`

	rows, err := r.db.Query(ctx, query, client)
	if err != nil {
		return nil, fmt.Errorf("error al listar tiendas: %w", err)
	}
	defer rows.Close()

	var stores []*entity.Store
	for rows.Next() {
		s, err := scanStore(rows)
		if err != nil {
			return nil, fmt.Errorf("error al leer tienda: %w", err)
		}
		stores = append(stores, s)
	}
	return stores, rows.Err()
}

func (r *StoreRepo) NamesByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	rows, err := r.db.Query(ctx, `SELECT _id, COALESCE(name, '') FROM stores WHERE _id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("error al consultar tiendas por ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("error al leer tienda: %w", err)
		}
		names[id] = name
	}
	return names, rows.Err()
}
