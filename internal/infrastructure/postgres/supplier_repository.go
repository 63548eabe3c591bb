package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// SupplierRepo implementa repository.SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	db Querier
}

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

func NewSupplierRepo(db Querier) *SupplierRepo {
	return &SupplierRepo{db: db}
}

const supplierColumns = `_id, _client, COALESCE(_user, ''), COALESCE(_app, ''),
	COALESCE(name, ''), COALESCE(site, ''), COALESCE(address, 'null'::jsonb),
	COALESCE(description, ''), COALESCE(phones, '[]'::jsonb), COALESCE(emails, '[]'::jsonb),
	COALESCE(bank_details, 'null'::jsonb), COALESCE(deleted, false),
	COALESCE(created, 0), COALESCE(updated, 0), COALESCE(created_ms, 0)`

func scanSupplier(row pgx.Row) (*entity.Supplier, error) {
	var s entity.Supplier
	err := row.Scan(
		&s.ID, &s.Client, &s.User, &s.App,
		&s.Name, &s.Site, &s.Address,
		&s.Description, &s.Phones, &s.Emails,
		&s.BankDetails, &s.Deleted,
		&s.Created, &s.Updated, &s.CreatedMS,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (
			_id, _client, _user, _app, name, site, address,
			description, phones, emails, bank_details,
			deleted, created, updated, created_ms
		) VALUES ($1, $2, $3, $4, $5, $6, $7::jsonb, $8, $9::jsonb, $10::jsonb, $11::jsonb, $12, $13, $14, $15)`

	_, err := r.db.Exec(ctx, query,
		s.ID, s.Client, s.User, s.App, s.Name, s.Site, jsonArg(s.Address),
		s.Description, jsonArg(s.Phones), jsonArg(s.Emails), jsonArg(s.BankDetails),
		s.Deleted, s.Created, s.Updated, s.CreatedMS,
	)
	if err != nil {
		return fmt.Errorf("error al crear proveedor: %w", err)
	}
	return nil
}

func (r *SupplierRepo) Update(ctx context.Context, s *entity.Supplier) error {
	query := `
		UPDATE suppliers SET
			name = $3, site = $4, address = $5::jsonb, description = $6,
			phones = $7::jsonb, emails = $8::jsonb, bank_details = $9::jsonb,
			deleted = $10, updated = $11
		WHERE _client = $1 AND _id = $2`

	tag, err := r.db.Exec(ctx, query,
		s.Client, s.ID,
		s.Name, s.Site, jsonArg(s.Address), s.Description,
		jsonArg(s.Phones), jsonArg(s.Emails), jsonArg(s.BankDetails),
		s.Deleted, s.Updated,
	)
	if err != nil {
		return fmt.Errorf("error al actualizar proveedor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SupplierRepo) GetByID(ctx context.Context, client, id string) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE _client = $1 AND _id = $2`

	s, err := scanSupplier(r.db.QueryRow(ctx, query, client, id))
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("error al obtener proveedor: %w", err)
	}
	return s, nil
}

func (r *SupplierRepo) ListByClient(ctx context.Context, client string) ([]*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + `
		FROM suppliers
		WHERE _client = $1 AND COALESCE(deleted, false) = false
		ORDER BY name`

	rows, err := r.db.Query(ctx, query, client)
	if err != nil {
		return nil, fmt.Errorf("error al listar proveedores: %w", err)
	}
	defer rows.Close()

	var suppliers []*entity.Supplier
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("error al leer proveedor: %w", err)
		}
		suppliers = append(suppliers, s)
	}
	return suppliers, rows.Err()
}
