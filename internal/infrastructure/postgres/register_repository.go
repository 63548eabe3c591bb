package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// RegisterRepo implementa repository.RegisterRepository sobre PostgreSQL.
type RegisterRepo struct {
	db Querier
}

var _ repository.RegisterRepository = (*RegisterRepo)(nil)

func NewRegisterRepo(db Querier) *RegisterRepo {
	return &RegisterRepo{db: db}
}

const registerColumns = `_id, _client, COALESCE(_user, ''), COALESCE(_store, ''), COALESCE(_app, ''),
	COALESCE(name, ''), COALESCE(type, ''), COALESCE(settings, 'null'::jsonb),
	COALESCE(deleted, false), COALESCE(created, 0), COALESCE(updated, 0), COALESCE(created_ms, 0)`

func scanRegister(row pgx.Row) (*entity.Register, error) {
	var reg entity.Register
	err := row.Scan(
		&reg.ID, &reg.Client, &reg.User, &reg.Store, &reg.App,
		&reg.Name, &reg.Type, &reg.Settings,
		&reg.Deleted, &reg.Created, &reg.Updated, &reg.CreatedMS,
	)
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *RegisterRepo) Create(ctx context.Context, reg *entity.Register) error {
	query := `
		INSERT INTO registers (
			_id, _client, _user, _store, _app, name, type, settings,
			deleted, created, updated, created_ms
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8::jsonb, $9, $10, $11, $12)`

	_, err := r.db.Exec(ctx, query,
		reg.ID, reg.Client, reg.User, reg.Store, reg.App, reg.Name, reg.Type,
		jsonArg(reg.Settings), reg.Deleted, reg.Created, reg.Updated, reg.CreatedMS,
	)
	if err != nil {
		return fmt.Errorf("error al crear caja: %w", err)
	}
	return nil
}

func (r *RegisterRepo) Update(ctx context.Context, reg *entity.Register) error {
	query := `
		UPDATE registers SET
			name = $3, type = $4, _store = $5, settings = $6::jsonb,
			deleted = $7, updated = $8
		WHERE _client = $1 AND _id = $2`

	tag, err := r.db.Exec(ctx, query,
		reg.Client, reg.ID,
		reg.Name, reg.Type, reg.Store, jsonArg(reg.Settings),
		reg.Deleted, reg.Updated,
	)
	if err != nil {
		return fmt.Errorf("error al actualizar caja: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *RegisterRepo) GetByID(ctx context.Context, client, id string) (*entity.Register, error) {
	query := `SELECT ` + registerColumns + ` FROM registers WHERE _client = $1 AND _id = $2`

	reg, err := scanRegister(r.db.QueryRow(ctx, query, client, id))
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("error al obtener caja: %w", err)
	}
	return reg, nil
}

func (r *RegisterRepo) ListByClient(ctx context.Context, client string) ([]*entity.Register, error) {
	query := `SELECT ` + registerColumns + `
		FROM registers
		WHERE _client = $1 AND COALESCE(deleted, false) = false
		ORDER BY name`

	rows, err := r.db.Query(ctx, query, client)
	if err != nil {
		return nil, fmt.Errorf("error al listar cajas: %w", err)
	}
	defer rows.Close()

	var registers []*entity.Register
	for rows.Next() {
		reg, err := scanRegister(rows)
		if err != nil {
			return nil, fmt.Errorf("error al leer caja: %w", err)
		}
		registers = append(registers, reg)
	}
	return registers, rows.Err()
}
