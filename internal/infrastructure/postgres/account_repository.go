package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// AccountRepo implementa repository.AccountRepository sobre PostgreSQL.
type AccountRepo struct {
	db Querier
}

var _ repository.AccountRepository = (*AccountRepo)(nil)

func NewAccountRepo(db Querier) *AccountRepo {
	return &AccountRepo{db: db}
}

const accountColumns = `_id, _client, COALESCE(_user, ''), COALESCE(_app, ''),
	COALESCE(name, ''), COALESCE(type, ''), COALESCE(include, true),
	COALESCE(use_terminal, false), COALESCE(bank_details, 'null'::jsonb),
	COALESCE(deleted, false), COALESCE(created, 0), COALESCE(updated, 0), COALESCE(created_ms, 0)`

func scanAccount(row pgx.Row) (*entity.Account, error) {
	var a entity.Account
	err := row.Scan(
		&a.ID, &a.Client, &a.User, &a.App,
		&a.Name, &a.Type, &a.Include,
		&a.UseTerminal, &a.BankDetails,
		&a.Deleted, &a.Created, &a.Updated, &a.CreatedMS,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AccountRepo) Create(ctx context.Context, a *entity.Account) error {
	query := `
		INSERT INTO accounts (
			_id, _client, _user, _app, name, type, include,
			use_terminal, bank_details, deleted, created, updated, created_ms
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::jsonb, $10, $11, $12, $13)`

	_, err := r.db.Exec(ctx, query,
		a.ID, a.Client, a.User, a.App, a.Name, a.Type, a.Include,
		a.UseTerminal, jsonArg(a.BankDetails), a.Deleted, a.Created, a.Updated, a.CreatedMS,
	)
	if err != nil {
		return fmt.Errorf("error al crear cuenta: %w", err)
	}
	return nil
}

func (r *AccountRepo) Update(ctx context.Context, a *entity.Account) error {
	query := `
		UPDATE accounts SET
			name = $3, type = $4, include = $5, use_terminal = $6,
			bank_details = $7::jsonb, deleted = $8, updated = $9
		WHERE _client = $1 AND _id = $2`

	tag, err := r.db.Exec(ctx, query,
		a.Client, a.ID,
		a.Name, a.Type, a.Include, a.UseTerminal,
		jsonArg(a.BankDetails), a.Deleted, a.Updated,
	)
	if err != nil {
		return fmt.Errorf("error al actualizar cuenta: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AccountRepo) GetByID(ctx context.Context, client, id string) (*entity.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE _client = $1 AND _id = $2`

	a, err := scanAccount(r.db.QueryRow(ctx, query, client, id))
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("error al obtener cuenta: %w", err)
	}
	return a, nil
}

func (r *AccountRepo) ListByClient(ctx context.Context, client string) ([]*entity.Account, error) {
	query := `SELECT ` + accountColumns + `
		FROM accounts
		WHERE _client = $1 AND COALESCE(deleted, false) = false
		ORDER BY name`

	rows, err := r.db.Query(ctx, query, client)
	if err != nil {
		return nil, fmt.Errorf("error al listar cuentas: %w", err)
	}
	defer rows.Close()

	var accounts []*entity.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("error al leer cuenta: %w", err)
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}
