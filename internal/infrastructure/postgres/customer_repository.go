package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// CustomerRepo implementa repository.CustomerRepository sobre PostgreSQL.
type CustomerRepo struct {
	db Querier
}

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

func NewCustomerRepo(db Querier) *CustomerRepo {
	return &CustomerRepo{db: db}
}

const customerColumns = `_id, _client, COALESCE(_user, ''), COALESCE(_app, ''),
	COALESCE(name, ''), COALESCE(type, ''), COALESCE(sex, ''), COALESCE(description, ''),
	COALESCE(address, 'null'::jsonb), COALESCE(phones, '[]'::jsonb), COALESCE(emails, '[]'::jsonb),
	COALESCE(discount, 0), COALESCE(discount_card, ''), COALESCE(loyalty_type, ''),
	COALESCE(cashback_rate, 0), COALESCE(deleted, false),
	COALESCE(created, 0), COALESCE(updated, 0), COALESCE(created_ms, 0)`

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(
		&c.ID, &c.Client, &c.User, &c.App,
		&c.Name, &c.Type, &c.Sex, &c.Description,
		&c.Address, &c.Phones, &c.Emails,
		&c.Discount, &c.DiscountCard, &c.LoyaltyType,
		&c.CashbackRate, &c.Deleted,
		&c.Created, &c.Updated, &c.CreatedMS,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	query := `
		INSERT INTO clients (
			_id, _client, _user, _app, name, type, sex, description,
			address, phones, emails, discount, discount_card, loyalty_type,
			cashback_rate, deleted, created, updated, created_ms
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8,
			$9::jsonb, $10::jsonb, $11::jsonb, $12, $13, $14,
			$15, $16, $17, $18, $19
		)`

	_, err := r.db.Exec(ctx, query,
		c.ID, c.Client, c.User, c.App, c.Name, c.Type, c.Sex, c.Description,
		jsonArg(c.Address), jsonArg(c.Phones), jsonArg(c.Emails),
		c.Discount, c.DiscountCard, c.LoyaltyType,
		c.CashbackRate, c.Deleted, c.Created, c.Updated, c.CreatedMS,
	)
	if err != nil {
		return fmt.Errorf("error al crear cliente: %w", err)
	}
	return nil
}

func (r *CustomerRepo) GetByID(ctx context.Context, client, id string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM clients WHERE _client = $1 AND _id = $2`

	c, err := scanCustomer(r.db.QueryRow(ctx, query, client, id))
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("error al obtener cliente: %w", err)
	}
	return c, nil
}

func (r *CustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	query := `
		UPDATE clients SET
			name = $3, type = $4, sex = $5, description = $6,
			address = $7::jsonb, phones = $8::jsonb, emails = $9::jsonb,
			discount = $10, discount_card = $11, loyalty_type = $12,
			cashback_rate = $13, deleted = $14, updated = $15
		WHERE _client = $1 AND _id = $2`

	tag, err := r.db.Exec(ctx, query,
		c.Client, c.ID,
		c.Name, c.Type, c.Sex, c.Description,
		jsonArg(c.Address), jsonArg(c.Phones), jsonArg(c.Emails),
		c.Discount, c.DiscountCard, c.LoyaltyType,
		c.CashbackRate, c.Deleted, c.Updated,
	)
	if err != nil {
		return fmt.Errorf("error al actualizar cliente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CustomerRepo) ListByClient(ctx context.Context, client string, limit, offset int) ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + `
		FROM clients
		WHERE _client = $1 AND COALESCE(deleted, false) = false
		ORDER BY name
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, client, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error al listar clientes: %w", err)
	}
	defer rows.Close()

	return collectCustomers(rows)
}

func (r *CustomerRepo) CountByClient(ctx context.Context, client string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM clients WHERE _client = $1 AND COALESCE(deleted, false) = false`
	if err := r.db.QueryRow(ctx, query, client).Scan(&count); err != nil {
		return 0, fmt.Errorf("error al contar clientes: %w", err)
	}
	return count, nil
}

func (r *CustomerRepo) Search(ctx context.Context, client string, f repository.ClientFilter, limit, offset int) ([]*entity.Customer, int, error) {
	var sb strings.Builder
	sb.WriteString(`WHERE _client = $1 AND COALESCE(deleted, false) = false`)
	args := []any{client}

	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		fmt.Fprintf(&sb, ` AND (name ILIKE $%d OR phones::text ILIKE $%d OR emails::text ILIKE $%d)`, n, n, n)
	}
	if f.Type != "" {
		args = append(args, f.Type)
		fmt.Fprintf(&sb, ` AND type = $%d`, len(args))
	}
	where := sb.String()

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM clients `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error al contar búsqueda de clientes: %w", err)
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT %s FROM clients %s ORDER BY name LIMIT $%d OFFSET $%d`,
		customerColumns, where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error al buscar clientes: %w", err)
	}
	defer rows.Close()

	customers, err := collectCustomers(rows)
	if err != nil {
		return nil, 0, err
	}
	return customers, total, nil
}

func (r *CustomerRepo) NamesByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	rows, err := r.db.Query(ctx, `SELECT _id, COALESCE(name, '') FROM clients WHERE _id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("error al consultar clientes por ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("error al leer cliente: %w", err)
		}
		names[id] = name
	}
	return names, rows.Err()
}

func collectCustomers(rows pgx.Rows) ([]*entity.Customer, error) {
	var customers []*entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("error al leer cliente: %w", err)
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}
