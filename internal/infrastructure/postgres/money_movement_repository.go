package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// MoneyMovementRepo implementa repository.MoneyMovementRepository.
type MoneyMovementRepo struct {
	db Querier
}

var _ repository.MoneyMovementRepository = (*MoneyMovementRepo)(nil)

func NewMoneyMovementRepo(db Querier) *MoneyMovementRepo {
	return &MoneyMovementRepo{db: db}
}

const moneyColumns = `_id, _client, COALESCE(_user, ''), COALESCE(type, ''),
	COALESCE(account, ''), COALESCE(sum, 0), COALESCE(date, 0), COALESCE(description, ''),
	COALESCE(created, 0), COALESCE(updated, 0)`

func scanMoneyMovement(row pgx.Row) (*entity.MoneyMovement, error) {
	var m entity.MoneyMovement
	err := row.Scan(
		&m.ID, &m.Client, &m.User, &m.Type,
		&m.Account, &m.Sum, &m.Date, &m.Description,
		&m.Created, &m.Updated,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MoneyMovementRepo) Search(ctx context.Context, client string, f repository.MoneyFilter, limit, offset int) ([]*entity.MoneyMovement, int, error) {
	var sb strings.Builder
	sb.WriteString(`WHERE _client = $1`)
	args := []any{client}

	if f.Type != "" {
		args = append(args, f.Type)
		fmt.Fprintf(&sb, ` AND type = $%d`, len(args))
	}
	if f.Account != "" {
		args = append(args, f.Account)
		fmt.Fprintf(&sb, ` AND account = $%d`, len(args))
	}
	if f.FromDate != nil {
		args = append(args, *f.FromDate)
		fmt.Fprintf(&sb, ` AND date >= $%d`, len(args))
	}
	if f.ToDate != nil {
		args = append(args, *f.ToDate)
		fmt.Fprintf(&sb, ` AND date <= $%d`, len(args))
	}
	where := sb.String()

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM money_movements `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error al contar movimientos de dinero: %w", err)
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT %s FROM money_movements %s ORDER BY date DESC LIMIT $%d OFFSET $%d`,
		moneyColumns, where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error al buscar movimientos de dinero: %w", err)
	}
	defer rows.Close()

	var movements []*entity.MoneyMovement
	for rows.Next() {
		m, err := scanMoneyMovement(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error al leer movimiento: %w", err)
		}
		movements = append(movements, m)
	}
	return movements, total, rows.Err()
}
