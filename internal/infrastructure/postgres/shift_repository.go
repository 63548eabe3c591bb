package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// ShiftRepo implementa repository.ShiftRepository sobre PostgreSQL.
type ShiftRepo struct {
	db Querier
}

var _ repository.ShiftRepository = (*ShiftRepo)(nil)

func NewShiftRepo(db Querier) *ShiftRepo {
	return &ShiftRepo{db: db}
}

const shiftColumns = `_id, _client, COALESCE(_user, ''), COALESCE(_store, ''), COALESCE(_register, ''),
	COALESCE(_app, ''), COALESCE(number, 0), COALESCE(status, ''),
	COALESCE(opened_at, 0), COALESCE(closed_at, 0),
	COALESCE(opening_balance, 0), COALESCE(closing_balance, 0), COALESCE(notes, ''),
	COALESCE(created, 0), COALESCE(updated, 0), COALESCE(created_ms, 0)`

func scanShift(row pgx.Row) (*entity.Shift, error) {
	var s entity.Shift
	err := row.Scan(
		&s.ID, &s.Client, &s.User, &s.Store, &s.Register,
		&s.App, &s.Number, &s.Status,
		&s.OpenedAt, &s.ClosedAt,
		&s.OpeningBalance, &s.ClosingBalance, &s.Notes,
		&s.Created, &s.Updated, &s.CreatedMS,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ShiftRepo) Create(ctx context.Context, s *entity.Shift) error {
	query := `
		INSERT INTO shifts (
			_id, _client, _user, _store, _register, _app, number, status,
			opened_at, closed_at, opening_balance, closing_balance, notes,
			created, updated, created_ms
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := r.db.Exec(ctx, query,
		s.ID, s.Client, s.User, s.Store, s.Register, s.App, s.Number, s.Status,
		s.OpenedAt, s.ClosedAt, s.OpeningBalance, s.ClosingBalance, s.Notes,
		s.Created, s.Updated, s.CreatedMS,
	)
	if err != nil {
		// El índice único parcial (un turno abierto por operador) convierte la
		// carrera de doble apertura en un error de dominio.
		if isUniqueViolation(err) {
			return domain.ErrShiftAlreadyOpen
		}
		return fmt.Errorf("error al crear turno: %w", err)
	}
	return nil
}

func (r *ShiftRepo) OpenByClient(ctx context.Context, client string) (*entity.Shift, error) {
	query := `SELECT ` + shiftColumns + `
		FROM shifts
		WHERE _client = $1 AND status = $2
		ORDER BY opened_at DESC
		LIMIT 1`

	s, err := scanShift(r.db.QueryRow(ctx, query, client, entity.ShiftStatusOpen))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error al obtener turno abierto: %w", err)
	}
	return s, nil
}

func (r *ShiftRepo) OpenByUser(ctx context.Context, client, user string) (*entity.Shift, error) {
	query := `SELECT ` + shiftColumns + `
		FROM shifts
		WHERE _client = $1 AND _user = $2 AND status = $3
		ORDER BY opened_at DESC
		LIMIT 1`

	s, err := scanShift(r.db.QueryRow(ctx, query, client, user, entity.ShiftStatusOpen))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error al obtener turno abierto del operador: %w", err)
	}
	return s, nil
}

func (r *ShiftRepo) History(ctx context.Context, client string, limit, offset int) ([]*entity.Shift, error) {
	query := `SELECT ` + shiftColumns + `
		FROM shifts
		WHERE _client = $1
		ORDER BY opened_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, client, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error al listar turnos: %w", err)
	}
	defer rows.Close()

	var shifts []*entity.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("error al leer turno: %w", err)
		}
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}

func (r *ShiftRepo) CountByClient(ctx context.Context, client string) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM shifts WHERE _client = $1`, client).Scan(&count); err != nil {
		return 0, fmt.Errorf("error al contar turnos: %w", err)
	}
	return count, nil
}

func (r *ShiftRepo) CloseOpen(ctx context.Context, client, user string, c repository.ShiftClose, now int64) (*entity.Shift, error) {
	// COALESCE sobre los parámetros: nil conserva el valor actual.
	query := `
		UPDATE shifts SET
			status = $4,
			closed_at = $5,
			closing_balance = COALESCE($6, closing_balance),
			notes = COALESCE($7, notes),
			updated = $5
		WHERE _client = $1 AND _user = $2 AND status = $3
		RETURNING ` + shiftColumns

	s, err := scanShift(r.db.QueryRow(ctx, query,
		client, user, entity.ShiftStatusOpen,
		entity.ShiftStatusClosed, now, c.ClosingBalance, c.Notes,
	))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error al cerrar turno: %w", err)
	}
	return s, nil
}
