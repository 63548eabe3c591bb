package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// UserRepo implementa repository.UserRepository sobre PostgreSQL.
type UserRepo struct {
	db Querier
}

var _ repository.UserRepository = (*UserRepo)(nil)

func NewUserRepo(db Querier) *UserRepo {
	return &UserRepo{db: db}
}

const userColumns = `_id, COALESCE(_client, ''), COALESCE(name, ''), COALESCE(email, ''),
	COALESCE(password_hash, ''), COALESCE(role, ''), COALESCE(created, 0), COALESCE(updated, 0)`

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Client, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Created, &u.Updated)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`

	u, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("error al obtener usuario por email: %w", err)
	}
	return u, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE _id = $1`

	u, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("error al obtener usuario: %w", err)
	}
	return u, nil
}
