package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// TxRunner ejecuta una función con repositorios ligados a una transacción:
// todo confirma o todo revierte. Lo usa la creación de documentos para que
// el número asignado, el insert y los ajustes de stock sean atómicos.
type TxRunner struct {
	pool *pgxpool.Pool
}

func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

func (t *TxRunner) Run(ctx context.Context, fn func(
	docs repository.DocumentRepository,
	products repository.ProductRepository,
	counters repository.CounterRepository,
) error) error {
	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error al iniciar transacción: %w", err)
	}
	defer tx.Rollback(ctx)

	err = fn(NewDocumentRepo(tx), NewProductRepo(tx), NewCounterRepo(tx))
	if err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error al confirmar transacción: %w", err)
	}
	return nil
}
