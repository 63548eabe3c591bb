package postgres

import (
	"context"
	"fmt"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/pos-api/pkg/config"
	"github.com/jhoicas/pos-api/pkg/logger"
)

// NewPool crea el pool de conexiones a PostgreSQL y verifica conectividad.
func NewPool(ctx context.Context, cfg *config.Config, log *logger.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DB.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("error al parsear configuración de base de datos: %w", err)
	}

	poolCfg.MaxConns = 10
	poolCfg.MinConns = 2
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 30 * time.Minute

	// Los montos (price, cost, sum) se manejan como decimal, nunca float64.
	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("error al crear pool de conexiones: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("error al conectar con PostgreSQL: %w", err)
	}

	log.Info().
		Str("host", cfg.DB.Host).
		Str("database", cfg.DB.DBName).
		Msg("Conexión a PostgreSQL establecida")

	return pool, nil
}
