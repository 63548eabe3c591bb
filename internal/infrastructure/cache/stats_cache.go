// Package cache ofrece un caché de lectura para los agregados de inventario.
// Redis cuando hay dirección configurada; un no-op en caso contrario, así el
// API funciona igual sin Redis.
package cache

import (
	"context"
	"time"

	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// StatsCache caché de estadísticas de stock por inquilino.
type StatsCache interface {
	Get(ctx context.Context, client string) (*repository.StockStats, bool)
	Set(ctx context.Context, client string, stats *repository.StockStats, ttl time.Duration)
	// Invalidate borra la entrada del inquilino; se llama al crear documentos.
	Invalidate(ctx context.Context, client string)
}

// NoopStatsCache implementación nula: nunca acierta, nunca guarda.
type NoopStatsCache struct{}

var _ StatsCache = (*NoopStatsCache)(nil)

func NewNoopStatsCache() *NoopStatsCache { return &NoopStatsCache{} }

func (NoopStatsCache) Get(context.Context, string) (*repository.StockStats, bool) { return nil, false }

func (NoopStatsCache) Set(context.Context, string, *repository.StockStats, time.Duration) {}

func (NoopStatsCache) Invalidate(context.Context, string) {}
