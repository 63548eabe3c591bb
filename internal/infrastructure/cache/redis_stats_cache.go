package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/pos-api/internal/domain/repository"
	"github.com/jhoicas/pos-api/pkg/logger"
)

// RedisStatsCache implementa StatsCache sobre Redis. Los errores de Redis se
// registran y se degradan a fallo de caché: nunca tumban la petición.
type RedisStatsCache struct {
	client *redis.Client
	log    *logger.Logger
}

var _ StatsCache = (*RedisStatsCache)(nil)

func NewRedisStatsCache(client *redis.Client, log *logger.Logger) *RedisStatsCache {
	return &RedisStatsCache{client: client, log: log}
}

func statsKey(client string) string {
	return fmt.Sprintf("pos:stats:stock:%s", client)
}

func (c *RedisStatsCache) Get(ctx context.Context, client string) (*repository.StockStats, bool) {
	raw, err := c.client.Get(ctx, statsKey(client)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("Error al leer caché de estadísticas")
		}
		return nil, false
	}

	var stats repository.StockStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		c.log.Warn().Err(err).Msg("Entrada de caché corrupta, se descarta")
		return nil, false
	}
	return &stats, true
}

func (c *RedisStatsCache) Set(ctx context.Context, client string, stats *repository.StockStats, ttl time.Duration) {
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, statsKey(client), raw, ttl).Err(); err != nil {
		c.log.Warn().Err(err).Msg("Error al escribir caché de estadísticas")
	}
}

func (c *RedisStatsCache) Invalidate(ctx context.Context, client string) {
	if err := c.client.Del(ctx, statsKey(client)).Err(); err != nil {
		c.log.Warn().Err(err).Msg("Error al invalidar caché de estadísticas")
	}
}
