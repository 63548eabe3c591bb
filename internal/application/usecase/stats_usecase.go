package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain/repository"
	"github.com/jhoicas/pos-api/internal/infrastructure/cache"
)

// statsTTL vigencia del caché de agregados; la creación de documentos lo
// invalida antes, así que el TTL solo cubre escrituras externas al API.
const statsTTL = time.Minute

// StatsUseCase agregados de inventario con caché de lectura.
type StatsUseCase struct {
	repo  repository.StatsRepository
	cache cache.StatsCache
}

func NewStatsUseCase(repo repository.StatsRepository, statsCache cache.StatsCache) *StatsUseCase {
	return &StatsUseCase{repo: repo, cache: statsCache}
}

func (uc *StatsUseCase) StockStats(ctx context.Context, client string) (*repository.StockStats, error) {
	if stats, ok := uc.cache.Get(ctx, client); ok {
		return stats, nil
	}

	stats, err := uc.repo.StockStats(ctx, client)
	if err != nil {
		return nil, err
	}

	uc.cache.Set(ctx, client, stats, statsTTL)
	return stats, nil
}

// FilteredProducts pagina los productos con problemas de inventario
// (costo cero, stock negativo, vencidos).
func (uc *StatsUseCase) FilteredProducts(ctx context.Context, client, filter string, limit, offset int) ([]dto.ProductResponse, int, error) {
	products, total, err := uc.repo.FilteredProducts(ctx, client, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return dto.ToProductResponses(products), total, nil
}
