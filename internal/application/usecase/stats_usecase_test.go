package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-api/internal/application/usecase"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// countingStatsRepo replica los agregados de inventario sobre una lista en
// memoria, con las mismas reglas que la consulta SQL: costo cero cuenta sin
// importar el stock, stock negativo cuenta por el total desnormalizado.
type countingStatsRepo struct {
	products []*entity.Product
}

func (r *countingStatsRepo) StockStats(_ context.Context, client string) (*repository.StockStats, error) {
	s := &repository.StockStats{
		TotalQuantity: decimal.Zero,
		RetailValue:   decimal.Zero,
		CostValue:     decimal.Zero,
	}
	for _, p := range r.products {
		if p.Client != client || p.Deleted {
			continue
		}
		s.ProductsCount++
		s.TotalQuantity = s.TotalQuantity.Add(p.TotalStock)
		s.RetailValue = s.RetailValue.Add(p.Price.Mul(p.TotalStock))
		s.CostValue = s.CostValue.Add(p.Cost.Mul(p.TotalStock))
		if p.Cost.IsZero() {
			s.ZeroCostCount++
		}
		if p.TotalStock.IsNegative() {
			s.NegativeStockCount++
		}
	}
	return s, nil
}

func (r *countingStatsRepo) FilteredProducts(_ context.Context, client, filter string, _, _ int) ([]*entity.Product, int, error) {
	out := []*entity.Product{}
	for _, p := range r.products {
		if p.Client != client || p.Deleted {
			continue
		}
		switch filter {
		case repository.ProductFilterZeroCost:
			if p.Cost.IsZero() {
				out = append(out, p)
			}
		case repository.ProductFilterNegativeStock:
			if p.TotalStock.IsNegative() {
				out = append(out, p)
			}
		}
	}
	return out, len(out), nil
}

// Trío de productos: uno con costo cero y sin stock, uno con stock negativo
// y uno normal. El costo cero cuenta aunque el stock sea cero o negativo.
func TestStockStats_ConteosDelTrio(t *testing.T) {
	repo := &countingStatsRepo{products: []*entity.Product{
		{
			ID:     "p1",
			Client: testClient,
			Name:   "Невідомий товар",
			Cost:   decimal.Zero,
			Price:  decimal.NewFromInt(15),
			// sin stock: TotalStock queda en cero
		},
		{
			ID:         "p2",
			Client:     testClient,
			Name:       "Кава мелена",
			Cost:       decimal.NewFromInt(5),
			Price:      decimal.NewFromInt(12),
			TotalStock: decimal.NewFromInt(-2),
		},
		{
			ID:         "p3",
			Client:     testClient,
			Name:       "Чай чорний",
			Cost:       decimal.NewFromInt(3),
			Price:      decimal.NewFromInt(10),
			TotalStock: decimal.NewFromInt(4),
		},
	}}
	uc := usecase.NewStatsUseCase(repo, &fakeStatsCache{})

	stats, err := uc.StockStats(context.Background(), testClient)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.ProductsCount)
	assert.Equal(t, 1, stats.ZeroCostCount, "el costo cero cuenta aunque no haya stock")
	assert.Equal(t, 1, stats.NegativeStockCount)
	assert.True(t, stats.TotalQuantity.Equal(decimal.NewFromInt(2)))
	assert.True(t, stats.RetailValue.Equal(decimal.NewFromInt(16)), "12*-2 + 10*4")
	assert.True(t, stats.CostValue.Equal(decimal.NewFromInt(2)), "5*-2 + 3*4")

	// El listado filtrado usa el mismo criterio que el conteo.
	zeroCost, total, err := uc.FilteredProducts(context.Background(), testClient, repository.ProductFilterZeroCost, 100, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, zeroCost, 1)
	assert.Equal(t, "p1", zeroCost[0].ID)
}

// La segunda lectura sale del caché: la base se consulta una sola vez.
func TestStockStats_CacheDeLectura(t *testing.T) {
	repo := &fakeStatsRepo{stats: &repository.StockStats{
		ProductsCount: 10,
		RetailValue:   decimal.NewFromInt(5000),
	}}
	statsCache := &fakeStatsCache{}
	uc := usecase.NewStatsUseCase(repo, statsCache)

	first, err := uc.StockStats(context.Background(), testClient)
	require.NoError(t, err)
	assert.Equal(t, 10, first.ProductsCount)
	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, 1, statsCache.sets)

	second, err := uc.StockStats(context.Background(), testClient)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.calls, "la segunda lectura no debe tocar la base")
}

// Tras una invalidación la lectura vuelve a la base.
func TestStockStats_RelecturaTrasInvalidar(t *testing.T) {
	repo := &fakeStatsRepo{stats: &repository.StockStats{ProductsCount: 10}}
	statsCache := &fakeStatsCache{}
	uc := usecase.NewStatsUseCase(repo, statsCache)

	_, err := uc.StockStats(context.Background(), testClient)
	require.NoError(t, err)

	statsCache.Invalidate(context.Background(), testClient)

	_, err = uc.StockStats(context.Background(), testClient)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls)
}

// El error de la base no se cachea.
func TestStockStats_ErrorNoSeCachea(t *testing.T) {
	repo := &fakeStatsRepo{} // sin datos: StockStats devuelve error
	statsCache := &fakeStatsCache{}
	uc := usecase.NewStatsUseCase(repo, statsCache)

	_, err := uc.StockStats(context.Background(), testClient)
	require.Error(t, err)
	assert.Zero(t, statsCache.sets)
}
