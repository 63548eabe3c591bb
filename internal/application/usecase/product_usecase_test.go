package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/application/usecase"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
)

type fakeCategoryRepo struct {
	names []string
}

func (r *fakeCategoryRepo) ListNames(context.Context, string) ([]string, error) {
	return r.names, nil
}

func newProductFixture(seed ...*entity.Product) (*usecase.ProductUseCase, *fakeProductRepo) {
	repo := &fakeProductRepo{products: map[string]*entity.Product{}}
	for _, p := range seed {
		repo.products[p.ID] = p
	}
	return usecase.NewProductUseCase(repo, &fakeCategoryRepo{}), repo
}

func strPtr(s string) *string { return &s }

func decPtr(n int64) *decimal.Decimal {
	d := decimal.NewFromInt(n)
	return &d
}

func TestProductCreate_RequiereNombre(t *testing.T) {
	uc, _ := newProductFixture()

	_, err := uc.Create(context.Background(), testClient, testUser, dto.CreateProductRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_AsignaIdentidadYMarcas(t *testing.T) {
	uc, _ := newProductFixture()

	p, err := uc.Create(context.Background(), testClient, testUser, dto.CreateProductRequest{
		Name:  "Лялька",
		Price: decPtr(150),
	})
	require.NoError(t, err)

	assert.Len(t, p.ID, 24)
	assert.Equal(t, testClient, p.Client)
	assert.Equal(t, testUser, p.User)
	assert.True(t, p.Price.Equal(decimal.NewFromInt(150)))
	assert.NotZero(t, p.Created)
	assert.NotNil(t, p.Stock)
}

// La actualización es parcial: los campos que no vienen conservan el valor
// almacenado, igual que el COALESCE del API legado.
func TestProductUpdate_ParcialConservaCampos(t *testing.T) {
	uc, repo := newProductFixture(&entity.Product{
		ID:      "p1",
		Client:  testClient,
		Name:    "Лялька",
		Barcode: "4820000000017",
		Price:   decimal.NewFromInt(150),
		Cost:    decimal.NewFromInt(90),
	})

	updated, err := uc.Update(context.Background(), testClient, "p1", dto.UpdateProductRequest{
		Price: decPtr(175),
	})
	require.NoError(t, err)

	assert.True(t, updated.Price.Equal(decimal.NewFromInt(175)))
	assert.Equal(t, "Лялька", updated.Name, "el nombre no vino: se conserva")
	assert.Equal(t, "4820000000017", updated.Barcode)
	assert.True(t, updated.Cost.Equal(decimal.NewFromInt(90)))
	require.NotNil(t, repo.updated)
	assert.NotZero(t, repo.updated.Updated)
}

// Mandar el mapa de stock recalcula el total; total_stock explícito manda.
func TestProductUpdate_StockRecalculaTotal(t *testing.T) {
	uc, _ := newProductFixture(&entity.Product{ID: "p1", Client: testClient, Name: "Лялька"})

	updated, err := uc.Update(context.Background(), testClient, "p1", dto.UpdateProductRequest{
		Stock: entity.StockMap{
			"s1": decimal.NewFromInt(3),
			"s2": decimal.NewFromInt(7),
		},
	})
	require.NoError(t, err)
	assert.True(t, updated.TotalStock.Equal(decimal.NewFromInt(10)), "total = %s", updated.TotalStock)

	updated, err = uc.Update(context.Background(), testClient, "p1", dto.UpdateProductRequest{
		TotalStock: decPtr(42),
	})
	require.NoError(t, err)
	assert.True(t, updated.TotalStock.Equal(decimal.NewFromInt(42)))
}

func TestProductUpdate_BorradoLogico(t *testing.T) {
	uc, _ := newProductFixture(&entity.Product{ID: "p1", Client: testClient, Name: "Лялька"})

	deleted := true
	updated, err := uc.Update(context.Background(), testClient, "p1", dto.UpdateProductRequest{
		Deleted: &deleted,
	})
	require.NoError(t, err)
	assert.True(t, updated.Deleted)
}

// El inquilino no alcanza productos ajenos.
func TestProductUpdate_OtroInquilinoNoVe(t *testing.T) {
	uc, _ := newProductFixture(&entity.Product{ID: "p1", Client: "otro", Name: "Лялька"})

	_, err := uc.Update(context.Background(), testClient, "p1", dto.UpdateProductRequest{
		Name: strPtr("nuevo"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
