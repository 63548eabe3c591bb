package usecase_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/application/usecase"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

func newSearchFixture(docs []*entity.Document, lookups map[string]repository.ProductLookup, storeNames, customerNames map[string]string) *usecase.SearchUseCase {
	return usecase.NewSearchUseCase(
		&fakeDocRepo{docs: docs},
		&fakeProductRepo{lookups: lookups},
		&fakeStoreRepo{names: storeNames},
		&fakeCustomerRepo{names: customerNames},
		&fakeMoneyRepo{},
	)
}

// Una venta con producto conocido se hidrata con el nombre, el costo total y
// los nombres de tienda y cliente resueltos por lote.
func TestSearchDocs_HidrataVenta(t *testing.T) {
	doc := &entity.Document{
		ID:       "d1",
		Client:   testClient,
		Type:     entity.DocTypeSales,
		Store:    testStore,
		Customer: "c1",
		Sum:      decimal.NewFromInt(20),
		Products: []entity.DocLine{
			{ID: "p1", Price: decimal.NewFromInt(10), Qty: qty(-2)},
		},
		Info: json.RawMessage(`{"user":{"name":"Марія"}}`),
	}
	uc := newSearchFixture(
		[]*entity.Document{doc},
		map[string]repository.ProductLookup{
			"p1": {Name: "Конструктор", Cost: decimal.NewFromInt(6), Barcode: "4820000000017", SKU: "K-01"},
		},
		map[string]string{testStore: "Магазин 1"},
		map[string]string{"c1": "Іван"},
	)

	rows, total, err := uc.Docs(context.Background(), testClient, dto.SearchDocsRequest{}, 50, 0)
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "Магазин 1", row.StoreName)
	assert.Equal(t, "Іван", row.CustomerName)
	assert.Equal(t, "Марія", row.AuthorName)
	// costo = 6 × |−2| = 12
	assert.True(t, row.CostTotal.Equal(decimal.NewFromInt(12)), "cost_total = %s", row.CostTotal)

	require.Len(t, row.Items, 1)
	assert.Equal(t, "Конструктор", row.Items[0].Name)
	assert.Equal(t, "4820000000017", row.Items[0].Barcode)
	assert.Equal(t, "K-01", row.Items[0].SKU)
}

// Cuando el producto ya no existe y el documento no trae snapshot, entran los
// textos de reserva del frontend legado.
func TestSearchDocs_TextosDeReserva(t *testing.T) {
	doc := &entity.Document{
		ID:     "d1",
		Client: testClient,
		Type:   entity.DocTypeSales,
		Products: []entity.DocLine{
			{ID: "p-borrado", Price: decimal.NewFromInt(10), Qty: qty(-1)},
		},
	}
	uc := newSearchFixture([]*entity.Document{doc}, nil, nil, nil)

	rows, _, err := uc.Docs(context.Background(), testClient, dto.SearchDocsRequest{}, 50, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, usecase.UnknownProductName, row.Items[0].Name)
	assert.Equal(t, usecase.RetailCustomerName, row.CustomerName, "venta sin cliente es venta minorista")
	assert.Equal(t, usecase.UnknownAuthorName, row.AuthorName)
	// Producto desaparecido: su costo no entra al total.
	assert.True(t, row.CostTotal.IsZero())
}

// El snapshot embebido en la línea pesa más que la resolución por id.
func TestSearchDocs_SnapshotTienePrioridad(t *testing.T) {
	doc := &entity.Document{
		ID:     "d1",
		Client: testClient,
		Type:   entity.DocTypeSales,
		Products: []entity.DocLine{
			{ID: "p1", Name: "Nombre al momento de la venta", Price: decimal.NewFromInt(10), Qty: qty(-1)},
			{
				ID:      "p2",
				Name:    "Nombre suelto de la línea",
				Product: &entity.LineProduct{ID: "p2", Name: "Snapshot embebido"},
				Price:   decimal.NewFromInt(5),
				Qty:     qty(-1),
			},
		},
		From: &entity.PartyRef{ID: testStore, Type: "stores", Name: "Nombre histórico"},
	}
	uc := newSearchFixture(
		[]*entity.Document{doc},
		map[string]repository.ProductLookup{
			"p1": {Name: "Nombre actual"},
			"p2": {Name: "Nombre actual"},
		},
		map[string]string{testStore: "Nombre actual de la tienda"},
		nil,
	)

	rows, _, err := uc.Docs(context.Background(), testClient, dto.SearchDocsRequest{}, 50, 0)
	require.NoError(t, err)

	assert.Equal(t, "Nombre al momento de la venta", rows[0].Items[0].Name)
	// El snapshot embebido manda incluso sobre el nombre suelto de la línea.
	assert.Equal(t, "Snapshot embebido", rows[0].Items[1].Name)
	assert.Equal(t, "Nombre histórico", rows[0].StoreName)
}

// El costo total solo aplica a ventas y devoluciones de venta.
func TestSearchDocs_CostoSoloEnVentas(t *testing.T) {
	lookups := map[string]repository.ProductLookup{
		"p1": {Name: "Producto", Cost: decimal.NewFromInt(6)},
	}
	line := entity.DocLine{ID: "p1", Price: decimal.NewFromInt(10), Qty: qty(-1)}

	casos := []struct {
		tipo     string
		conCosto bool
	}{
		{entity.DocTypeSales, true},
		{entity.DocTypeReturnSale, true},
		{entity.DocTypePurchase, false},
		{entity.DocTypeTransfer, false},
	}

	for _, c := range casos {
		t.Run(c.tipo, func(t *testing.T) {
			doc := &entity.Document{ID: "d1", Client: testClient, Type: c.tipo, Products: []entity.DocLine{line}}
			uc := newSearchFixture([]*entity.Document{doc}, lookups, nil, nil)

			rows, _, err := uc.Docs(context.Background(), testClient, dto.SearchDocsRequest{}, 50, 0)
			require.NoError(t, err)

			if c.conCosto {
				assert.True(t, rows[0].CostTotal.Equal(decimal.NewFromInt(6)))
			} else {
				assert.True(t, rows[0].CostTotal.IsZero())
			}
		})
	}
}

// En un traslado to apunta a una tienda: la contraparte es la tienda destino
// y el cliente queda en minorista.
func TestSearchDocs_TrasladoResuelveTiendaDestino(t *testing.T) {
	doc := &entity.Document{
		ID:      "d1",
		Client:  testClient,
		Type:    entity.DocTypeTransfer,
		Store:   testStore,
		ToStore: "s2",
		To:      &entity.PartyRef{ID: "s2", Type: "stores"},
	}
	uc := newSearchFixture([]*entity.Document{doc}, nil,
		map[string]string{testStore: "Origen", "s2": "Destino"}, nil)

	rows, _, err := uc.Docs(context.Background(), testClient, dto.SearchDocsRequest{}, 50, 0)
	require.NoError(t, err)

	assert.Equal(t, "s2", rows[0].TargetID)
	assert.Equal(t, "Destino", rows[0].TargetStoreName)
	assert.Equal(t, usecase.RetailCustomerName, rows[0].CustomerName)
}

func TestSearchMoney_FiltraPorInquilino(t *testing.T) {
	uc := usecase.NewSearchUseCase(
		&fakeDocRepo{},
		&fakeProductRepo{},
		&fakeStoreRepo{},
		&fakeCustomerRepo{},
		&fakeMoneyRepo{movements: []*entity.MoneyMovement{
			{ID: "m1", Client: testClient, Type: "income", Sum: decimal.NewFromInt(100)},
			{ID: "m2", Client: "otro-inquilino", Type: "income", Sum: decimal.NewFromInt(999)},
		}},
	)

	rows, total, err := uc.Money(context.Background(), testClient, dto.SearchMoneyRequest{}, 50, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, rows, 1)
	assert.Equal(t, "m1", rows[0].ID)
}
