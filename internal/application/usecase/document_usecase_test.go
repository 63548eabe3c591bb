package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/application/usecase"
	"github.com/jhoicas/pos-api/internal/domain/entity"
)

const (
	testClient = "58c872aa3ce7d5fc688b49bd"
	testUser   = "58c872aa3ce7d5fc688b49bc"
	testStore  = "58c872aa3ce7d5fc688b49be"
)

func newDocumentFixture() (*usecase.DocumentUseCase, *fakeDocRepo, *fakeProductRepo, *fakeStatsCache) {
	docs := &fakeDocRepo{}
	products := &fakeProductRepo{}
	counters := &fakeCounterRepo{}
	statsCache := &fakeStatsCache{}
	tx := &fakeTxRunner{docs: docs, products: products, counters: counters}
	uc := usecase.NewDocumentUseCase(docs, tx, statsCache, testLogger())
	return uc, docs, products, statsCache
}

func qty(n int64) *decimal.Decimal {
	d := decimal.NewFromInt(n)
	return &d
}

// La venta típica: el total sale de las líneas, lo pagado de los pagos, y el
// número es secuencial por inquilino.
func TestDocumentCreate_VentaCalculaTotales(t *testing.T) {
	uc, _, _, _ := newDocumentFixture()

	req := dto.CreateDocumentRequest{
		Store: testStore,
		Products: []entity.DocLine{
			{ID: "p1", Price: decimal.NewFromInt(10), Qty: qty(-2)},
			{ID: "p2", Price: decimal.NewFromInt(5), Qty: qty(-1)},
		},
		Payments: []entity.Payment{
			{Sum: decimal.NewFromInt(25), Type: "cash"},
		},
	}

	doc, err := uc.Create(context.Background(), testClient, testUser, req)
	require.NoError(t, err)

	assert.Equal(t, "sales", doc.Type, "sin tipo explícito el documento es una venta")
	assert.Equal(t, int64(1), doc.Number)
	assert.True(t, doc.Status)
	// 10 × |−2| + 5 × |−1| = 25
	assert.True(t, doc.Sum.Equal(decimal.NewFromInt(25)), "sum = %s", doc.Sum)
	assert.True(t, doc.Paid.Equal(decimal.NewFromInt(25)), "paid = %s", doc.Paid)
	assert.Len(t, doc.ID, 24, "el _id debe ser un ObjectId de 24 hex")
}

// Los números se asignan en secuencia aun cuando los documentos llegan uno
// tras otro.
func TestDocumentCreate_NumeracionSecuencial(t *testing.T) {
	uc, _, _, _ := newDocumentFixture()

	for i := 1; i <= 3; i++ {
		doc, err := uc.Create(context.Background(), testClient, testUser, dto.CreateDocumentRequest{
			Products: []entity.DocLine{{ID: "p1", Price: decimal.NewFromInt(1), Qty: qty(-1)}},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(i), doc.Number)
	}
}

// Cada línea con producto y cantidad ajusta el stock de la tienda; la
// cantidad viaja con signo (negativa en ventas).
func TestDocumentCreate_AjustaStockPorLinea(t *testing.T) {
	uc, _, products, _ := newDocumentFixture()

	req := dto.CreateDocumentRequest{
		Store: testStore,
		Products: []entity.DocLine{
			{ID: "p1", Price: decimal.NewFromInt(10), Qty: qty(-2)},
			{Name: "línea libre", Price: decimal.NewFromInt(3)},         // sin producto: se salta
			{ID: "p2", Price: decimal.NewFromInt(4), Qty: qty(0)},       // qty cero: se salta
			{ID: "p3", Price: decimal.NewFromInt(7), Qty: qty(5)},       // entrada positiva
		},
	}

	_, err := uc.Create(context.Background(), testClient, testUser, req)
	require.NoError(t, err)

	require.Len(t, products.adjustments, 2)
	assert.Equal(t, "p1", products.adjustments[0].ProductID)
	assert.Equal(t, testStore, products.adjustments[0].Store)
	assert.True(t, products.adjustments[0].Qty.Equal(decimal.NewFromInt(-2)))
	assert.Equal(t, "p3", products.adjustments[1].ProductID)
	assert.True(t, products.adjustments[1].Qty.Equal(decimal.NewFromInt(5)))
}

// Sin tienda no hay ajustes de stock (documentos de dinero, por ejemplo).
func TestDocumentCreate_SinTiendaNoTocaStock(t *testing.T) {
	uc, _, products, _ := newDocumentFixture()

	_, err := uc.Create(context.Background(), testClient, testUser, dto.CreateDocumentRequest{
		Products: []entity.DocLine{{ID: "p1", Price: decimal.NewFromInt(10), Qty: qty(-1)}},
	})
	require.NoError(t, err)
	assert.Empty(t, products.adjustments)
}

// La tienda y el cliente se resuelven desde los snapshots from/to cuando los
// campos directos no vienen.
func TestDocumentCreate_ResuelvePartesDesdeSnapshots(t *testing.T) {
	uc, _, _, _ := newDocumentFixture()

	req := dto.CreateDocumentRequest{
		From: &entity.PartyRef{ID: testStore, Type: "stores", Name: "Tienda central"},
		To:   &entity.PartyRef{ID: "c1", Type: "clients", Name: "Comprador"},
		Products: []entity.DocLine{
			{ID: "p1", Price: decimal.NewFromInt(10), Qty: qty(-1)},
		},
	}

	doc, err := uc.Create(context.Background(), testClient, testUser, req)
	require.NoError(t, err)

	assert.Equal(t, testStore, doc.Store)
	assert.Equal(t, "c1", doc.Customer)
	assert.Empty(t, doc.ToStore)
}

// En los traslados el destino sale de to cuando apunta a una tienda.
func TestDocumentCreate_TrasladoResuelveDestino(t *testing.T) {
	uc, _, _, _ := newDocumentFixture()

	req := dto.CreateDocumentRequest{
		Type: entity.DocTypeTransfer,
		From: &entity.PartyRef{ID: testStore, Type: "stores"},
		To:   &entity.PartyRef{ID: "s2", Type: "stores"},
	}

	doc, err := uc.Create(context.Background(), testClient, testUser, req)
	require.NoError(t, err)

	assert.Equal(t, entity.DocTypeTransfer, doc.Type)
	assert.Equal(t, "s2", doc.ToStore)
	assert.Empty(t, doc.Customer)
}

// El importe de línea usa sum explícito cuando viene; si no, price × |qty|
// con qty por defecto 1.
func TestDocLine_Total(t *testing.T) {
	explicit := decimal.NewFromInt(99)

	casos := []struct {
		nombre   string
		line     entity.DocLine
		esperado int64
	}{
		{"sum explícito manda", entity.DocLine{Price: decimal.NewFromInt(10), Qty: qty(-2), Sum: &explicit}, 99},
		{"price por qty absoluta", entity.DocLine{Price: decimal.NewFromInt(10), Qty: qty(-2)}, 20},
		{"qty ausente cuenta como 1", entity.DocLine{Price: decimal.NewFromInt(10)}, 10},
		{"qty cero cuenta como 1", entity.DocLine{Price: decimal.NewFromInt(10), Qty: qty(0)}, 10},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			assert.True(t, c.line.Total().Equal(decimal.NewFromInt(c.esperado)),
				"total = %s", c.line.Total())
		})
	}
}

// Crear un documento invalida el caché de estadísticas del inquilino.
func TestDocumentCreate_InvalidaCacheDeStats(t *testing.T) {
	uc, _, _, statsCache := newDocumentFixture()

	_, err := uc.Create(context.Background(), testClient, testUser, dto.CreateDocumentRequest{
		Products: []entity.DocLine{{ID: "p1", Price: decimal.NewFromInt(1), Qty: qty(-1)}},
	})
	require.NoError(t, err)

	require.Len(t, statsCache.invalidated, 1)
	assert.Equal(t, testClient, statsCache.invalidated[0])
}
