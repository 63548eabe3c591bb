package usecase_test

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-api/internal/application/usecase"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
	"github.com/jhoicas/pos-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test en memoria para los puertos de repositorio. Implementan lo
// justo para los casos de uso; los métodos que un test no ejercita devuelven
// valores vacíos.
// ──────────────────────────────────────────────────────────────────────────────

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

// fakeDocRepo guarda documentos en memoria y respeta el filtro por inquilino.
type fakeDocRepo struct {
	docs      []*entity.Document
	createErr error
}

func (r *fakeDocRepo) Create(_ context.Context, doc *entity.Document) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.docs = append(r.docs, doc)
	return nil
}

func (r *fakeDocRepo) GetByID(_ context.Context, client, id string) (*entity.Document, error) {
	for _, d := range r.docs {
		if d.Client == client && d.ID == id {
			return d, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeDocRepo) ListByClient(_ context.Context, client, docType string, limit, offset int) ([]*entity.Document, error) {
	out := []*entity.Document{}
	for _, d := range r.docs {
		if d.Client == client && (docType == "" || d.Type == docType) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeDocRepo) CountByClient(_ context.Context, client, docType string) (int, error) {
	n := 0
	for _, d := range r.docs {
		if d.Client == client && (docType == "" || d.Type == docType) {
			n++
		}
	}
	return n, nil
}

func (r *fakeDocRepo) Search(_ context.Context, client string, _ repository.DocFilter, _, _ int) ([]*entity.Document, int, error) {
	out := []*entity.Document{}
	for _, d := range r.docs {
		if d.Client == client {
			out = append(out, d)
		}
	}
	return out, len(out), nil
}

// stockAdjustment registra una llamada a AddStock.
type stockAdjustment struct {
	ProductID string
	Store     string
	Qty       decimal.Decimal
}

// fakeProductRepo mantiene productos y registra los ajustes de stock.
type fakeProductRepo struct {
	products    map[string]*entity.Product
	lookups     map[string]repository.ProductLookup
	adjustments []stockAdjustment
	addStockErr error
	updated     *entity.Product
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	if r.products == nil {
		r.products = map[string]*entity.Product{}
	}
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, client, id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok || p.Client != client {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.updated = p
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) ListByClient(_ context.Context, client string, _, _ int) ([]*entity.Product, error) {
	out := []*entity.Product{}
	for _, p := range r.products {
		if p.Client == client {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) CountByClient(_ context.Context, client string) (int, error) {
	list, _ := r.ListByClient(context.Background(), client, 0, 0)
	return len(list), nil
}

func (r *fakeProductRepo) Search(_ context.Context, client string, _ repository.CatalogFilter, _, _ int) ([]*entity.Product, int, error) {
	list, _ := r.ListByClient(context.Background(), client, 0, 0)
	return list, len(list), nil
}

func (r *fakeProductRepo) LookupByIDs(_ context.Context, ids []string) (map[string]repository.ProductLookup, error) {
	out := map[string]repository.ProductLookup{}
	for _, id := range ids {
		if l, ok := r.lookups[id]; ok {
			out[id] = l
		}
	}
	return out, nil
}

func (r *fakeProductRepo) AddStock(_ context.Context, _, productID, store string, qty decimal.Decimal, _ int64) error {
	if r.addStockErr != nil {
		return r.addStockErr
	}
	r.adjustments = append(r.adjustments, stockAdjustment{ProductID: productID, Store: store, Qty: qty})
	return nil
}

// fakeCounterRepo secuencias en memoria por (inquilino, nombre).
type fakeCounterRepo struct {
	values map[string]int64
}

func (r *fakeCounterRepo) Next(_ context.Context, client, name string) (int64, error) {
	if r.values == nil {
		r.values = map[string]int64{}
	}
	key := client + "/" + name
	r.values[key]++
	return r.values[key], nil
}

// fakeTxRunner pasa los mismos repos en memoria a fn: los tests verifican el
// efecto conjunto, no el protocolo de transacción.
type fakeTxRunner struct {
	docs     *fakeDocRepo
	products *fakeProductRepo
	counters *fakeCounterRepo
}

var _ usecase.TxRunner = (*fakeTxRunner)(nil)

func (t *fakeTxRunner) Run(ctx context.Context, fn func(
	docs repository.DocumentRepository,
	products repository.ProductRepository,
	counters repository.CounterRepository,
) error) error {
	return fn(t.docs, t.products, t.counters)
}

// fakeStatsCache registra aciertos, escrituras e invalidaciones.
type fakeStatsCache struct {
	entries      map[string]*repository.StockStats
	sets         int
	invalidated []string
}

func (c *fakeStatsCache) Get(_ context.Context, client string) (*repository.StockStats, bool) {
	s, ok := c.entries[client]
	return s, ok
}

func (c *fakeStatsCache) Set(_ context.Context, client string, stats *repository.StockStats, _ time.Duration) {
	if c.entries == nil {
		c.entries = map[string]*repository.StockStats{}
	}
	c.entries[client] = stats
	c.sets++
}

func (c *fakeStatsCache) Invalidate(_ context.Context, client string) {
	delete(c.entries, client)
	c.invalidated = append(c.invalidated, client)
}

// fakeShiftRepo un turno abierto a lo sumo por (inquilino, operador).
type fakeShiftRepo struct {
	shifts    []*entity.Shift
	createErr error
}

func (r *fakeShiftRepo) Create(_ context.Context, s *entity.Shift) error {
	if r.createErr != nil {
		return r.createErr
	}
	for _, existing := range r.shifts {
		if existing.Client == s.Client && existing.User == s.User && existing.Status == entity.ShiftStatusOpen {
			return domain.ErrShiftAlreadyOpen
		}
	}
	r.shifts = append(r.shifts, s)
	return nil
}

func (r *fakeShiftRepo) OpenByClient(_ context.Context, client string) (*entity.Shift, error) {
	for _, s := range r.shifts {
		if s.Client == client && s.Status == entity.ShiftStatusOpen {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeShiftRepo) OpenByUser(_ context.Context, client, user string) (*entity.Shift, error) {
	for _, s := range r.shifts {
		if s.Client == client && s.User == user && s.Status == entity.ShiftStatusOpen {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeShiftRepo) History(_ context.Context, client string, _, _ int) ([]*entity.Shift, error) {
	out := []*entity.Shift{}
	for _, s := range r.shifts {
		if s.Client == client {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeShiftRepo) CountByClient(_ context.Context, client string) (int, error) {
	list, _ := r.History(context.Background(), client, 0, 0)
	return len(list), nil
}

func (r *fakeShiftRepo) CloseOpen(_ context.Context, client, user string, c repository.ShiftClose, now int64) (*entity.Shift, error) {
	for _, s := range r.shifts {
		if s.Client == client && s.User == user && s.Status == entity.ShiftStatusOpen {
			s.Status = entity.ShiftStatusClosed
			s.ClosedAt = now
			s.Updated = now
			if c.ClosingBalance != nil {
				s.ClosingBalance = *c.ClosingBalance
			}
			if c.Notes != nil {
				s.Notes = *c.Notes
			}
			return s, nil
		}
	}
	return nil, nil
}

// fakeStoreRepo solo resuelve nombres.
type fakeStoreRepo struct {
	names map[string]string
}

func (r *fakeStoreRepo) Create(context.Context, *entity.Store) error { return nil }
func (r *fakeStoreRepo) Update(context.Context, *entity.Store) error { return nil }

func (r *fakeStoreRepo) GetByID(context.Context, string, string) (*entity.Store, error) {
	return nil, domain.ErrNotFound
}

func (r *fakeStoreRepo) ListByClient(context.Context, string) ([]*entity.Store, error) {
	return nil, nil
}

func (r *fakeStoreRepo) NamesByIDs(_ context.Context, ids []string) (map[string]string, error) {
	out := map[string]string{}
	for _, id := range ids {
		if name, ok := r.names[id]; ok {
			out[id] = name
		}
	}
	return out, nil
}

// fakeCustomerRepo resuelve nombres y soporta el CRUD básico.
type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
	names     map[string]string
	updated   *entity.Customer
}

func (r *fakeCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	if r.customers == nil {
		r.customers = map[string]*entity.Customer{}
	}
	r.customers[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, client, id string) (*entity.Customer, error) {
	c, ok := r.customers[id]
	if !ok || c.Client != client {
		return nil, domain.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	r.updated = c
	r.customers[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) ListByClient(context.Context, string, int, int) ([]*entity.Customer, error) {
	return nil, nil
}

func (r *fakeCustomerRepo) CountByClient(context.Context, string) (int, error) { return 0, nil }

func (r *fakeCustomerRepo) Search(context.Context, string, repository.ClientFilter, int, int) ([]*entity.Customer, int, error) {
	return nil, 0, nil
}

func (r *fakeCustomerRepo) NamesByIDs(_ context.Context, ids []string) (map[string]string, error) {
	out := map[string]string{}
	for _, id := range ids {
		if name, ok := r.names[id]; ok {
			out[id] = name
		}
	}
	return out, nil
}

// fakeMoneyRepo devuelve los movimientos precargados.
type fakeMoneyRepo struct {
	movements []*entity.MoneyMovement
}

func (r *fakeMoneyRepo) Search(_ context.Context, client string, _ repository.MoneyFilter, _, _ int) ([]*entity.MoneyMovement, int, error) {
	out := []*entity.MoneyMovement{}
	for _, m := range r.movements {
		if m.Client == client {
			out = append(out, m)
		}
	}
	return out, len(out), nil
}

// fakeUserRepo usuarios por email e id.
type fakeUserRepo struct {
	users []*entity.User
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

// fakeStatsRepo cuenta cuántas veces se consulta la base.
type fakeStatsRepo struct {
	stats *repository.StockStats
	calls int
}

func (r *fakeStatsRepo) StockStats(context.Context, string) (*repository.StockStats, error) {
	r.calls++
	if r.stats == nil {
		return nil, fmt.Errorf("sin datos")
	}
	return r.stats, nil
}

func (r *fakeStatsRepo) FilteredProducts(context.Context, string, string, int, int) ([]*entity.Product, int, error) {
	return nil, 0, nil
}
