package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// ProductRepo implementa repository.ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	db Querier
}

var _ repository.ProductRepository = (*ProductRepo)(nil)

func NewProductRepo(db Querier) *ProductRepo {
	return &ProductRepo{db: db}
}

const productColumns = `_id, _client, COALESCE(_user, ''), COALESCE(_app, ''),
	COALESCE(name, ''), COALESCE(sku, ''), COALESCE(code, ''), COALESCE(barcode, ''),
	COALESCE(price, 0), COALESCE(cost, 0), COALESCE(type, ''),
	COALESCE(categories, '[]'::jsonb), COALESCE(unit, ''), COALESCE(description, ''),
	COALESCE(tax_free, false), COALESCE(free_price, false), COALESCE(is_weighed, false),
	COALESCE(stock, '{}'::jsonb), COALESCE(total_stock, 0), COALESCE(deleted, false),
	COALESCE(created, 0), COALESCE(updated, 0), COALESCE(created_ms, 0)`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Client, &p.User, &p.App,
		&p.Name, &p.SKU, &p.Code, &p.Barcode,
		&p.Price, &p.Cost, &p.Type,
		&p.Categories, &p.Unit, &p.Description,
		&p.TaxFree, &p.FreePrice, &p.IsWeighed,
		&p.Stock, &p.TotalStock, &p.Deleted,
		&p.Created, &p.Updated, &p.CreatedMS,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (
			_id, _client, _user, _app, name, sku, code, barcode,
			price, cost, type, categories, unit, description,
			tax_free, free_price, is_weighed, stock, total_stock,
			deleted, created, updated, created_ms
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8,
			$9, $10, $11, $12::jsonb, $13, $14,
			$15, $16, $17, $18::jsonb, $19,
			$20, $21, $22, $23
		)`

	_, err := r.db.Exec(ctx, query,
		p.ID, p.Client, p.User, p.App, p.Name, p.SKU, p.Code, p.Barcode,
		p.Price, p.Cost, p.Type, jsonArg(p.Categories), p.Unit, p.Description,
		p.TaxFree, p.FreePrice, p.IsWeighed, jsonArg(p.Stock), p.TotalStock,
		p.Deleted, p.Created, p.Updated, p.CreatedMS,
	)
	if err != nil {
		return fmt.Errorf("error al crear producto: %w", err)
	}
	return nil
}

func (r *ProductRepo) GetByID(ctx context.Context, client, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE _client = $1 AND _id = $2`

	p, err := scanProduct(r.db.QueryRow(ctx, query, client, id))
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("error al obtener producto: %w", err)
	}
	return p, nil
}

func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products SET
			name = $3, sku = $4, code = $5, barcode = $6,
			price = $7, cost = $8, type = $9, categories = $10::jsonb,
			unit = $11, description = $12, tax_free = $13, free_price = $14,
			is_weighed = $15, stock = $16::jsonb, total_stock = $17,
			deleted = $18, updated = $19
		WHERE _client = $1 AND _id = $2`

	tag, err := r.db.Exec(ctx, query,
		p.Client, p.ID,
		p.Name, p.SKU, p.Code, p.Barcode,
		p.Price, p.Cost, p.Type, jsonArg(p.Categories),
		p.Unit, p.Description, p.TaxFree, p.FreePrice,
		p.IsWeighed, jsonArg(p.Stock), p.TotalStock,
		p.Deleted, p.Updated,
	)
	if err != nil {
		return fmt.Errorf("error al actualizar producto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductRepo) ListByClient(ctx context.Context, client string, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products
		WHERE _client = $1 AND COALESCE(deleted, false) = false
		ORDER BY updated DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, client, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error al listar productos: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

func (r *ProductRepo) CountByClient(ctx context.Context, client string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM products WHERE _client = $1 AND COALESCE(deleted, false) = false`
	if err := r.db.QueryRow(ctx, query, client).Scan(&count); err != nil {
		return 0, fmt.Errorf("error al contar productos: %w", err)
	}
	return count, nil
}

func (r *ProductRepo) Search(ctx context.Context, client string, f repository.CatalogFilter, limit, offset int) ([]*entity.Product, int, error) {
	var sb strings.Builder
	sb.WriteString(`WHERE _client = $1 AND COALESCE(deleted, false) = false`)
	args := []any{client}

	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		fmt.Fprintf(&sb, ` AND (name ILIKE $%d OR sku ILIKE $%d OR barcode ILIKE $%d)`, n, n, n)
	}
	if f.Category != "" {
		args = append(args, jsonArg(f.Category))
		fmt.Fprintf(&sb, ` AND categories @> $%d::jsonb`, len(args))
	}
	if f.InStock {
		sb.WriteString(` AND COALESCE(total_stock, 0) > 0`)
	}
	where := sb.String()

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error al contar búsqueda de productos: %w", err)
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT %s FROM products %s ORDER BY name LIMIT $%d OFFSET $%d`,
		productColumns, where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error al buscar productos: %w", err)
	}
	defer rows.Close()

	products, err := collectProducts(rows)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *ProductRepo) LookupByIDs(ctx context.Context, ids []string) (map[string]repository.ProductLookup, error) {
	result := make(map[string]repository.ProductLookup, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	query := `
		SELECT _id, COALESCE(name, ''), COALESCE(cost, 0), COALESCE(price, 0),
			COALESCE(barcode, ''), COALESCE(sku, '')
		FROM products
		WHERE _id = ANY($1)`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("error al consultar productos por ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		var l repository.ProductLookup
		if err := rows.Scan(&id, &l.Name, &l.Cost, &l.Price, &l.Barcode, &l.SKU); err != nil {
			return nil, fmt.Errorf("error al leer producto: %w", err)
		}
		result[id] = l
	}
	return result, rows.Err()
}

func (r *ProductRepo) AddStock(ctx context.Context, client, productID, store string, qty decimal.Decimal, now int64) error {
	// Una sola sentencia: incrementa la tienda dentro del jsonb y el total
	// desnormalizado. No valida existencias, el stock puede quedar negativo.
	query := `
		UPDATE products SET
			stock = jsonb_set(
				COALESCE(stock, '{}'::jsonb),
				ARRAY[$3],
				to_jsonb(COALESCE((stock ->> $3)::numeric, 0) + $4::numeric)
			),
			total_stock = COALESCE(total_stock, 0) + $4::numeric,
			updated = $5
		WHERE _client = $1 AND _id = $2`

	_, err := r.db.Exec(ctx, query, client, productID, store, qty, now)
	if err != nil {
		return fmt.Errorf("error al actualizar stock del producto %s: %w", productID, err)
	}
	return nil
}

func collectProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var products []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("error al leer producto: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
