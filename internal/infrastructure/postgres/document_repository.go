package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// DocumentRepo implementa repository.DocumentRepository sobre PostgreSQL.
type DocumentRepo struct {
	db Querier
}

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

func NewDocumentRepo(db Querier) *DocumentRepo {
	return &DocumentRepo{db: db}
}

const documentColumns = `_id, _client, COALESCE(_user, ''), COALESCE(_app, ''),
	COALESCE(type, ''), COALESCE(number, 0), COALESCE(status, true), COALESCE(date, 0),
	COALESCE(store, ''), COALESCE(to_store, ''), COALESCE(customer, ''),
	COALESCE("from", 'null'::jsonb), COALESCE("to", 'null'::jsonb),
	COALESCE(sum, 0), COALESCE(paid, 0),
	COALESCE(discount_percent, 0), COALESCE(discount_sum, 0),
	COALESCE(products, '[]'::jsonb), COALESCE(payments, '[]'::jsonb),
	COALESCE(notes, ''), COALESCE(comment, ''), COALESCE(info, 'null'::jsonb),
	COALESCE(created, 0), COALESCE(updated, 0), COALESCE(created_ms, 0)`

func scanDocument(row pgx.Row) (*entity.Document, error) {
	var d entity.Document
	err := row.Scan(
		&d.ID, &d.Client, &d.User, &d.App,
		&d.Type, &d.Number, &d.Status, &d.Date,
		&d.Store, &d.ToStore, &d.Customer,
		&d.From, &d.To,
		&d.Sum, &d.Paid,
		&d.DiscountPercent, &d.DiscountSum,
		&d.Products, &d.Payments,
		&d.Notes, &d.Comment, &d.Info,
		&d.Created, &d.Updated, &d.CreatedMS,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DocumentRepo) Create(ctx context.Context, d *entity.Document) error {
	query := `
		INSERT INTO documents (
			_id, _client, _user, _app, type, number, status, date,
			store, to_store, customer, "from", "to",
			sum, paid, discount_percent, discount_sum,
			products, payments, notes, comment, info,
			created, updated, created_ms
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8,
			$9, $10, $11, $12::jsonb, $13::jsonb,
			$14, $15, $16, $17,
			$18::jsonb, $19::jsonb, $20, $21, $22::jsonb,
			$23, $24, $25
		)`

	_, err := r.db.Exec(ctx, query,
		d.ID, d.Client, d.User, d.App, d.Type, d.Number, d.Status, d.Date,
		d.Store, d.ToStore, d.Customer, jsonArg(d.From), jsonArg(d.To),
		d.Sum, d.Paid, d.DiscountPercent, d.DiscountSum,
		jsonArg(d.Products), jsonArg(d.Payments), d.Notes, d.Comment, jsonArg(d.Info),
		d.Created, d.Updated, d.CreatedMS,
	)
	if err != nil {
		return fmt.Errorf("error al crear documento: %w", err)
	}
	return nil
}

func (r *DocumentRepo) GetByID(ctx context.Context, client, id string) (*entity.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE _client = $1 AND _id = $2`

	d, err := scanDocument(r.db.QueryRow(ctx, query, client, id))
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("error al obtener documento: %w", err)
	}
	return d, nil
}

func (r *DocumentRepo) ListByClient(ctx context.Context, client, docType string, limit, offset int) ([]*entity.Document, error) {
	args := []any{client}
	where := `WHERE _client = $1`
	if docType != "" {
		args = append(args, docType)
		where += ` AND type = $2`
	}
	args = append(args, limit, offset)

	query := fmt.Sprintf(`SELECT %s FROM documents %s ORDER BY date DESC, created_ms DESC LIMIT $%d OFFSET $%d`,
		documentColumns, where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error al listar documentos: %w", err)
	}
	defer rows.Close()

	return collectDocuments(rows)
}

func (r *DocumentRepo) CountByClient(ctx context.Context, client, docType string) (int, error) {
	args := []any{client}
	query := `SELECT COUNT(*) FROM documents WHERE _client = $1`
	if docType != "" {
		args = append(args, docType)
		query += ` AND type = $2`
	}

	var count int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error al contar documentos: %w", err)
	}
	return count, nil
}

func (r *DocumentRepo) Search(ctx context.Context, client string, f repository.DocFilter, limit, offset int) ([]*entity.Document, int, error) {
	var sb strings.Builder
	sb.WriteString(`WHERE _client = $1`)
	args := []any{client}

	// El valor singular tiene prioridad sobre la lista.
	switch {
	case f.Type != "":
		args = append(args, f.Type)
		fmt.Fprintf(&sb, ` AND type = $%d`, len(args))
	case len(f.Types) > 0:
		args = append(args, f.Types)
		fmt.Fprintf(&sb, ` AND type = ANY($%d)`, len(args))
	}
	switch {
	case f.Store != "":
		args = append(args, f.Store)
		fmt.Fprintf(&sb, ` AND store = $%d`, len(args))
	case len(f.Stores) > 0:
		args = append(args, f.Stores)
		fmt.Fprintf(&sb, ` AND store = ANY($%d)`, len(args))
	}
	if f.FromDate != nil {
		args = append(args, *f.FromDate)
		fmt.Fprintf(&sb, ` AND date >= $%d`, len(args))
	}
	if f.ToDate != nil {
		args = append(args, *f.ToDate)
		fmt.Fprintf(&sb, ` AND date <= $%d`, len(args))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		fmt.Fprintf(&sb, ` AND (number::text LIKE $%d OR products::text ILIKE $%d)`, n, n)
	}
	where := sb.String()

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM documents `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error al contar búsqueda de documentos: %w", err)
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT %s FROM documents %s ORDER BY date DESC, number DESC LIMIT $%d OFFSET $%d`,
		documentColumns, where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error al buscar documentos: %w", err)
	}
	defer rows.Close()

	docs, err := collectDocuments(rows)
	if err != nil {
		return nil, 0, err
	}
	return docs, total, nil
}

func collectDocuments(rows pgx.Rows) ([]*entity.Document, error) {
	var docs []*entity.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("error al leer documento: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}
