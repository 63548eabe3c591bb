package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// ReceiptLine línea ya resuelta para imprimir en el recibo.
type ReceiptLine struct {
	Name  string
	Qty   decimal.Decimal
	Price decimal.Decimal
	Sum   decimal.Decimal
}

// ReceiptGenerator genera el PDF del recibo de un documento.
type ReceiptGenerator interface {
	Generate(doc *entity.Document, storeName string, lines []ReceiptLine) ([]byte, error)
}

// ReceiptUseCase arma los datos del recibo (nombres hidratados) y delega la
// generación del PDF.
type ReceiptUseCase struct {
	docs     repository.DocumentRepository
	products repository.ProductRepository
	stores   repository.StoreRepository
	gen      ReceiptGenerator
}

func NewReceiptUseCase(
	docs repository.DocumentRepository,
	products repository.ProductRepository,
	stores repository.StoreRepository,
	gen ReceiptGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{docs: docs, products: products, stores: stores, gen: gen}
}

func (uc *ReceiptUseCase) PDF(ctx context.Context, client, docID string) ([]byte, error) {
	doc, err := uc.docs.GetByID(ctx, client, docID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(doc.Products))
	for _, line := range doc.Products {
		if pid := line.ProductID(); pid != "" {
			ids = append(ids, pid)
		}
	}
	lookups, err := uc.products.LookupByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	lines := make([]ReceiptLine, 0, len(doc.Products))
	for _, line := range doc.Products {
		lookup := lookups[line.ProductID()]
		qty := line.Quantity().Abs()
		if qty.IsZero() {
			qty = decimal.NewFromInt(1)
		}
		price := line.Price
		if price.IsZero() {
			price = lookup.Price
		}
		lines = append(lines, ReceiptLine{
			Name:  firstNonEmpty(lineProductName(line), lookup.Name, UnknownProductName),
			Qty:   qty,
			Price: price,
			Sum:   line.Total(),
		})
	}

	storeName := ""
	if doc.Store != "" {
		names, err := uc.stores.NamesByIDs(ctx, []string{doc.Store})
		if err == nil {
			storeName = names[doc.Store]
		}
	}
	if storeName == "" && doc.From != nil {
		storeName = doc.From.Name
	}

	return uc.gen.Generate(doc, storeName, lines)
}
