package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
	"github.com/jhoicas/pos-api/internal/infrastructure/cache"
	"github.com/jhoicas/pos-api/pkg/logger"
	"github.com/jhoicas/pos-api/pkg/objectid"
)

// TxRunner ejecuta fn con repositorios ligados a una misma transacción.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		docs repository.DocumentRepository,
		products repository.ProductRepository,
		counters repository.CounterRepository,
	) error) error
}

// DocumentUseCase casos de uso de documentos (ventas, compras, traslados,
// devoluciones).
type DocumentUseCase struct {
	repo       repository.DocumentRepository
	tx         TxRunner
	statsCache cache.StatsCache
	log        *logger.Logger
}

func NewDocumentUseCase(repo repository.DocumentRepository, tx TxRunner, statsCache cache.StatsCache, log *logger.Logger) *DocumentUseCase {
	return &DocumentUseCase{repo: repo, tx: tx, statsCache: statsCache, log: log}
}

func (uc *DocumentUseCase) List(ctx context.Context, client, docType string, limit, offset int) ([]dto.DocumentResponse, int, error) {
	docs, err := uc.repo.ListByClient(ctx, client, docType, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := uc.repo.CountByClient(ctx, client, docType)
	if err != nil {
		return nil, 0, err
	}
	return dto.ToDocumentResponses(docs), total, nil
}

func (uc *DocumentUseCase) Get(ctx context.Context, client, id string) (*dto.DocumentResponse, error) {
	d, err := uc.repo.GetByID(ctx, client, id)
	if err != nil {
		return nil, err
	}
	return dto.ToDocumentResponse(d), nil
}

// Create registra un documento. Todo ocurre en una transacción: el número
// secuencial, el insert y los ajustes de stock confirman o revierten juntos.
//
// El importe total es la suma de los totales de línea (sum explícito, o
// price × |qty| con qty por defecto 1); lo pagado es la suma de los pagos.
func (uc *DocumentUseCase) Create(ctx context.Context, client, user string, req dto.CreateDocumentRequest) (*dto.DocumentResponse, error) {
	docType := req.Type
	if docType == "" {
		docType = entity.DocTypeSales
	}

	sum := decimal.Zero
	for _, line := range req.Products {
		sum = sum.Add(line.Total())
	}
	paid := decimal.Zero
	for _, p := range req.Payments {
		paid = paid.Add(p.Sum)
	}

	store := req.Store
	if store == "" && req.From != nil && req.From.Type == "stores" {
		store = req.From.ID
	}
	customer := req.Customer
	if customer == "" && req.To != nil && req.To.Type == "clients" {
		customer = req.To.ID
	}
	toStore := req.ToStore
	if toStore == "" && req.To != nil && req.To.Type == "stores" {
		toStore = req.To.ID
	}

	now := time.Now()
	doc := &entity.Document{
		ID:        objectid.New(),
		Client:    client,
		User:      user,
		App:       AppID,
		Type:      docType,
		Status:    true,
		Date:      now.Unix(),
		Store:     store,
		ToStore:   toStore,
		Customer:  customer,
		From:      req.From,
		To:        req.To,
		Sum:       sum,
		Paid:      paid,
		Products:  req.Products,
		Payments:  req.Payments,
		Notes:     req.Notes,
		Comment:   req.Comment,
		Created:   now.Unix(),
		Updated:   now.Unix(),
		CreatedMS: now.UnixMilli(),
	}
	if req.DiscountPercent != nil {
		doc.DiscountPercent = *req.DiscountPercent
	}
	if req.DiscountSum != nil {
		doc.DiscountSum = *req.DiscountSum
	}

	err := uc.tx.Run(ctx, func(
		docs repository.DocumentRepository,
		products repository.ProductRepository,
		counters repository.CounterRepository,
	) error {
		number, err := counters.Next(ctx, client, repository.CounterDocuments)
		if err != nil {
			return err
		}
		doc.Number = number

		if err := docs.Create(ctx, doc); err != nil {
			return err
		}

		// Ajustes de stock: qty va con signo (negativa en las ventas), las
		// líneas sin referencia de producto se saltan sin fallar.
		if doc.Store != "" {
			for _, line := range doc.Products {
				pid := line.ProductID()
				if pid == "" || line.Quantity().IsZero() {
					continue
				}
				if err := products.AddStock(ctx, client, pid, doc.Store, line.Quantity(), now.Unix()); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.statsCache.Invalidate(ctx, client)

	uc.log.Info().
		Str("client", client).
		Str("type", doc.Type).
		Int64("number", doc.Number).
		Str("sum", doc.Sum.String()).
		Msg("Documento creado")

	return dto.ToDocumentResponse(doc), nil
}
