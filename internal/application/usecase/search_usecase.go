package usecase

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// Textos de reserva del frontend legado (en ucraniano): se devuelven cuando
// la hidratación no encuentra el producto, el cliente o el autor.
const (
	UnknownProductName = "Невідомий товар"
	RetailCustomerName = "Роздрібний покупець"
	UnknownAuthorName  = "Невідомий"
)

// SearchUseCase búsqueda paginada de documentos con hidratación: resuelve
// nombres de productos, tiendas y clientes en consultas por lote y calcula
// el costo total de las ventas.
type SearchUseCase struct {
	docRepo      repository.DocumentRepository
	productRepo  repository.ProductRepository
	storeRepo    repository.StoreRepository
	customerRepo repository.CustomerRepository
	moneyRepo    repository.MoneyMovementRepository
}

func NewSearchUseCase(
	docRepo repository.DocumentRepository,
	productRepo repository.ProductRepository,
	storeRepo repository.StoreRepository,
	customerRepo repository.CustomerRepository,
	moneyRepo repository.MoneyMovementRepository,
) *SearchUseCase {
	return &SearchUseCase{
		docRepo:      docRepo,
		productRepo:  productRepo,
		storeRepo:    storeRepo,
		customerRepo: customerRepo,
		moneyRepo:    moneyRepo,
	}
}

func (uc *SearchUseCase) Docs(ctx context.Context, client string, req dto.SearchDocsRequest, limit, offset int) ([]dto.SearchDocResponse, int, error) {
	f := repository.DocFilter{
		Type:   req.Type,
		Types:  req.Types,
		Store:  req.Store,
		Stores: req.Stores,
		Search: req.Search,
	}
	// El frontend manda from/to o from_date/to_date según la pantalla.
	f.FromDate = req.FromDate
	if f.FromDate == nil {
		f.FromDate = req.From
	}
	f.ToDate = req.ToDate
	if f.ToDate == nil {
		f.ToDate = req.To
	}

	docs, total, err := uc.docRepo.Search(ctx, client, f, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	items, err := uc.hydrate(ctx, docs)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (uc *SearchUseCase) Money(ctx context.Context, client string, req dto.SearchMoneyRequest, limit, offset int) ([]dto.MoneyMovementResponse, int, error) {
	f := repository.MoneyFilter{
		Type:     req.Type,
		Account:  req.Account,
		FromDate: req.FromDate,
		ToDate:   req.ToDate,
	}
	movements, total, err := uc.moneyRepo.Search(ctx, client, f, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return dto.ToMoneyMovementResponses(movements), total, nil
}

// hydrate resuelve en lote los nombres referidos por la página de documentos
// y arma las filas enriquecidas. Tres consultas en total, sin N+1.
func (uc *SearchUseCase) hydrate(ctx context.Context, docs []*entity.Document) ([]dto.SearchDocResponse, error) {
	productIDs := make(map[string]struct{})
	storeIDs := make(map[string]struct{})
	customerIDs := make(map[string]struct{})

	for _, d := range docs {
		for _, line := range d.Products {
			if pid := line.ProductID(); pid != "" {
				productIDs[pid] = struct{}{}
			}
		}
		if d.Store != "" {
			storeIDs[d.Store] = struct{}{}
		}
		if d.ToStore != "" {
			storeIDs[d.ToStore] = struct{}{}
		}
		if d.Customer != "" {
			customerIDs[d.Customer] = struct{}{}
		}
		if d.From != nil && d.From.Type == "stores" && d.From.ID != "" {
			storeIDs[d.From.ID] = struct{}{}
		}
		if d.To != nil {
			switch d.To.Type {
			case "stores":
				if d.To.ID != "" {
					storeIDs[d.To.ID] = struct{}{}
				}
			case "clients":
				if d.To.ID != "" {
					customerIDs[d.To.ID] = struct{}{}
				}
			}
		}
	}

	products, err := uc.productRepo.LookupByIDs(ctx, keys(productIDs))
	if err != nil {
		return nil, err
	}
	storeNames, err := uc.storeRepo.NamesByIDs(ctx, keys(storeIDs))
	if err != nil {
		return nil, err
	}
	customerNames, err := uc.customerRepo.NamesByIDs(ctx, keys(customerIDs))
	if err != nil {
		return nil, err
	}

	items := make([]dto.SearchDocResponse, 0, len(docs))
	for _, d := range docs {
		items = append(items, uc.hydrateDoc(d, products, storeNames, customerNames))
	}
	return items, nil
}

func (uc *SearchUseCase) hydrateDoc(
	d *entity.Document,
	products map[string]repository.ProductLookup,
	storeNames, customerNames map[string]string,
) dto.SearchDocResponse {
	row := dto.SearchDocResponse{
		DocumentResponse: *dto.ToDocumentResponse(d),
		Total:            d.Sum,
		Discount:         d.DiscountSum,
	}

	costTrack := d.Type == entity.DocTypeSales || d.Type == entity.DocTypeReturnSale
	costTotal := decimal.Zero

	items := make([]dto.SearchLineItem, 0, len(d.Products))
	for _, line := range d.Products {
		lookup, found := products[line.ProductID()]

		item := dto.SearchLineItem{DocLine: line}
		item.Name = firstNonEmpty(lineProductName(line), lookup.Name, UnknownProductName)
		item.Barcode = firstNonEmpty(lineBarcode(line), lookup.Barcode)
		item.SKU = firstNonEmpty(lineSKU(line), lookup.SKU)
		item.Price = line.Price
		if item.Price.IsZero() {
			item.Price = lookup.Price
		}
		item.Cost = lookup.Cost
		items = append(items, item)

		// El costo total solo aplica a ventas y devoluciones, y solo a las
		// líneas cuyo producto sigue existiendo.
		if costTrack && found {
			costTotal = costTotal.Add(lookup.Cost.Mul(line.Quantity().Abs()))
		}
	}
	row.Items = items
	if costTrack {
		row.CostTotal = costTotal
	}

	// Tienda de origen: el snapshot tiene prioridad sobre la resolución.
	row.StoreID = d.Store
	if row.StoreID == "" && d.From != nil && d.From.Type == "stores" {
		row.StoreID = d.From.ID
	}
	if d.From != nil && d.From.Name != "" {
		row.StoreName = d.From.Name
	} else {
		row.StoreName = storeNames[row.StoreID]
	}

	// Contraparte: tienda destino en traslados, cliente en ventas.
	row.CustomerName = RetailCustomerName
	if d.To != nil {
		switch d.To.Type {
		case "stores":
			row.TargetID = firstNonEmpty(d.ToStore, d.To.ID)
			row.TargetStoreName = firstNonEmpty(d.To.Name, storeNames[row.TargetID])
		case "clients":
			row.CustomerID = firstNonEmpty(d.Customer, d.To.ID)
			row.CustomerName = firstNonEmpty(d.To.Name, customerNames[row.CustomerID], RetailCustomerName)
		}
	} else {
		row.TargetID = d.ToStore
		row.TargetStoreName = storeNames[d.ToStore]
		if d.Customer != "" {
			row.CustomerID = d.Customer
			row.CustomerName = firstNonEmpty(customerNames[d.Customer], RetailCustomerName)
		}
	}

	row.AuthorName = authorName(d.Info)
	return row
}

// authorName extrae info.user.name; el autor desconocido tiene texto propio.
func authorName(info json.RawMessage) string {
	if len(info) == 0 {
		return UnknownAuthorName
	}
	var meta struct {
		User struct {
			Name string `json:"name"`
		} `json:"user"`
	}
	if err := json.Unmarshal(info, &meta); err != nil || meta.User.Name == "" {
		return UnknownAuthorName
	}
	return meta.User.Name
}

// El snapshot embebido del producto tiene prioridad sobre los campos
// sueltos de la línea; el catálogo actual solo entra como último recurso.
func lineProductName(l entity.DocLine) string {
	if l.Product != nil && l.Product.Name != "" {
		return l.Product.Name
	}
	return l.Name
}

func lineBarcode(l entity.DocLine) string {
	if l.Product != nil && l.Product.Barcode != "" {
		return l.Product.Barcode
	}
	return l.Barcode
}

func lineSKU(l entity.DocLine) string {
	if l.Product != nil && l.Product.SKU != "" {
		return l.Product.SKU
	}
	return l.SKU
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func keys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	return out
}
