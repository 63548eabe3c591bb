package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
	"github.com/jhoicas/pos-api/pkg/objectid"
)

// AppID marca de aplicación que el esquema legado guarda en _app.
const AppID = "WAPP"

// ProductUseCase casos de uso del catálogo.
type ProductUseCase struct {
	repo    repository.ProductRepository
	catRepo repository.CategoryRepository
}

func NewProductUseCase(repo repository.ProductRepository, catRepo repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, catRepo: catRepo}
}

func (uc *ProductUseCase) List(ctx context.Context, client string, limit, offset int) ([]dto.ProductResponse, int, error) {
	products, err := uc.repo.ListByClient(ctx, client, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := uc.repo.CountByClient(ctx, client)
	if err != nil {
		return nil, 0, err
	}
	return dto.ToProductResponses(products), total, nil
}

func (uc *ProductUseCase) Get(ctx context.Context, client, id string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, client, id)
	if err != nil {
		return nil, err
	}
	return dto.ToProductResponse(p), nil
}

func (uc *ProductUseCase) Create(ctx context.Context, client, user string, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if req.Name == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	p := &entity.Product{
		ID:          objectid.New(),
		Client:      client,
		User:        user,
		App:         AppID,
		Name:        req.Name,
		SKU:         req.SKU,
		Code:        req.Code,
		Barcode:     req.Barcode,
		Type:        req.Type,
		Categories:  req.Categories,
		Unit:        req.Unit,
		Description: req.Description,
		TaxFree:     req.TaxFree,
		FreePrice:   req.FreePrice,
		IsWeighed:   req.IsWeighed,
		Stock:       entity.StockMap{},
		Created:     now.Unix(),
		Updated:     now.Unix(),
		CreatedMS:   now.UnixMilli(),
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Cost != nil {
		p.Cost = *req.Cost
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return dto.ToProductResponse(p), nil
}

// Update aplica una actualización parcial: los campos nil conservan el valor
// almacenado (semántica COALESCE del API legado).
func (uc *ProductUseCase) Update(ctx context.Context, client, id string, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, client, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.SKU != nil {
		p.SKU = *req.SKU
	}
	if req.Code != nil {
		p.Code = *req.Code
	}
	if req.Barcode != nil {
		p.Barcode = *req.Barcode
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Cost != nil {
		p.Cost = *req.Cost
	}
	if req.Type != nil {
		p.Type = *req.Type
	}
	if req.Categories != nil {
		p.Categories = req.Categories
	}
	if req.Unit != nil {
		p.Unit = *req.Unit
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.TaxFree != nil {
		p.TaxFree = *req.TaxFree
	}
	if req.FreePrice != nil {
		p.FreePrice = *req.FreePrice
	}
	if req.IsWeighed != nil {
		p.IsWeighed = *req.IsWeighed
	}
	if req.Stock != nil {
		p.Stock = req.Stock
		p.TotalStock = req.Stock.Total()
	}
	if req.TotalStock != nil {
		p.TotalStock = *req.TotalStock
	}
	if req.Deleted != nil {
		p.Deleted = *req.Deleted
	}
	p.Updated = time.Now().Unix()

	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return dto.ToProductResponse(p), nil
}

func (uc *ProductUseCase) Search(ctx context.Context, client string, req dto.SearchCatalogRequest, limit, offset int) ([]dto.ProductResponse, int, error) {
	f := repository.CatalogFilter{
		Search:   req.Search,
		Category: req.Category,
		InStock:  req.InStock,
	}
	products, total, err := uc.repo.Search(ctx, client, f, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return dto.ToProductResponses(products), total, nil
}

func (uc *ProductUseCase) Categories(ctx context.Context, client string) ([]string, error) {
	names, err := uc.catRepo.ListNames(ctx, client)
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}
