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

// CustomerUseCase casos de uso de clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

func (uc *CustomerUseCase) List(ctx context.Context, client string, limit, offset int) ([]dto.CustomerResponse, int, error) {
	customers, err := uc.repo.ListByClient(ctx, client, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := uc.repo.CountByClient(ctx, client)
	if err != nil {
		return nil, 0, err
	}
	return dto.ToCustomerResponses(customers), total, nil
}

func (uc *CustomerUseCase) Get(ctx context.Context, client, id string) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(ctx, client, id)
	if err != nil {
		return nil, err
	}
	return dto.ToCustomerResponse(c), nil
}

func (uc *CustomerUseCase) Create(ctx context.Context, client, user string, req dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if req.Name == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	c := &entity.Customer{
		ID:           objectid.New(),
		Client:       client,
		User:         user,
		App:          AppID,
		Name:         req.Name,
		Type:         req.Type,
		Sex:          req.Sex,
		Description:  req.Description,
		Address:      req.Address,
		Phones:       req.Phones,
		Emails:       req.Emails,
		DiscountCard: req.DiscountCard,
		LoyaltyType:  req.LoyaltyType,
		Created:      now.Unix(),
		Updated:      now.Unix(),
		CreatedMS:    now.UnixMilli(),
	}
	if req.Discount != nil {
		c.Discount = *req.Discount
	}
	if req.CashbackRate != nil {
		c.CashbackRate = *req.CashbackRate
	}

	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return dto.ToCustomerResponse(c), nil
}

// Update aplica una actualización parcial (nil = sin cambio).
func (uc *CustomerUseCase) Update(ctx context.Context, client, id string, req dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(ctx, client, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Type != nil {
		c.Type = *req.Type
	}
	if req.Sex != nil {
		c.Sex = *req.Sex
	}
	if req.Description != nil {
		c.Description = *req.Description
	}
	if req.Address != nil {
		c.Address = req.Address
	}
	if req.Phones != nil {
		c.Phones = req.Phones
	}
	if req.Emails != nil {
		c.Emails = req.Emails
	}
	if req.Discount != nil {
		c.Discount = *req.Discount
	}
	if req.DiscountCard != nil {
		c.DiscountCard = *req.DiscountCard
	}
	if req.LoyaltyType != nil {
		c.LoyaltyType = *req.LoyaltyType
	}
	if req.CashbackRate != nil {
		c.CashbackRate = *req.CashbackRate
	}
	if req.Deleted != nil {
		c.Deleted = *req.Deleted
	}
	c.Updated = time.Now().Unix()

	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return dto.ToCustomerResponse(c), nil
}

func (uc *CustomerUseCase) Search(ctx context.Context, client string, req dto.SearchClientsRequest, limit, offset int) ([]dto.CustomerResponse, int, error) {
	f := repository.ClientFilter{Search: req.Search, Type: req.Type}
	customers, total, err := uc.repo.Search(ctx, client, f, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return dto.ToCustomerResponses(customers), total, nil
}
