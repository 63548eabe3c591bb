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

// AccountUseCase casos de uso de cuentas financieras.
type AccountUseCase struct {
	repo repository.AccountRepository
}

func NewAccountUseCase(repo repository.AccountRepository) *AccountUseCase {
	return &AccountUseCase{repo: repo}
}

func (uc *AccountUseCase) List(ctx context.Context, client string) ([]dto.AccountResponse, error) {
	accounts, err := uc.repo.ListByClient(ctx, client)
	if err != nil {
		return nil, err
	}
	return dto.ToAccountResponses(accounts), nil
}

func (uc *AccountUseCase) Create(ctx context.Context, client, user string, req dto.CreateAccountRequest) (*dto.AccountResponse, error) {
	if req.Name == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	a := &entity.Account{
		ID:          objectid.New(),
		Client:      client,
		User:        user,
		App:         AppID,
		Name:        req.Name,
		Type:        req.Type,
		Include:     true,
		UseTerminal: req.UseTerminal,
		BankDetails: req.BankDetails,
		Created:     now.Unix(),
		Updated:     now.Unix(),
		CreatedMS:   now.UnixMilli(),
	}
	if req.Include != nil {
		a.Include = *req.Include
	}

	if err := uc.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return dto.ToAccountResponse(a), nil
}

func (uc *AccountUseCase) Update(ctx context.Context, client, id string, req dto.UpdateAccountRequest) (*dto.AccountResponse, error) {
	a, err := uc.repo.GetByID(ctx, client, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.Type != nil {
		a.Type = *req.Type
	}
	if req.Include != nil {
		a.Include = *req.Include
	}
	if req.UseTerminal != nil {
		a.UseTerminal = *req.UseTerminal
	}
	if req.BankDetails != nil {
		a.BankDetails = req.BankDetails
	}
	if req.Deleted != nil {
		a.Deleted = *req.Deleted
	}
	a.Updated = time.Now().Unix()

	if err := uc.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return dto.ToAccountResponse(a), nil
}

// SupplierUseCase casos de uso de proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

func (uc *SupplierUseCase) List(ctx context.Context, client string) ([]dto.SupplierResponse, error) {
	suppliers, err := uc.repo.ListByClient(ctx, client)
	if err != nil {
		return nil, err
	}
	return dto.ToSupplierResponses(suppliers), nil
}

func (uc *SupplierUseCase) Create(ctx context.Context, client, user string, req dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if req.Name == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	s := &entity.Supplier{
		ID:          objectid.New(),
		Client:      client,
		User:        user,
		App:         AppID,
		Name:        req.Name,
		Site:        req.Site,
		Address:     req.Address,
		Description: req.Description,
		Phones:      req.Phones,
		Emails:      req.Emails,
		BankDetails: req.BankDetails,
		Created:     now.Unix(),
		Updated:     now.Unix(),
		CreatedMS:   now.UnixMilli(),
	}

	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return dto.ToSupplierResponse(s), nil
}

func (uc *SupplierUseCase) Update(ctx context.Context, client, id string, req dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	s, err := uc.repo.GetByID(ctx, client, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		s.Name = *req.Name
	}
	if req.Site != nil {
		s.Site = *req.Site
	}
	if req.Address != nil {
		s.Address = req.Address
	}
	if req.Description != nil {
		s.Description = *req.Description
	}
	if req.Phones != nil {
		s.Phones = req.Phones
	}
	if req.Emails != nil {
		s.Emails = req.Emails
	}
	if req.Deleted != nil {
		s.Deleted = *req.Deleted
	}
	s.Updated = time.Now().Unix()

	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return dto.ToSupplierResponse(s), nil
}

// RegisterUseCase casos de uso de cajas registradoras.
type RegisterUseCase struct {
	repo repository.RegisterRepository
}

func NewRegisterUseCase(repo repository.RegisterRepository) *RegisterUseCase {
	return &RegisterUseCase{repo: repo}
}

func (uc *RegisterUseCase) List(ctx context.Context, client string) ([]dto.RegisterResponse, error) {
	registers, err := uc.repo.ListByClient(ctx, client)
	if err != nil {
		return nil, err
	}
	return dto.ToRegisterResponses(registers), nil
}

func (uc *RegisterUseCase) Create(ctx context.Context, client, user string, req dto.CreateRegisterRequest) (*dto.RegisterResponse, error) {
	if req.Name == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	r := &entity.Register{
		ID:        objectid.New(),
		Client:    client,
		User:      user,
		Store:     req.Store,
		App:       AppID,
		Name:      req.Name,
		Type:      req.Type,
		Settings:  req.Settings,
		Created:   now.Unix(),
		Updated:   now.Unix(),
		CreatedMS: now.UnixMilli(),
	}

	if err := uc.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return dto.ToRegisterResponse(r), nil
}

func (uc *RegisterUseCase) Update(ctx context.Context, client, id string, req dto.UpdateRegisterRequest) (*dto.RegisterResponse, error) {
	r, err := uc.repo.GetByID(ctx, client, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		r.Name = *req.Name
	}
	if req.Type != nil {
		r.Type = *req.Type
	}
	if req.Store != nil {
		r.Store = *req.Store
	}
	if req.Settings != nil {
		r.Settings = req.Settings
	}
	if req.Deleted != nil {
		r.Deleted = *req.Deleted
	}
	r.Updated = time.Now().Unix()

	if err := uc.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	return dto.ToRegisterResponse(r), nil
}

// SourceUseCase casos de uso de métodos de pago (tabla global).
type SourceUseCase struct {
	repo repository.SourceRepository
}

func NewSourceUseCase(repo repository.SourceRepository) *SourceUseCase {
	return &SourceUseCase{repo: repo}
}

func (uc *SourceUseCase) List(ctx context.Context) ([]dto.SourceResponse, error) {
	sources, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ToSourceResponses(sources), nil
}

func (uc *SourceUseCase) Create(ctx context.Context, req dto.CreateSourceRequest) (*dto.SourceResponse, error) {
	if req.Title == "" {
		return nil, domain.ErrInvalidInput
	}

	id := objectid.New()
	s := &entity.MoneySource{
		ID:       id,
		LegacyID: id,
		Title:    req.Title,
		Type:     req.Type,
		Country:  req.Country,
	}

	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return dto.ToSourceResponse(s), nil
}
