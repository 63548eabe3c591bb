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

// StoreUseCase casos de uso de tiendas y bodegas.
type StoreUseCase struct {
	repo repository.StoreRepository
}

func NewStoreUseCase(repo repository.StoreRepository) *StoreUseCase {
	return &StoreUseCase{repo: repo}
}

func (uc *StoreUseCase) List(ctx context.Context, client string) ([]dto.StoreResponse, error) {
	stores, err := uc.repo.ListByClient(ctx, client)
	if err != nil {
		return nil, err
	}
	return dto.ToStoreResponses(stores), nil
}

func (uc *StoreUseCase) Create(ctx context.Context, client, user string, req dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	if req.Name == "" {
		return nil, domain.ErrInvalidInput
	}

	storeType := req.Type
	if storeType == "" {
		storeType = "store"
	}

	now := time.Now()
	s := &entity.Store{
		ID:          objectid.New(),
		Client:      client,
		User:        user,
		App:         AppID,
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
		Type:        storeType,
		Include:     true,
		Created:     now.Unix(),
		Updated:     now.Unix(),
		CreatedMS:   now.UnixMilli(),
	}

	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return dto.ToStoreResponse(s), nil
}

// Update aplica una actualización parcial (nil = sin cambio).
func (uc *StoreUseCase) Update(ctx context.Context, client, id string, req dto.UpdateStoreRequest) (*dto.StoreResponse, error) {
	s, err := uc.repo.GetByID(ctx, client, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		s.Name = *req.Name
	}
	if req.Address != nil {
		s.Address = *req.Address
	}
	if req.Description != nil {
		s.Description = *req.Description
	}
	if req.Type != nil {
		s.Type = *req.Type
	}
	if req.Include != nil {
		s.Include = *req.Include
	}
	if req.Deleted != nil {
		s.Deleted = *req.Deleted
	}
	s.Updated = time.Now().Unix()

	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return dto.ToStoreResponse(s), nil
}
