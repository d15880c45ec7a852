package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"shopstack.backend/internal/domain/entities"
	domainerrors "shopstack.backend/internal/domain/errors"
	"shopstack.backend/internal/domain/repositories"
	"shopstack.backend/pkg/utils"
)

// StoreUsecase handles tenant registration and profile reads
type StoreUsecase struct {
	storeRepo     repositories.StoreRepository
	apiKeyUsecase *ApiKeyUsecase
}

// NewStoreUsecase creates a new store usecase
func NewStoreUsecase(storeRepo repositories.StoreRepository, apiKeyUsecase *ApiKeyUsecase) *StoreUsecase {
	return &StoreUsecase{
		storeRepo:     storeRepo,
		apiKeyUsecase: apiKeyUsecase,
	}
}

// Register creates a store and issues its first API key in one flow. This is
// the only unauthenticated write in the system; every later call uses the
// key returned here.
func (u *StoreUsecase) Register(ctx context.Context, input *entities.RegisterStoreInput) (*entities.RegisterStoreResponse, error) {
	if _, err := u.storeRepo.GetBySlug(ctx, input.Slug); err == nil {
		return nil, domainerrors.Conflict("store slug already taken")
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	store := &entities.Store{
		ID:        utils.GenerateUUIDv7(),
		Name:      input.Name,
		Slug:      input.Slug,
		Email:     input.Email,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if input.Description != "" {
		store.Description = null.StringFrom(input.Description)
	}

	if err := u.storeRepo.Create(ctx, store); err != nil {
		return nil, err
	}

	keyResp, err := u.apiKeyUsecase.CreateApiKey(ctx, store.ID, &entities.CreateApiKeyInput{Name: "default"})
	if err != nil {
		return nil, err
	}

	return &entities.RegisterStoreResponse{
		Store:  store,
		ApiKey: keyResp,
	}, nil
}

// GetStore returns the store for an already-resolved identity
func (u *StoreUsecase) GetStore(ctx context.Context, id uuid.UUID) (*entities.Store, error) {
	store, err := u.storeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("store not found")
		}
		return nil, err
	}
	return store, nil
}
