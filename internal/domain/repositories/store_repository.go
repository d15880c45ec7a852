package repositories

import (
	"context"

	"github.com/google/uuid"
	"shopstack.backend/internal/domain/entities"
)

type StoreRepository interface {
	Create(ctx context.Context, store *entities.Store) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Store, error)
	GetBySlug(ctx context.Context, slug string) (*entities.Store, error)
	Update(ctx context.Context, store *entities.Store) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}
