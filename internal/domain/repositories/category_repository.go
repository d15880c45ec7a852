package repositories

import (
	"context"

	"github.com/google/uuid"
	"shopstack.backend/internal/domain/entities"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *entities.Category) error
	GetByID(ctx context.Context, storeID, id uuid.UUID) (*entities.Category, error)
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]*entities.Category, error)
	Delete(ctx context.Context, storeID, id uuid.UUID) error
}
