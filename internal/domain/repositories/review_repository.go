package repositories

import (
	"context"

	"github.com/google/uuid"
	"shopstack.backend/internal/domain/entities"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entities.Review) error
	ListByProduct(ctx context.Context, storeID, productID uuid.UUID) ([]*entities.Review, error)
	Delete(ctx context.Context, storeID, id uuid.UUID) error
}
