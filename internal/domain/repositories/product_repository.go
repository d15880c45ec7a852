package repositories

import (
	"context"

	"github.com/google/uuid"
	"shopstack.backend/internal/domain/entities"
)

// ProductRepository scopes every operation by store; a product id from
// another store behaves as if it did not exist.
type ProductRepository interface {
	Create(ctx context.Context, product *entities.Product) error
	GetByID(ctx context.Context, storeID, id uuid.UUID) (*entities.Product, error)
	ListByStore(ctx context.Context, storeID uuid.UUID, limit, offset int) ([]*entities.Product, int64, error)
	Update(ctx context.Context, product *entities.Product) error
	Delete(ctx context.Context, storeID, id uuid.UUID) error
}
