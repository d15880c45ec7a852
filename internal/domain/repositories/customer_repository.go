package repositories

import (
	"context"

	"github.com/google/uuid"
	"shopstack.backend/internal/domain/entities"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *entities.Customer) error
	GetByID(ctx context.Context, storeID, id uuid.UUID) (*entities.Customer, error)
	GetByEmail(ctx context.Context, storeID uuid.UUID, email string) (*entities.Customer, error)
	ListByStore(ctx context.Context, storeID uuid.UUID, limit, offset int) ([]*entities.Customer, int64, error)
}

type NewsletterRepository interface {
	Subscribe(ctx context.Context, sub *entities.NewsletterSubscription) error
	IsSubscribed(ctx context.Context, storeID uuid.UUID, email string) (bool, error)
}
