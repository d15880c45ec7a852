package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"shopstack.backend/internal/domain/entities"
	domainerrors "shopstack.backend/internal/domain/errors"
	"shopstack.backend/internal/domain/repositories"
	"shopstack.backend/pkg/utils"
)

// CustomerUsecase handles customer reads and newsletter subscriptions
type CustomerUsecase struct {
	customerRepo   repositories.CustomerRepository
	newsletterRepo repositories.NewsletterRepository
}

// NewCustomerUsecase creates a new customer usecase
func NewCustomerUsecase(customerRepo repositories.CustomerRepository, newsletterRepo repositories.NewsletterRepository) *CustomerUsecase {
	return &CustomerUsecase{
		customerRepo:   customerRepo,
		newsletterRepo: newsletterRepo,
	}
}

// GetCustomer gets one customer within the caller's store
func (u *CustomerUsecase) GetCustomer(ctx context.Context, storeID, id uuid.UUID) (*entities.Customer, error) {
	customer, err := u.customerRepo.GetByID(ctx, storeID, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("customer not found")
		}
		return nil, err
	}
	return customer, nil
}

// ListCustomers lists the caller's customers with pagination
func (u *CustomerUsecase) ListCustomers(ctx context.Context, storeID uuid.UUID, page, limit int) ([]*entities.Customer, int64, error) {
	params := utils.GetPaginationParams(page, limit)
	return u.customerRepo.ListByStore(ctx, storeID, params.Limit, params.CalculateOffset())
}

// SubscribeNewsletter records an opt-in; repeating with the same email is a
// success, not an error
func (u *CustomerUsecase) SubscribeNewsletter(ctx context.Context, storeID uuid.UUID, input *entities.SubscribeNewsletterInput) (*entities.NewsletterSubscription, error) {
	subscribed, err := u.newsletterRepo.IsSubscribed(ctx, storeID, input.Email)
	if err != nil {
		return nil, err
	}
	if subscribed {
		return &entities.NewsletterSubscription{StoreID: storeID, Email: input.Email}, nil
	}

	sub := &entities.NewsletterSubscription{
		ID:        utils.GenerateUUIDv7(),
		StoreID:   storeID,
		Email:     input.Email,
		CreatedAt: time.Now(),
	}
	if err := u.newsletterRepo.Subscribe(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}
