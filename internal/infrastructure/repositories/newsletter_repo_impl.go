package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"shopstack.backend/internal/domain/entities"
	"shopstack.backend/internal/infrastructure/models"
)

// NewsletterRepository implements newsletter subscription storage
type NewsletterRepository struct {
	db *gorm.DB
}

// NewNewsletterRepository creates a new newsletter repository
func NewNewsletterRepository(db *gorm.DB) *NewsletterRepository {
	return &NewsletterRepository{db: db}
}

// Subscribe records a subscription
func (r *NewsletterRepository) Subscribe(ctx context.Context, sub *entities.NewsletterSubscription) error {
	m := &models.NewsletterSubscription{
		ID:        sub.ID,
		StoreID:   sub.StoreID,
		Email:     sub.Email,
		CreatedAt: sub.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// IsSubscribed reports whether the email is already subscribed for the store
func (r *NewsletterRepository) IsSubscribed(ctx context.Context, storeID uuid.UUID, email string) (bool, error) {
	var m models.NewsletterSubscription
	err := r.db.WithContext(ctx).Where("store_id = ? AND email = ?", storeID, email).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
