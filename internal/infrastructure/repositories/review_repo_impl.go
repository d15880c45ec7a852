package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"shopstack.backend/internal/domain/entities"
	domainerrors "shopstack.backend/internal/domain/errors"
	"shopstack.backend/internal/infrastructure/models"
)

// ReviewRepository implements review data operations
type ReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create creates a new review
func (r *ReviewRepository) Create(ctx context.Context, review *entities.Review) error {
	m := &models.Review{
		ID:         review.ID,
		StoreID:    review.StoreID,
		ProductID:  review.ProductID,
		CustomerID: uuidPtrFromNullString(review.CustomerID),
		Author:     review.Author,
		Rating:     review.Rating,
		Body:       review.Body.Ptr(),
		CreatedAt:  review.CreatedAt,
		UpdatedAt:  review.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	return nil
}

// ListByProduct lists reviews for one product within a store, newest first
func (r *ReviewRepository) ListByProduct(ctx context.Context, storeID, productID uuid.UUID) ([]*entities.Review, error) {
	var reviewModels []models.Review
	err := r.db.WithContext(ctx).
		Where("store_id = ? AND product_id = ?", storeID, productID).
		Order("created_at DESC").
		Find(&reviewModels).Error
	if err != nil {
		return nil, err
	}

	reviews := make([]*entities.Review, 0, len(reviewModels))
	for i := range reviewModels {
		reviews = append(reviews, reviewToEntity(&reviewModels[i]))
	}
	return reviews, nil
}

// Delete removes a review within a store
func (r *ReviewRepository) Delete(ctx context.Context, storeID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ? AND store_id = ?", id, storeID).Delete(&models.Review{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func reviewToEntity(m *models.Review) *entities.Review {
	return &entities.Review{
		ID:         m.ID,
		StoreID:    m.StoreID,
		ProductID:  m.ProductID,
		CustomerID: nullStringFromUUIDPtr(m.CustomerID),
		Author:     m.Author,
		Rating:     m.Rating,
		Body:       null.StringFromPtr(m.Body),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
