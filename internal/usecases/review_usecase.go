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

// ReviewUsecase handles product review operations within one store
type ReviewUsecase struct {
	reviewRepo  repositories.ReviewRepository
	productRepo repositories.ProductRepository
}

// NewReviewUsecase creates a new review usecase
func NewReviewUsecase(reviewRepo repositories.ReviewRepository, productRepo repositories.ProductRepository) *ReviewUsecase {
	return &ReviewUsecase{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
	}
}

// CreateReview records a review against a product the caller's store owns
func (u *ReviewUsecase) CreateReview(ctx context.Context, storeID, productID uuid.UUID, input *entities.CreateReviewInput) (*entities.Review, error) {
	if _, err := u.productRepo.GetByID(ctx, storeID, productID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("product not found")
		}
		return nil, err
	}

	now := time.Now()
	review := &entities.Review{
		ID:        utils.GenerateUUIDv7(),
		StoreID:   storeID,
		ProductID: productID,
		Author:    input.Author,
		Rating:    input.Rating,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if input.Body != "" {
		review.Body = null.StringFrom(input.Body)
	}
	if input.CustomerID != "" {
		if _, err := uuid.Parse(input.CustomerID); err != nil {
			return nil, domainerrors.BadRequest("invalid customer id")
		}
		review.CustomerID = null.StringFrom(input.CustomerID)
	}

	if err := u.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// ListReviews lists reviews for a product the caller's store owns
func (u *ReviewUsecase) ListReviews(ctx context.Context, storeID, productID uuid.UUID) ([]*entities.Review, error) {
	if _, err := u.productRepo.GetByID(ctx, storeID, productID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("product not found")
		}
		return nil, err
	}
	return u.reviewRepo.ListByProduct(ctx, storeID, productID)
}

// DeleteReview removes a review within the caller's store
func (u *ReviewUsecase) DeleteReview(ctx context.Context, storeID, id uuid.UUID) error {
	if err := u.reviewRepo.Delete(ctx, storeID, id); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("review not found")
		}
		return err
	}
	return nil
}
