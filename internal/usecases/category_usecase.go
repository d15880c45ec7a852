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

// CategoryUsecase handles tenant-scoped category operations
type CategoryUsecase struct {
	categoryRepo repositories.CategoryRepository
}

// NewCategoryUsecase creates a new category usecase
func NewCategoryUsecase(categoryRepo repositories.CategoryRepository) *CategoryUsecase {
	return &CategoryUsecase{categoryRepo: categoryRepo}
}

// CreateCategory creates a category under the caller's store
func (u *CategoryUsecase) CreateCategory(ctx context.Context, storeID uuid.UUID, input *entities.CreateCategoryInput) (*entities.Category, error) {
	now := time.Now()
	category := &entities.Category{
		ID:        utils.GenerateUUIDv7(),
		StoreID:   storeID,
		Name:      input.Name,
		Slug:      input.Slug,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if input.Description != "" {
		category.Description = null.StringFrom(input.Description)
	}

	if err := u.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// ListCategories lists the caller's categories
func (u *CategoryUsecase) ListCategories(ctx context.Context, storeID uuid.UUID) ([]*entities.Category, error) {
	return u.categoryRepo.ListByStore(ctx, storeID)
}

// DeleteCategory removes a category within the caller's store
func (u *CategoryUsecase) DeleteCategory(ctx context.Context, storeID, id uuid.UUID) error {
	if err := u.categoryRepo.Delete(ctx, storeID, id); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("category not found")
		}
		return err
	}
	return nil
}
