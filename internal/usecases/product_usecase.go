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

// ProductUsecase handles tenant-scoped catalog operations
type ProductUsecase struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
}

// NewProductUsecase creates a new product usecase
func NewProductUsecase(productRepo repositories.ProductRepository, categoryRepo repositories.CategoryRepository) *ProductUsecase {
	return &ProductUsecase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// CreateProduct creates a product under the caller's store
func (u *ProductUsecase) CreateProduct(ctx context.Context, storeID uuid.UUID, input *entities.CreateProductInput) (*entities.Product, error) {
	now := time.Now()
	product := &entities.Product{
		ID:          utils.GenerateUUIDv7(),
		StoreID:     storeID,
		Name:        input.Name,
		Slug:        input.Slug,
		PriceCents:  input.PriceCents,
		Currency:    input.Currency,
		Stock:       input.Stock,
		IsPublished: input.IsPublished,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if product.Currency == "" {
		product.Currency = "USD"
	}
	if input.Description != "" {
		product.Description = null.StringFrom(input.Description)
	}

	if input.CategoryID != "" {
		categoryID, err := uuid.Parse(input.CategoryID)
		if err != nil {
			return nil, domainerrors.BadRequest("invalid category id")
		}
		// category must belong to the same store
		if _, err := u.categoryRepo.GetByID(ctx, storeID, categoryID); err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return nil, domainerrors.NotFound("category not found")
			}
			return nil, err
		}
		product.CategoryID = null.StringFrom(categoryID.String())
	}

	if err := u.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct gets one product within the caller's store
func (u *ProductUsecase) GetProduct(ctx context.Context, storeID, id uuid.UUID) (*entities.Product, error) {
	product, err := u.productRepo.GetByID(ctx, storeID, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("product not found")
		}
		return nil, err
	}
	return product, nil
}

// ListProducts lists the caller's products with pagination
func (u *ProductUsecase) ListProducts(ctx context.Context, storeID uuid.UUID, page, limit int) ([]*entities.Product, int64, error) {
	params := utils.GetPaginationParams(page, limit)
	return u.productRepo.ListByStore(ctx, storeID, params.Limit, params.CalculateOffset())
}

// UpdateProduct applies a partial update within the caller's store
func (u *ProductUsecase) UpdateProduct(ctx context.Context, storeID, id uuid.UUID, input *entities.UpdateProductInput) (*entities.Product, error) {
	product, err := u.productRepo.GetByID(ctx, storeID, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("product not found")
		}
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = null.StringFrom(*input.Description)
	}
	if input.PriceCents != nil {
		if *input.PriceCents <= 0 {
			return nil, domainerrors.BadRequest("price must be positive")
		}
		product.PriceCents = *input.PriceCents
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, domainerrors.BadRequest("stock cannot be negative")
		}
		product.Stock = *input.Stock
	}
	if input.IsPublished != nil {
		product.IsPublished = *input.IsPublished
	}
	if input.CategoryID != nil {
		categoryID, err := uuid.Parse(*input.CategoryID)
		if err != nil {
			return nil, domainerrors.BadRequest("invalid category id")
		}
		if _, err := u.categoryRepo.GetByID(ctx, storeID, categoryID); err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return nil, domainerrors.NotFound("category not found")
			}
			return nil, err
		}
		product.CategoryID = null.StringFrom(categoryID.String())
	}

	if err := u.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes a product within the caller's store
func (u *ProductUsecase) DeleteProduct(ctx context.Context, storeID, id uuid.UUID) error {
	if err := u.productRepo.Delete(ctx, storeID, id); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("product not found")
		}
		return err
	}
	return nil
}
