package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"shopstack.backend/internal/domain/entities"
	domainerrors "shopstack.backend/internal/domain/errors"
	"shopstack.backend/internal/infrastructure/models"
)

// ProductRepository implements product data operations
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create creates a new product
func (r *ProductRepository) Create(ctx context.Context, product *entities.Product) error {
	m := &models.Product{
		ID:          product.ID,
		StoreID:     product.StoreID,
		CategoryID:  uuidPtrFromNullString(product.CategoryID),
		Name:        product.Name,
		Slug:        product.Slug,
		Description: product.Description.Ptr(),
		PriceCents:  product.PriceCents,
		Currency:    product.Currency,
		Stock:       product.Stock,
		IsPublished: product.IsPublished,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	return nil
}

// GetByID gets a product by ID within a store
func (r *ProductRepository) GetByID(ctx context.Context, storeID, id uuid.UUID) (*entities.Product, error) {
	var m models.Product
	err := r.db.WithContext(ctx).Where("id = ? AND store_id = ?", id, storeID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return productToEntity(&m), nil
}

// ListByStore lists a store's products with pagination
func (r *ProductRepository) ListByStore(ctx context.Context, storeID uuid.UUID, limit, offset int) ([]*entities.Product, int64, error) {
	var total int64
	query := r.db.WithContext(ctx).Model(&models.Product{}).Where("store_id = ?", storeID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var productModels []models.Product
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&productModels).Error
	if err != nil {
		return nil, 0, err
	}

	products := make([]*entities.Product, 0, len(productModels))
	for i := range productModels {
		products = append(products, productToEntity(&productModels[i]))
	}
	return products, total, nil
}

// Update updates a product's mutable fields
func (r *ProductRepository) Update(ctx context.Context, product *entities.Product) error {
	updates := map[string]interface{}{
		"name":         product.Name,
		"price_cents":  product.PriceCents,
		"stock":        product.Stock,
		"is_published": product.IsPublished,
		"updated_at":   time.Now(),
	}
	if product.Description.Valid {
		updates["description"] = product.Description.String
	}
	if product.CategoryID.Valid {
		updates["category_id"] = product.CategoryID.String
	}

	result := r.db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ? AND store_id = ?", product.ID, product.StoreID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes a product within a store
func (r *ProductRepository) Delete(ctx context.Context, storeID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ? AND store_id = ?", id, storeID).Delete(&models.Product{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func productToEntity(m *models.Product) *entities.Product {
	return &entities.Product{
		ID:          m.ID,
		StoreID:     m.StoreID,
		CategoryID:  nullStringFromUUIDPtr(m.CategoryID),
		Name:        m.Name,
		Slug:        m.Slug,
		Description: null.StringFromPtr(m.Description),
		PriceCents:  m.PriceCents,
		Currency:    m.Currency,
		Stock:       m.Stock,
		IsPublished: m.IsPublished,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func uuidPtrFromNullString(s null.String) *uuid.UUID {
	if !s.Valid {
		return nil
	}
	id, err := uuid.Parse(s.String)
	if err != nil {
		return nil
	}
	return &id
}

func nullStringFromUUIDPtr(id *uuid.UUID) null.String {
	if id == nil {
		return null.String{}
	}
	return null.StringFrom(id.String())
}
