package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"shopstack.backend/internal/domain/entities"
	domainerrors "shopstack.backend/internal/domain/errors"
	"shopstack.backend/internal/infrastructure/models"
)

// CategoryRepository implements category data operations
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create creates a new category
func (r *CategoryRepository) Create(ctx context.Context, category *entities.Category) error {
	m := &models.Category{
		ID:          category.ID,
		StoreID:     category.StoreID,
		Name:        category.Name,
		Slug:        category.Slug,
		Description: category.Description.Ptr(),
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	return nil
}

// GetByID gets a category by ID within a store
func (r *CategoryRepository) GetByID(ctx context.Context, storeID, id uuid.UUID) (*entities.Category, error) {
	var m models.Category
	err := r.db.WithContext(ctx).Where("id = ? AND store_id = ?", id, storeID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return categoryToEntity(&m), nil
}

// ListByStore lists a store's categories
func (r *CategoryRepository) ListByStore(ctx context.Context, storeID uuid.UUID) ([]*entities.Category, error) {
	var categoryModels []models.Category
	err := r.db.WithContext(ctx).Where("store_id = ?", storeID).Order("name ASC").Find(&categoryModels).Error
	if err != nil {
		return nil, err
	}

	categories := make([]*entities.Category, 0, len(categoryModels))
	for i := range categoryModels {
		categories = append(categories, categoryToEntity(&categoryModels[i]))
	}
	return categories, nil
}

// Delete removes a category within a store
func (r *CategoryRepository) Delete(ctx context.Context, storeID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ? AND store_id = ?", id, storeID).Delete(&models.Category{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func categoryToEntity(m *models.Category) *entities.Category {
	return &entities.Category{
		ID:          m.ID,
		StoreID:     m.StoreID,
		Name:        m.Name,
		Slug:        m.Slug,
		Description: null.StringFromPtr(m.Description),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
