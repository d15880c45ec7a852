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

// CustomerRepository implements customer data operations
type CustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Create creates a new customer
func (r *CustomerRepository) Create(ctx context.Context, customer *entities.Customer) error {
	m := &models.Customer{
		ID:        customer.ID,
		StoreID:   customer.StoreID,
		Email:     customer.Email,
		Name:      customer.Name.Ptr(),
		CreatedAt: customer.CreatedAt,
		UpdatedAt: customer.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	return nil
}

// GetByID gets a customer by ID within a store
func (r *CustomerRepository) GetByID(ctx context.Context, storeID, id uuid.UUID) (*entities.Customer, error) {
	var m models.Customer
	err := r.db.WithContext(ctx).Where("id = ? AND store_id = ?", id, storeID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return customerToEntity(&m), nil
}

// GetByEmail gets a customer by email within a store
func (r *CustomerRepository) GetByEmail(ctx context.Context, storeID uuid.UUID, email string) (*entities.Customer, error) {
	var m models.Customer
	err := r.db.WithContext(ctx).Where("store_id = ? AND email = ?", storeID, email).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return customerToEntity(&m), nil
}

// ListByStore lists a store's customers with pagination
func (r *CustomerRepository) ListByStore(ctx context.Context, storeID uuid.UUID, limit, offset int) ([]*entities.Customer, int64, error) {
	var total int64
	query := r.db.WithContext(ctx).Model(&models.Customer{}).Where("store_id = ?", storeID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var customerModels []models.Customer
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&customerModels).Error
	if err != nil {
		return nil, 0, err
	}

	customers := make([]*entities.Customer, 0, len(customerModels))
	for i := range customerModels {
		customers = append(customers, customerToEntity(&customerModels[i]))
	}
	return customers, total, nil
}

func customerToEntity(m *models.Customer) *entities.Customer {
	return &entities.Customer{
		ID:        m.ID,
		StoreID:   m.StoreID,
		Email:     m.Email,
		Name:      null.StringFromPtr(m.Name),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
