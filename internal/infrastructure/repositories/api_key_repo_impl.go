package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"shopstack.backend/internal/domain/entities"
	domainerrors "shopstack.backend/internal/domain/errors"
	"shopstack.backend/internal/infrastructure/models"
)

// ApiKeyRepository implements API key data operations
type ApiKeyRepository struct {
	db *gorm.DB
}

// NewApiKeyRepository creates a new API key repository
func NewApiKeyRepository(db *gorm.DB) *ApiKeyRepository {
	return &ApiKeyRepository{db: db}
}

// Create creates a new API key record
func (r *ApiKeyRepository) Create(ctx context.Context, apiKey *entities.ApiKey) error {
	m := &models.ApiKey{
		ID:        apiKey.ID,
		StoreID:   apiKey.StoreID,
		Name:      apiKey.Name,
		KeyPrefix: apiKey.KeyPrefix,
		KeyHash:   apiKey.KeyHash,
		IsActive:  apiKey.IsActive,
		CreatedAt: apiKey.CreatedAt,
		UpdatedAt: apiKey.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	return nil
}

// FindByKeyHash finds an API key by its hash, joined with the owning store.
// The key_hash column has a unique index, so at most one row can match.
func (r *ApiKeyRepository) FindByKeyHash(ctx context.Context, keyHash string) (*entities.ApiKey, error) {
	var m models.ApiKey
	err := r.db.WithContext(ctx).Preload("Store").Where("key_hash = ?", keyHash).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m, true), nil
}

// FindByStoreID lists all keys owned by a store, newest first
func (r *ApiKeyRepository) FindByStoreID(ctx context.Context, storeID uuid.UUID) ([]*entities.ApiKey, error) {
	var keyModels []models.ApiKey
	err := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("created_at DESC").
		Find(&keyModels).Error
	if err != nil {
		return nil, err
	}

	keys := make([]*entities.ApiKey, 0, len(keyModels))
	for i := range keyModels {
		keys = append(keys, r.toEntity(&keyModels[i], false))
	}
	return keys, nil
}

// SetActive flips the active flag on a key owned by storeID. A key owned by
// a different store is indistinguishable from a missing one. Flipping a key
// to a state it is already in succeeds, so deactivation is idempotent.
func (r *ApiKeyRepository) SetActive(ctx context.Context, id, storeID uuid.UUID, active bool) error {
	var m models.ApiKey
	err := r.db.WithContext(ctx).
		Where("id = ? AND store_id = ?", id, storeID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainerrors.ErrNotFound
		}
		return err
	}

	return r.db.WithContext(ctx).Model(&models.ApiKey{}).
		Where("id = ?", m.ID).
		Updates(map[string]interface{}{
			"is_active":  active,
			"updated_at": time.Now(),
		}).Error
}

func (r *ApiKeyRepository) toEntity(m *models.ApiKey, withStore bool) *entities.ApiKey {
	e := &entities.ApiKey{
		ID:        m.ID,
		StoreID:   m.StoreID,
		Name:      m.Name,
		KeyPrefix: m.KeyPrefix,
		KeyHash:   m.KeyHash,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if withStore {
		e.Store = storeToEntity(&m.Store)
	}
	return e
}
