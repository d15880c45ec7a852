package repositories

import (
	"context"

	"github.com/google/uuid"
	"shopstack.backend/internal/domain/entities"
)

// ApiKeyRepository is the minimal record access the auth subsystem needs.
// FindByKeyHash returns the record joined with its owning store so a single
// lookup is enough for a full accept/reject decision.
type ApiKeyRepository interface {
	Create(ctx context.Context, apiKey *entities.ApiKey) error
	FindByKeyHash(ctx context.Context, keyHash string) (*entities.ApiKey, error)
	FindByStoreID(ctx context.Context, storeID uuid.UUID) ([]*entities.ApiKey, error)
	// SetActive flips the active flag on a key owned by storeID. Keys owned
	// by another store are reported as not found, never as forbidden.
	SetActive(ctx context.Context, id, storeID uuid.UUID, active bool) error
}
