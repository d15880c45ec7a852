package entities

import (
	"time"

	"github.com/google/uuid"
)

// ApiKey represents an issued credential for a store. Only the SHA-256
// digest of the credential is kept; KeyPrefix is a display fragment for
// listings and is never used for lookup.
type ApiKey struct {
	ID        uuid.UUID `json:"id"`
	StoreID   uuid.UUID `json:"storeId"`
	Name      string    `json:"name"`
	KeyPrefix string    `json:"keyPrefix"`
	KeyHash   string    `json:"-"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Store is the owning tenant, joined on hash lookup so the validator
	// can check store liveness in the same pass.
	Store *Store `json:"store,omitempty"`
}

type CreateApiKeyInput struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

type CreateApiKeyResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	KeyPrefix string    `json:"keyPrefix"`
	ApiKey    string    `json:"apiKey"` // plaintext, returned exactly once
	CreatedAt time.Time `json:"createdAt"`
}

// Identity is the request-scoped result of a successful validation. It is
// derived fresh per request and never persisted.
type Identity struct {
	StoreID    uuid.UUID `json:"storeId"`
	StoreName  string    `json:"storeName"`
	ApiKeyID   uuid.UUID `json:"apiKeyId"`
	ApiKeyName string    `json:"apiKeyName"`
}
