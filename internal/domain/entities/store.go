package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Store represents a storefront tenant. Every API key and every catalog
// record belongs to exactly one store.
type Store struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Slug        string      `json:"slug"`
	Description null.String `json:"description,omitempty"`
	Email       string      `json:"email"`
	IsActive    bool        `json:"isActive"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// RegisterStoreInput represents input for the public store registration flow
type RegisterStoreInput struct {
	Name        string `json:"name" binding:"required,min=2,max=255"`
	Slug        string `json:"slug" binding:"required,min=2,max=100"`
	Email       string `json:"email" binding:"required,email"`
	Description string `json:"description,omitempty"`
}

// RegisterStoreResponse carries the new store plus its first credential.
// The plaintext key appears here and nowhere else.
type RegisterStoreResponse struct {
	Store  *Store                `json:"store"`
	ApiKey *CreateApiKeyResponse `json:"apiKey"`
}
