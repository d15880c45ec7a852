package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Customer is a shopper known to one store
type Customer struct {
	ID        uuid.UUID   `json:"id"`
	StoreID   uuid.UUID   `json:"storeId"`
	Email     string      `json:"email"`
	Name      null.String `json:"name,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// NewsletterSubscription records a per-store newsletter opt-in
type NewsletterSubscription struct {
	ID        uuid.UUID `json:"id"`
	StoreID   uuid.UUID `json:"storeId"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type SubscribeNewsletterInput struct {
	Email string `json:"email" binding:"required,email"`
}
