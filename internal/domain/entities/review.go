package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Review is customer feedback on a product
type Review struct {
	ID         uuid.UUID   `json:"id"`
	StoreID    uuid.UUID   `json:"storeId"`
	ProductID  uuid.UUID   `json:"productId"`
	CustomerID null.String `json:"customerId,omitempty"`
	Author     string      `json:"author"`
	Rating     int         `json:"rating"`
	Body       null.String `json:"body,omitempty"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

type CreateReviewInput struct {
	Author     string `json:"author" binding:"required,min=1,max=255"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	Body       string `json:"body,omitempty"`
	CustomerID string `json:"customerId,omitempty"`
}
