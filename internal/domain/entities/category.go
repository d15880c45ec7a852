package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Category groups products within a single store
type Category struct {
	ID          uuid.UUID   `json:"id"`
	StoreID     uuid.UUID   `json:"storeId"`
	Name        string      `json:"name"`
	Slug        string      `json:"slug"`
	Description null.String `json:"description,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

type CreateCategoryInput struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Slug        string `json:"slug" binding:"required,min=1,max=255"`
	Description string `json:"description,omitempty"`
}
