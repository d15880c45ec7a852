package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Product represents a catalog item owned by a store
type Product struct {
	ID          uuid.UUID   `json:"id"`
	StoreID     uuid.UUID   `json:"storeId"`
	CategoryID  null.String `json:"categoryId,omitempty"`
	Name        string      `json:"name"`
	Slug        string      `json:"slug"`
	Description null.String `json:"description,omitempty"`
	PriceCents  int64       `json:"priceCents"`
	Currency    string      `json:"currency"`
	Stock       int         `json:"stock"`
	IsPublished bool        `json:"isPublished"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

type CreateProductInput struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Slug        string `json:"slug" binding:"required,min=1,max=255"`
	Description string `json:"description,omitempty"`
	CategoryID  string `json:"categoryId,omitempty"`
	PriceCents  int64  `json:"priceCents" binding:"required,gt=0"`
	Currency    string `json:"currency,omitempty"`
	Stock       int    `json:"stock" binding:"gte=0"`
	IsPublished bool   `json:"isPublished"`
}

type UpdateProductInput struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	CategoryID  *string `json:"categoryId,omitempty"`
	PriceCents  *int64  `json:"priceCents,omitempty"`
	Stock       *int    `json:"stock,omitempty"`
	IsPublished *bool   `json:"isPublished,omitempty"`
}
