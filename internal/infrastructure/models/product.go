package models

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	StoreID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	CategoryID  *uuid.UUID `gorm:"type:uuid;index"`
	Name        string     `gorm:"type:varchar(255);not null"`
	Slug        string     `gorm:"type:varchar(255);not null;index:idx_products_store_slug,unique"`
	Description *string    `gorm:"type:text"`
	PriceCents  int64      `gorm:"not null"`
	Currency    string     `gorm:"type:varchar(3);not null;default:'USD'"`
	Stock       int        `gorm:"not null;default:0"`
	IsPublished bool       `gorm:"default:false;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Store       Store `gorm:"foreignKey:StoreID"`
}
