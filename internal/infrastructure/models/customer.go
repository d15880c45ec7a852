package models

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	StoreID   uuid.UUID `gorm:"type:uuid;not null;index:idx_customers_store_email,unique"`
	Email     string    `gorm:"type:varchar(255);not null;index:idx_customers_store_email,unique"`
	Name      *string   `gorm:"type:varchar(255)"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Store     Store `gorm:"foreignKey:StoreID"`
}

type NewsletterSubscription struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	StoreID   uuid.UUID `gorm:"type:uuid;not null;index:idx_newsletter_store_email,unique"`
	Email     string    `gorm:"type:varchar(255);not null;index:idx_newsletter_store_email,unique"`
	CreatedAt time.Time
	Store     Store `gorm:"foreignKey:StoreID"`
}
