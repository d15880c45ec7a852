package models

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	StoreID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProductID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	CustomerID *uuid.UUID `gorm:"type:uuid;index"`
	Author     string     `gorm:"type:varchar(255);not null"`
	Rating     int        `gorm:"not null"`
	Body       *string    `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Product    Product `gorm:"foreignKey:ProductID"`
}
