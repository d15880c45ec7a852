package models

import (
	"time"

	"github.com/google/uuid"
)

type ApiKey struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	StoreID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(100);not null"`
	KeyPrefix string    `gorm:"type:varchar(20);not null"`            // display only, e.g. "sk_live_a1b2"
	KeyHash   string    `gorm:"type:varchar(64);uniqueIndex;not null"` // SHA256 of full key
	IsActive  bool      `gorm:"default:true;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Store     Store `gorm:"foreignKey:StoreID"`
}
