package models

import (
	"time"

	"github.com/google/uuid"
)

type Store struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Slug        string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Description *string   `gorm:"type:text"`
	Email       string    `gorm:"type:varchar(255);not null"`
	IsActive    bool      `gorm:"default:true;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
