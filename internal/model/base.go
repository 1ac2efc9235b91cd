package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base menggantikan gorm.Model: ID berupa UUID string, tanpa soft delete.
type Base struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
