package model

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog hanya pernah di-insert, tidak pernah diubah atau dihapus.
type AuditLog struct {
	ID         string         `json:"id" gorm:"primaryKey;size:36"`
	UserID     string         `json:"user_id" gorm:"size:36;index"`
	Username   string         `json:"username" gorm:"size:64"`
	Action     string         `json:"action" gorm:"size:64;index"`
	EntityType string         `json:"entity_type" gorm:"size:32;index"`
	EntityID   string         `json:"entity_id" gorm:"size:64;index"`
	OldValue   datatypes.JSON `json:"old_value"`
	NewValue   datatypes.JSON `json:"new_value"`
	IPAddress  string         `json:"ip_address" gorm:"size:64"`
	Timestamp  time.Time      `json:"timestamp" gorm:"index"`
}
