package models

import "time"

type AuditAction string

// Ledger rows are append-only, so create is the only mutating action
// the API performs.
const AuditActionCreate AuditAction = "create"

type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID   uint   `json:"user_id"`
	Username string `gorm:"size:100" json:"username"` // denormalized

	// Which row? (e.g. "auction_line", "outbound")
	EntityType string `gorm:"size:50;index" json:"entity_type"`
	EntityID   uint   `gorm:"index" json:"entity_id"`

	Action      AuditAction `gorm:"size:20" json:"action"`
	Description string      `gorm:"size:255" json:"description"`

	// Stored row as written (JSON)
	Data string `gorm:"type:jsonb" json:"data"`
}
