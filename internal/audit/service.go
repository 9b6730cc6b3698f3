package audit

import (
	"encoding/json"
	"fmt"

	"mandi-backend/internal/database"
	"mandi-backend/internal/models"
)

type LogOptions struct {
	UserID      uint
	Username    string
	EntityType  string
	EntityID    uint
	Description string
	Data        any
}

// WriteLog appends one audit row for a ledger insert. The jsonb column
// needs "null" rather than an empty string when there is no payload.
func WriteLog(opts LogOptions) error {
	dataStr := "null"
	if opts.Data != nil {
		if b, err := json.Marshal(opts.Data); err == nil {
			dataStr = string(b)
		}
	}

	row := models.AuditLog{
		UserID:      opts.UserID,
		Username:    opts.Username,
		EntityType:  opts.EntityType,
		EntityID:    opts.EntityID,
		Action:      models.AuditActionCreate,
		Description: opts.Description,
		Data:        dataStr,
	}

	if err := database.DB.Create(&row).Error; err != nil {
		return fmt.Errorf("audit log write failed: %w", err)
	}

	return nil
}
