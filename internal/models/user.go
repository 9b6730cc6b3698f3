package models

import "time"

type UserRole string

const (
	RoleVallamChennai UserRole = "vallam_chennai"
	RoleKerala        UserRole = "kerala"
	RoleCEO           UserRole = "ceo"
)

// ValidRole reports whether r is one of the known access roles.
func ValidRole(r UserRole) bool {
	switch r {
	case RoleVallamChennai, RoleKerala, RoleCEO:
		return true
	}
	return false
}

type User struct {
	ID           uint     `gorm:"primaryKey"`
	Username     string   `gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string   `gorm:"size:255;not null"`
	Role         UserRole `gorm:"size:20;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
