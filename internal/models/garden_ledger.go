package models

import "time"

// GardenLedger: procurement entry for one garden (advance paid vs amount bought).
type GardenLedger struct {
	ID                  uint    `gorm:"primaryKey"`
	GardenName          string  `gorm:"size:100;not null"`
	AdvanceGiven        float64 `gorm:"not null"`
	TotalAmountProcured float64 `gorm:"not null"`
	CreatedAt           time.Time
}
