package models

import "time"

// VehicleTrip: one transport run, backing the vehicles ledger.
type VehicleTrip struct {
	ID            uint    `gorm:"primaryKey"`
	VehicleNumber string  `gorm:"size:50;not null"`
	Route         string  `gorm:"size:150"`
	TripCharge    float64 `gorm:"not null"`
	CreatedAt     time.Time
}
