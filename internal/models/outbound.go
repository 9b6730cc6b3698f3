package models

import "time"

// Outbound: goods shipped out of the yard.
type Outbound struct {
	ID          uint    `gorm:"primaryKey"`
	Product     string  `gorm:"size:100;not null"`
	TotalWeight float64 `gorm:"not null"`
	NoOfTrays   int     `gorm:"not null"`
	Quantity    float64 `gorm:"not null"` // total_weight - 2*no_of_trays
	BuyerName   string  `gorm:"size:100"` // optional
	CreatedAt   time.Time
}
