package models

import "time"

// DirectInbound: goods received directly at the yard, outside the auction.
type DirectInbound struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"size:100;not null"`
	WholeWeight float64 `gorm:"not null"`
	NoOfTrays   int     `gorm:"not null"`
	Quantity    float64 `gorm:"not null"` // whole_weight - 2*no_of_trays
	SellerName  string  `gorm:"size:100"` // optional
	CreatedAt   time.Time
}
