package models

import "time"

// AuctionLine: one weigh-in sold at auction. Quantity and BillAmount are
// computed once at write time and stored; historical rows keep the values
// they were billed with even if the formulas later change.
type AuctionLine struct {
	ID         uint    `gorm:"primaryKey"`
	SellerName string  `gorm:"size:100;index;not null"` // free text, matched by exact string value
	Product    string  `gorm:"size:100;not null"`
	Weight     float64 `gorm:"not null"` // gross weigh-in, before tray tare
	NoOfTrays  int     `gorm:"not null"`
	Quantity   float64 `gorm:"not null"` // weight - 2*no_of_trays
	Price      float64 `gorm:"not null"` // sold price per unit
	BuyerName  string  `gorm:"size:100"`
	BillAmount float64 `gorm:"not null"` // quantity * price
	CreatedAt  time.Time
}
