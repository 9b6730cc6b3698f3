package models

import "time"

// OutPending: an unsettled receivable against a buyer.
type OutPending struct {
	ID            uint    `gorm:"primaryKey"`
	Name          string  `gorm:"size:100;not null"`
	AmountPending float64 `gorm:"not null"`
	LastPurchase  string  `gorm:"size:100"` // optional
	CreatedAt     time.Time
}
