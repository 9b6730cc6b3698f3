package models

import "time"

// Employee: staff record. Wage settlement happens outside this system;
// only the inputs are stored.
type Employee struct {
	ID           uint    `gorm:"primaryKey"`
	Name         string  `gorm:"size:100;not null"`
	PerDaySalary float64 `gorm:"not null"`
	DaysWorked   int     `gorm:"not null"`
	Advance      float64 // optional
	CreatedAt    time.Time
}
