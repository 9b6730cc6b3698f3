package store

import (
	"mandi-backend/internal/models"

	"gorm.io/gorm"
)

// AuctionLineStore retrieves auction lines for billing.
type AuctionLineStore struct {
	db *gorm.DB
}

func NewAuctionLineStore(db *gorm.DB) *AuctionLineStore {
	return &AuctionLineStore{db: db}
}

// LinesBySeller returns every line whose seller name matches exactly,
// in insertion order.
func (s *AuctionLineStore) LinesBySeller(seller string) ([]models.AuctionLine, error) {
	var lines []models.AuctionLine
	if err := s.db.
		Where("seller_name = ?", seller).
		Order("id asc").
		Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}
