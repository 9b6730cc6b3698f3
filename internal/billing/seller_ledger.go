package billing

import (
	"errors"

	"mandi-backend/internal/models"
)

// ErrNoSales: the seller has no auction lines at all. Kept distinct from a
// zero total so callers can tell an unknown seller from one who owes nothing.
var ErrNoSales = errors.New("no auction lines recorded for seller")

// SellerBill is the reconciled bill for one seller.
//
// PriceGroups sums quantity per exact unit price. The grouping key is the raw
// stored float: two lines at 99.99 and 99.990000001 stay separate groups.
// TotalBill is summed line by line from quantity*price, never from the grouped
// map, so display grouping can never change the amount owed.
type SellerBill struct {
	PriceGroups    map[float64]float64
	TotalBill      float64
	DiscountedBill float64
}

// LineSource fetches every auction line recorded against a seller name.
// Sellers are identified by exact case-sensitive string match; two spellings
// of the same name are two sellers (known limitation of the ledger data).
type LineSource interface {
	LinesBySeller(seller string) ([]models.AuctionLine, error)
}

// Aggregate reconciles a seller's fetched lines into a SellerBill.
func Aggregate(lines []models.AuctionLine) (SellerBill, error) {
	if len(lines) == 0 {
		return SellerBill{}, ErrNoSales
	}

	groups := make(map[float64]float64, len(lines))
	var total float64
	for _, line := range lines {
		groups[line.Price] += line.Quantity
		total += line.Quantity * line.Price
	}

	return SellerBill{
		PriceGroups:    groups,
		TotalBill:      total,
		DiscountedBill: total * DiscountMultiplier,
	}, nil
}

// BillForSeller fetches a seller's lines from src and reconciles them.
func BillForSeller(src LineSource, seller string) (SellerBill, error) {
	lines, err := src.LinesBySeller(seller)
	if err != nil {
		return SellerBill{}, err
	}
	return Aggregate(lines)
}
