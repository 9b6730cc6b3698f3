package billing

import (
	"errors"
	"testing"

	"mandi-backend/internal/models"
)

func line(seller string, price, qty float64) models.AuctionLine {
	return models.AuctionLine{SellerName: seller, Price: price, Quantity: qty}
}

func TestAggregateGroupsAndTotals(t *testing.T) {
	lines := []models.AuctionLine{
		line("A", 10, 3),
		line("A", 10, 2),
		line("A", 20, 1),
	}

	bill, err := Aggregate(lines)
	if err != nil {
		t.Fatalf("Aggregate returned error: %v", err)
	}

	if len(bill.PriceGroups) != 2 {
		t.Fatalf("expected 2 price groups, got %d", len(bill.PriceGroups))
	}
	if got := bill.PriceGroups[10]; got != 5 {
		t.Errorf("group at price 10 = %v, want 5", got)
	}
	if got := bill.PriceGroups[20]; got != 1 {
		t.Errorf("group at price 20 = %v, want 1", got)
	}
	if bill.TotalBill != 70 {
		t.Errorf("TotalBill = %v, want 70", bill.TotalBill)
	}
	if bill.DiscountedBill != 63.0 {
		t.Errorf("DiscountedBill = %v, want 63.0", bill.DiscountedBill)
	}
}

func TestAggregateNearDuplicatePricesStaySeparate(t *testing.T) {
	// Grouping keys are the raw stored floats, not rounded buckets.
	lines := []models.AuctionLine{
		line("A", 99.99, 4),
		line("A", 99.990000001, 6),
	}

	bill, err := Aggregate(lines)
	if err != nil {
		t.Fatalf("Aggregate returned error: %v", err)
	}

	if len(bill.PriceGroups) != 2 {
		t.Fatalf("near-duplicate prices merged: %v", bill.PriceGroups)
	}
	if got := bill.PriceGroups[99.99]; got != 4 {
		t.Errorf("group at 99.99 = %v, want 4", got)
	}
	if got := bill.PriceGroups[99.990000001]; got != 6 {
		t.Errorf("group at 99.990000001 = %v, want 6", got)
	}

	p1, p2 := 99.99, 99.990000001
	want := 4*p1 + 6*p2
	if bill.TotalBill != want {
		t.Errorf("TotalBill = %v, want %v", bill.TotalBill, want)
	}
}

func TestAggregateTotalIsLineLevelNotGrouped(t *testing.T) {
	// Same price group, quantities summed; the total must come from each
	// line's own quantity*price product.
	lines := []models.AuctionLine{
		line("A", 12.5, 2),
		line("A", 12.5, 3),
	}

	bill, err := Aggregate(lines)
	if err != nil {
		t.Fatalf("Aggregate returned error: %v", err)
	}
	if want := 2*12.5 + 3*12.5; bill.TotalBill != want {
		t.Errorf("TotalBill = %v, want %v", bill.TotalBill, want)
	}
}

func TestAggregateEmptyIsNoSales(t *testing.T) {
	if _, err := Aggregate(nil); !errors.Is(err, ErrNoSales) {
		t.Fatalf("Aggregate(nil) error = %v, want ErrNoSales", err)
	}
}

type fakeLineSource struct {
	lines map[string][]models.AuctionLine
	err   error
}

func (f *fakeLineSource) LinesBySeller(seller string) ([]models.AuctionLine, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.lines[seller], nil
}

func TestBillForSeller(t *testing.T) {
	src := &fakeLineSource{lines: map[string][]models.AuctionLine{
		"Raman": {line("Raman", 10, 3), line("Raman", 20, 1)},
	}}

	bill, err := BillForSeller(src, "Raman")
	if err != nil {
		t.Fatalf("BillForSeller returned error: %v", err)
	}
	if bill.TotalBill != 50 {
		t.Errorf("TotalBill = %v, want 50", bill.TotalBill)
	}

	// Unknown seller must surface the no-data signal, not a zero bill.
	if _, err := BillForSeller(src, "raman"); !errors.Is(err, ErrNoSales) {
		t.Fatalf("case-different seller: error = %v, want ErrNoSales", err)
	}
}

func TestBillForSellerStoreError(t *testing.T) {
	wantErr := errors.New("store down")
	src := &fakeLineSource{err: wantErr}

	if _, err := BillForSeller(src, "Raman"); !errors.Is(err, wantErr) {
		t.Fatalf("error = %v, want wrapped store error", err)
	}
}
