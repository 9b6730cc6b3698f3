package billing

// TrayTare: fixed per-tray weight deducted from a gross weigh-in to get the
// billable quantity.
const TrayTare = 2.0

// DiscountMultiplier: fixed 10% seller rebate applied to the running total.
const DiscountMultiplier = 0.9

// Quantity converts a gross weigh-in into the billable quantity.
// No validation: if the tare exceeds the gross weight the negative result
// passes through unchanged, so bad input stays visible in the ledger.
func Quantity(weight float64, noOfTrays int) float64 {
	return weight - TrayTare*float64(noOfTrays)
}

// BillAmount is the monetary value of a single line item. Plain float64
// multiplication, no rounding; a negative quantity yields a negative bill.
func BillAmount(quantity, unitPrice float64) float64 {
	return quantity * unitPrice
}
