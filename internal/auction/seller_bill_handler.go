package auction

import (
	"errors"
	"sort"
	"strings"

	"mandi-backend/internal/billing"
	"mandi-backend/internal/database"
	"mandi-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type PriceGroup struct {
	Price         float64 `json:"price"`
	TotalQuantity float64 `json:"total_quantity"`
}

type SellerBillResponse struct {
	SellerName     string       `json:"seller_name"`
	PriceGroups    []PriceGroup `json:"price_groups"`
	TotalBill      float64      `json:"total_bill"`
	DiscountedBill float64      `json:"discounted_bill"`
}

// GET /api/auction/seller-bill?seller=...
// 404 with a distinct message when the seller has no lines at all; a seller
// who legitimately owes zero still gets a 200 with totals.
func SellerBillHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		seller := strings.TrimSpace(c.Query("seller"))
		if seller == "" {
			return fiber.NewError(fiber.StatusBadRequest, "seller is required")
		}

		src := store.NewAuctionLineStore(database.DB)
		bill, err := billing.BillForSeller(src, seller)
		if err != nil {
			if errors.Is(err, billing.ErrNoSales) {
				return fiber.NewError(fiber.StatusNotFound, "No auction records for this seller")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Could not compute seller bill")
		}

		// The grouped map is unordered; sort by price for display only.
		groups := make([]PriceGroup, 0, len(bill.PriceGroups))
		for price, qty := range bill.PriceGroups {
			groups = append(groups, PriceGroup{Price: price, TotalQuantity: qty})
		}
		sort.Slice(groups, func(i, j int) bool { return groups[i].Price < groups[j].Price })

		return c.JSON(SellerBillResponse{
			SellerName:     seller,
			PriceGroups:    groups,
			TotalBill:      bill.TotalBill,
			DiscountedBill: bill.DiscountedBill,
		})
	}
}
