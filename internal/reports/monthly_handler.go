package reports

import (
	"fmt"
	"time"

	"mandi-backend/internal/billing"
	"mandi-backend/internal/database"
	"mandi-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type DailyAuctionRevenue struct {
	Date       string  `json:"date"`
	BillAmount float64 `json:"bill_amount"`
}

type MonthlyReportResponse struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Start string `json:"start_date"`
	End   string `json:"end_date"`

	AuctionRevenue    float64 `json:"auction_revenue"`    // Σ stored bill_amount
	DiscountedRevenue float64 `json:"discounted_revenue"` // after the fixed seller rebate
	GardenAdvances    float64 `json:"garden_advances"`
	GardenProcured    float64 `json:"garden_procured"`
	PendingTotal      float64 `json:"pending_total"`
	OutboundQuantity  float64 `json:"outbound_quantity"`
	TripCharges       float64 `json:"trip_charges"`

	DailyBreakdown []DailyAuctionRevenue `json:"daily_breakdown"`
}

// GET /api/reports/monthly?year=2026&month=8
func MonthlyReportHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		yearStr := c.Query("year")
		monthStr := c.Query("month")
		if yearStr == "" || monthStr == "" {
			return fiber.NewError(fiber.StatusBadRequest, "year and month are required")
		}

		var year, month int
		if _, err := fmt.Sscan(yearStr, &year); err != nil || year < 2000 {
			return fiber.NewError(fiber.StatusBadRequest, "year is invalid")
		}
		if _, err := fmt.Sscan(monthStr, &month); err != nil || month < 1 || month > 12 {
			return fiber.NewError(fiber.StatusBadRequest, "month is invalid")
		}

		loc := time.Now().Location()
		firstDay := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
		nextMonth := firstDay.AddDate(0, 1, 0)

		var lines []models.AuctionLine
		database.DB.Where("created_at >= ? AND created_at < ?", firstDay, nextMonth).
			Find(&lines)

		var gardens []models.GardenLedger
		database.DB.Where("created_at >= ? AND created_at < ?", firstDay, nextMonth).
			Find(&gardens)

		var pendings []models.OutPending
		database.DB.Where("created_at >= ? AND created_at < ?", firstDay, nextMonth).
			Find(&pendings)

		var outbounds []models.Outbound
		database.DB.Where("created_at >= ? AND created_at < ?", firstDay, nextMonth).
			Find(&outbounds)

		var trips []models.VehicleTrip
		database.DB.Where("created_at >= ? AND created_at < ?", firstDay, nextMonth).
			Find(&trips)

		// Daily auction revenue breakdown across the whole month.
		dailyMap := make(map[string]float64)
		current := firstDay
		for current.Before(nextMonth) {
			dailyMap[current.Format("2006-01-02")] = 0
			current = current.AddDate(0, 0, 1)
		}

		var auctionRevenue float64
		for _, line := range lines {
			// Stored bill_amount, not a recomputation: historical rows keep
			// the values they were written with.
			auctionRevenue += line.BillAmount
			dateStr := line.CreatedAt.Format("2006-01-02")
			if _, ok := dailyMap[dateStr]; ok {
				dailyMap[dateStr] += line.BillAmount
			}
		}

		var gardenAdvances, gardenProcured float64
		for _, g := range gardens {
			gardenAdvances += g.AdvanceGiven
			gardenProcured += g.TotalAmountProcured
		}

		var pendingTotal float64
		for _, p := range pendings {
			pendingTotal += p.AmountPending
		}

		var outboundQty float64
		for _, o := range outbounds {
			outboundQty += o.Quantity
		}

		var tripCharges float64
		for _, t := range trips {
			tripCharges += t.TripCharge
		}

		breakdown := make([]DailyAuctionRevenue, 0, len(dailyMap))
		current = firstDay
		for current.Before(nextMonth) {
			dateStr := current.Format("2006-01-02")
			breakdown = append(breakdown, DailyAuctionRevenue{Date: dateStr, BillAmount: dailyMap[dateStr]})
			current = current.AddDate(0, 0, 1)
		}

		return c.JSON(MonthlyReportResponse{
			Year:              year,
			Month:             month,
			Start:             firstDay.Format("2006-01-02"),
			End:               nextMonth.AddDate(0, 0, -1).Format("2006-01-02"),
			AuctionRevenue:    auctionRevenue,
			DiscountedRevenue: auctionRevenue * billing.DiscountMultiplier,
			GardenAdvances:    gardenAdvances,
			GardenProcured:    gardenProcured,
			PendingTotal:      pendingTotal,
			OutboundQuantity:  outboundQty,
			TripCharges:       tripCharges,
			DailyBreakdown:    breakdown,
		})
	}
}
