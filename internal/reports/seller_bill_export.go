package reports

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"mandi-backend/internal/billing"
	"mandi-backend/internal/database"
	"mandi-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// GET /api/reports/seller-bill.xlsx?seller=...
// Builds a two-part sheet: the raw lines, then the per-price groups with the
// total and discounted total underneath.
func SellerBillExportHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		seller := strings.TrimSpace(c.Query("seller"))
		if seller == "" {
			return fiber.NewError(fiber.StatusBadRequest, "seller is required")
		}

		src := store.NewAuctionLineStore(database.DB)
		lines, err := src.LinesBySeller(seller)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not fetch auction lines")
		}

		bill, err := billing.Aggregate(lines)
		if err != nil {
			if errors.Is(err, billing.ErrNoSales) {
				return fiber.NewError(fiber.StatusNotFound, "No auction records for this seller")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Could not compute seller bill")
		}

		f := excelize.NewFile()
		defer f.Close()

		sheet := f.GetSheetName(0)

		f.SetCellValue(sheet, "A1", "Seller")
		f.SetCellValue(sheet, "B1", seller)

		headers := []string{"Date", "Product", "Weight", "Trays", "Quantity", "Price", "Bill Amount"}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 3)
			f.SetCellValue(sheet, cell, h)
		}

		rowIdx := 4
		for _, line := range lines {
			values := []any{
				line.CreatedAt.Format("2006-01-02"),
				line.Product,
				line.Weight,
				line.NoOfTrays,
				line.Quantity,
				line.Price,
				line.BillAmount,
			}
			for i, v := range values {
				cell, _ := excelize.CoordinatesToCellName(i+1, rowIdx)
				f.SetCellValue(sheet, cell, v)
			}
			rowIdx++
		}

		rowIdx++
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowIdx), "Price")
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowIdx), "Total Quantity")
		rowIdx++

		prices := make([]float64, 0, len(bill.PriceGroups))
		for price := range bill.PriceGroups {
			prices = append(prices, price)
		}
		sort.Float64s(prices)
		for _, price := range prices {
			f.SetCellValue(sheet, fmt.Sprintf("A%d", rowIdx), price)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", rowIdx), bill.PriceGroups[price])
			rowIdx++
		}

		rowIdx++
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowIdx), "Total Bill")
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowIdx), bill.TotalBill)
		rowIdx++
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowIdx), "After Discount")
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowIdx), bill.DiscountedBill)

		buf, err := f.WriteToBuffer()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not build workbook")
		}

		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="seller_bill_%s.xlsx"`, seller))
		return c.Send(buf.Bytes())
	}
}
