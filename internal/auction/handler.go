package auction

import (
	"fmt"
	"strings"
	"time"

	"mandi-backend/internal/audit"
	"mandi-backend/internal/auth"
	"mandi-backend/internal/billing"
	"mandi-backend/internal/database"
	"mandi-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CreateAuctionLineRequest struct {
	SellerName string  `json:"seller_name"`
	Product    string  `json:"product"`
	Weight     float64 `json:"weight"`      // gross weigh-in
	NoOfTrays  int     `json:"no_of_trays"`
	Price      float64 `json:"price"` // sold price per unit
	BuyerName  string  `json:"buyer_name"`
}

type AuctionLineResponse struct {
	ID         uint    `json:"id"`
	SellerName string  `json:"seller_name"`
	Product    string  `json:"product"`
	Weight     float64 `json:"weight"`
	NoOfTrays  int     `json:"no_of_trays"`
	Quantity   float64 `json:"quantity"`
	Price      float64 `json:"price"`
	BuyerName  string  `json:"buyer_name"`
	BillAmount float64 `json:"bill_amount"`
	CreatedAt  string  `json:"created_at"`
}

func toResponse(line models.AuctionLine) AuctionLineResponse {
	return AuctionLineResponse{
		ID:         line.ID,
		SellerName: line.SellerName,
		Product:    line.Product,
		Weight:     line.Weight,
		NoOfTrays:  line.NoOfTrays,
		Quantity:   line.Quantity,
		Price:      line.Price,
		BuyerName:  line.BuyerName,
		BillAmount: line.BillAmount,
		CreatedAt:  line.CreatedAt.Format(time.RFC3339),
	}
}

// POST /api/auction/lines
func CreateAuctionLineHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateAuctionLineRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.SellerName = strings.TrimSpace(body.SellerName)
		body.Product = strings.TrimSpace(body.Product)
		if body.SellerName == "" || body.Product == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Seller and product are required")
		}

		quantity := billing.Quantity(body.Weight, body.NoOfTrays)

		line := models.AuctionLine{
			SellerName: body.SellerName,
			Product:    body.Product,
			Weight:     body.Weight,
			NoOfTrays:  body.NoOfTrays,
			Quantity:   quantity,
			Price:      body.Price,
			BuyerName:  strings.TrimSpace(body.BuyerName),
			BillAmount: billing.BillAmount(quantity, body.Price),
		}

		if err := database.DB.Create(&line).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not save auction entry")
		}

		if userID, username, err := auth.SessionUser(c); err == nil {
			if logErr := audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				Username:    username,
				EntityType:  "auction_line",
				EntityID:    line.ID,
				Description: fmt.Sprintf("Auction entry: %s sold %.2f of %s at %.2f", line.SellerName, line.Quantity, line.Product, line.Price),
				Data:        toResponse(line),
			}); logErr != nil {
				zap.L().Warn("audit write failed", zap.Error(logErr))
			}
		}

		return c.Status(fiber.StatusCreated).JSON(toResponse(line))
	}
}

// GET /api/auction/lines?seller=...
func ListAuctionLinesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.AuctionLine{})
		if seller := c.Query("seller"); seller != "" {
			dbq = dbq.Where("seller_name = ?", seller)
		}

		var lines []models.AuctionLine
		if err := dbq.Order("created_at desc").Find(&lines).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not fetch auction entries")
		}

		out := make([]AuctionLineResponse, 0, len(lines))
		for _, line := range lines {
			out = append(out, toResponse(line))
		}
		return c.JSON(out)
	}
}
