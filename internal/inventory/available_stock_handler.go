package inventory

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

type CreateAvailableStockRequest struct {
	Product     string  `json:"product"`
	TotalWeight float64 `json:"total_weight"`
	NoOfTrays   int     `json:"no_of_trays"`
}

type AvailableStockResponse struct {
	ID          uint    `json:"id"`
	Product     string  `json:"product"`
	TotalWeight float64 `json:"total_weight"`
	NoOfTrays   int     `json:"no_of_trays"`
	Quantity    float64 `json:"quantity"`
	CreatedAt   string  `json:"created_at"`
}

func stockToResponse(row models.AvailableStock) AvailableStockResponse {
	return AvailableStockResponse{
		ID:          row.ID,
		Product:     row.Product,
		TotalWeight: row.TotalWeight,
		NoOfTrays:   row.NoOfTrays,
		Quantity:    row.Quantity,
		CreatedAt:   row.CreatedAt.Format(time.RFC3339),
	}
}

// POST /api/available-stock
func CreateAvailableStockHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateAvailableStockRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Product = strings.TrimSpace(body.Product)
		if body.Product == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Product is required")
		}

		row := models.AvailableStock{
			Product:     body.Product,
			TotalWeight: body.TotalWeight,
			NoOfTrays:   body.NoOfTrays,
			Quantity:    billing.Quantity(body.TotalWeight, body.NoOfTrays),
		}

		if err := database.DB.Create(&row).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not save stock entry")
		}

		if userID, username, err := auth.SessionUser(c); err == nil {
			if logErr := audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				Username:    username,
				EntityType:  "available_stock",
				EntityID:    row.ID,
				Description: fmt.Sprintf("Stock count: %.2f of %s", row.Quantity, row.Product),
				Data:        stockToResponse(row),
			}); logErr != nil {
				zap.L().Warn("audit write failed", zap.Error(logErr))
			}
		}

		return c.Status(fiber.StatusCreated).JSON(stockToResponse(row))
	}
}

// GET /api/available-stock
func ListAvailableStockHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rows []models.AvailableStock
		if err := database.DB.Order("created_at desc").Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not fetch stock entries")
		}

		out := make([]AvailableStockResponse, 0, len(rows))
		for _, row := range rows {
			out = append(out, stockToResponse(row))
		}
		return c.JSON(out)
	}
}
