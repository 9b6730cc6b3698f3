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

type CreateOutboundRequest struct {
	Product     string  `json:"product"`
	TotalWeight float64 `json:"total_weight"`
	NoOfTrays   int     `json:"no_of_trays"`
	BuyerName   string  `json:"buyer_name"` // optional
}

type OutboundResponse struct {
	ID          uint    `json:"id"`
	Product     string  `json:"product"`
	TotalWeight float64 `json:"total_weight"`
	NoOfTrays   int     `json:"no_of_trays"`
	Quantity    float64 `json:"quantity"`
	BuyerName   string  `json:"buyer_name"`
	CreatedAt   string  `json:"created_at"`
}

func outboundToResponse(row models.Outbound) OutboundResponse {
	return OutboundResponse{
		ID:          row.ID,
		Product:     row.Product,
		TotalWeight: row.TotalWeight,
		NoOfTrays:   row.NoOfTrays,
		Quantity:    row.Quantity,
		BuyerName:   row.BuyerName,
		CreatedAt:   row.CreatedAt.Format(time.RFC3339),
	}
}

// POST /api/outbound
func CreateOutboundHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateOutboundRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Product = strings.TrimSpace(body.Product)
		if body.Product == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Product is required")
		}

		row := models.Outbound{
			Product:     body.Product,
			TotalWeight: body.TotalWeight,
			NoOfTrays:   body.NoOfTrays,
			Quantity:    billing.Quantity(body.TotalWeight, body.NoOfTrays),
			BuyerName:   strings.TrimSpace(body.BuyerName),
		}

		if err := database.DB.Create(&row).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not save outbound entry")
		}

		if userID, username, err := auth.SessionUser(c); err == nil {
			if logErr := audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				Username:    username,
				EntityType:  "outbound",
				EntityID:    row.ID,
				Description: fmt.Sprintf("Outbound: %.2f of %s", row.Quantity, row.Product),
				Data:        outboundToResponse(row),
			}); logErr != nil {
				zap.L().Warn("audit write failed", zap.Error(logErr))
			}
		}

		return c.Status(fiber.StatusCreated).JSON(outboundToResponse(row))
	}
}

// GET /api/outbound
func ListOutboundHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rows []models.Outbound
		if err := database.DB.Order("created_at desc").Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not fetch outbound entries")
		}

		out := make([]OutboundResponse, 0, len(rows))
		for _, row := range rows {
			out = append(out, outboundToResponse(row))
		}
		return c.JSON(out)
	}
}
