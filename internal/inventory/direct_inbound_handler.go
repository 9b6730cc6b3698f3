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

type CreateDirectInboundRequest struct {
	Name        string  `json:"name"`
	WholeWeight float64 `json:"whole_weight"`
	NoOfTrays   int     `json:"no_of_trays"`
	SellerName  string  `json:"seller_name"` // optional
}

type DirectInboundResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	WholeWeight float64 `json:"whole_weight"`
	NoOfTrays   int     `json:"no_of_trays"`
	Quantity    float64 `json:"quantity"`
	SellerName  string  `json:"seller_name"`
	CreatedAt   string  `json:"created_at"`
}

func inboundToResponse(row models.DirectInbound) DirectInboundResponse {
	return DirectInboundResponse{
		ID:          row.ID,
		Name:        row.Name,
		WholeWeight: row.WholeWeight,
		NoOfTrays:   row.NoOfTrays,
		Quantity:    row.Quantity,
		SellerName:  row.SellerName,
		CreatedAt:   row.CreatedAt.Format(time.RFC3339),
	}
}

// POST /api/direct-inbound
func CreateDirectInboundHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateDirectInboundRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name is required")
		}

		row := models.DirectInbound{
			Name:        body.Name,
			WholeWeight: body.WholeWeight,
			NoOfTrays:   body.NoOfTrays,
			Quantity:    billing.Quantity(body.WholeWeight, body.NoOfTrays),
			SellerName:  strings.TrimSpace(body.SellerName),
		}

		if err := database.DB.Create(&row).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not save inbound entry")
		}

		if userID, username, err := auth.SessionUser(c); err == nil {
			if logErr := audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				Username:    username,
				EntityType:  "direct_inbound",
				EntityID:    row.ID,
				Description: fmt.Sprintf("Direct inbound: %.2f from %s", row.Quantity, row.Name),
				Data:        inboundToResponse(row),
			}); logErr != nil {
				zap.L().Warn("audit write failed", zap.Error(logErr))
			}
		}

		return c.Status(fiber.StatusCreated).JSON(inboundToResponse(row))
	}
}

// GET /api/direct-inbound
func ListDirectInboundHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rows []models.DirectInbound
		if err := database.DB.Order("created_at desc").Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not fetch inbound entries")
		}

		out := make([]DirectInboundResponse, 0, len(rows))
		for _, row := range rows {
			out = append(out, inboundToResponse(row))
		}
		return c.JSON(out)
	}
}
