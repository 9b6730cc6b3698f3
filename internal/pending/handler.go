package pending

import (
	"fmt"
	"strings"
	"time"

	"mandi-backend/internal/audit"
	"mandi-backend/internal/auth"
	"mandi-backend/internal/database"
	"mandi-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CreateOutPendingRequest struct {
	Name          string  `json:"name"`
	AmountPending float64 `json:"amount_pending"`
	LastPurchase  string  `json:"last_purchase"` // optional
}

type OutPendingResponse struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	AmountPending float64 `json:"amount_pending"`
	LastPurchase  string  `json:"last_purchase"`
	CreatedAt     string  `json:"created_at"`
}

func toResponse(row models.OutPending) OutPendingResponse {
	return OutPendingResponse{
		ID:            row.ID,
		Name:          row.Name,
		AmountPending: row.AmountPending,
		LastPurchase:  row.LastPurchase,
		CreatedAt:     row.CreatedAt.Format(time.RFC3339),
	}
}

// POST /api/out-pending
func CreateOutPendingHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateOutPendingRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name is required")
		}

		row := models.OutPending{
			Name:          body.Name,
			AmountPending: body.AmountPending,
			LastPurchase:  strings.TrimSpace(body.LastPurchase),
		}

		if err := database.DB.Create(&row).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not save pending entry")
		}

		if userID, username, err := auth.SessionUser(c); err == nil {
			if logErr := audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				Username:    username,
				EntityType:  "out_pending",
				EntityID:    row.ID,
				Description: fmt.Sprintf("Pending: %.2f against %s", row.AmountPending, row.Name),
				Data:        toResponse(row),
			}); logErr != nil {
				zap.L().Warn("audit write failed", zap.Error(logErr))
			}
		}

		return c.Status(fiber.StatusCreated).JSON(toResponse(row))
	}
}

// GET /api/out-pending
func ListOutPendingHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rows []models.OutPending
		if err := database.DB.Order("created_at desc").Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not fetch pending entries")
		}

		out := make([]OutPendingResponse, 0, len(rows))
		for _, row := range rows {
			out = append(out, toResponse(row))
		}
		return c.JSON(out)
	}
}
