package garden

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

type CreateGardenLedgerRequest struct {
	GardenName          string  `json:"garden_name"`
	AdvanceGiven        float64 `json:"advance_given"`
	TotalAmountProcured float64 `json:"total_amount_procured"`
}

type GardenLedgerResponse struct {
	ID                  uint    `json:"id"`
	GardenName          string  `json:"garden_name"`
	AdvanceGiven        float64 `json:"advance_given"`
	TotalAmountProcured float64 `json:"total_amount_procured"`
	CreatedAt           string  `json:"created_at"`
}

func toResponse(row models.GardenLedger) GardenLedgerResponse {
	return GardenLedgerResponse{
		ID:                  row.ID,
		GardenName:          row.GardenName,
		AdvanceGiven:        row.AdvanceGiven,
		TotalAmountProcured: row.TotalAmountProcured,
		CreatedAt:           row.CreatedAt.Format(time.RFC3339),
	}
}

// POST /api/garden-ledger
func CreateGardenLedgerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateGardenLedgerRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.GardenName = strings.TrimSpace(body.GardenName)
		if body.GardenName == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Garden name is required")
		}

		row := models.GardenLedger{
			GardenName:          body.GardenName,
			AdvanceGiven:        body.AdvanceGiven,
			TotalAmountProcured: body.TotalAmountProcured,
		}

		if err := database.DB.Create(&row).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not save garden entry")
		}

		if userID, username, err := auth.SessionUser(c); err == nil {
			if logErr := audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				Username:    username,
				EntityType:  "garden_ledger",
				EntityID:    row.ID,
				Description: fmt.Sprintf("Garden %s: advance %.2f, procured %.2f", row.GardenName, row.AdvanceGiven, row.TotalAmountProcured),
				Data:        toResponse(row),
			}); logErr != nil {
				zap.L().Warn("audit write failed", zap.Error(logErr))
			}
		}

		return c.Status(fiber.StatusCreated).JSON(toResponse(row))
	}
}

// GET /api/garden-ledger
func ListGardenLedgerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rows []models.GardenLedger
		if err := database.DB.Order("created_at desc").Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not fetch garden entries")
		}

		out := make([]GardenLedgerResponse, 0, len(rows))
		for _, row := range rows {
			out = append(out, toResponse(row))
		}
		return c.JSON(out)
	}
}
