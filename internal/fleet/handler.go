package fleet

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

type CreateVehicleTripRequest struct {
	VehicleNumber string  `json:"vehicle_number"`
	Route         string  `json:"route"`
	TripCharge    float64 `json:"trip_charge"`
}

type VehicleTripResponse struct {
	ID            uint    `json:"id"`
	VehicleNumber string  `json:"vehicle_number"`
	Route         string  `json:"route"`
	TripCharge    float64 `json:"trip_charge"`
	CreatedAt     string  `json:"created_at"`
}

func toResponse(row models.VehicleTrip) VehicleTripResponse {
	return VehicleTripResponse{
		ID:            row.ID,
		VehicleNumber: row.VehicleNumber,
		Route:         row.Route,
		TripCharge:    row.TripCharge,
		CreatedAt:     row.CreatedAt.Format(time.RFC3339),
	}
}

// POST /api/vehicle-trips
func CreateVehicleTripHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateVehicleTripRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.VehicleNumber = strings.TrimSpace(body.VehicleNumber)
		if body.VehicleNumber == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Vehicle number is required")
		}

		row := models.VehicleTrip{
			VehicleNumber: body.VehicleNumber,
			Route:         strings.TrimSpace(body.Route),
			TripCharge:    body.TripCharge,
		}

		if err := database.DB.Create(&row).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not save trip")
		}

		if userID, username, err := auth.SessionUser(c); err == nil {
			if logErr := audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				Username:    username,
				EntityType:  "vehicle_trip",
				EntityID:    row.ID,
				Description: fmt.Sprintf("Trip by %s: %.2f", row.VehicleNumber, row.TripCharge),
				Data:        toResponse(row),
			}); logErr != nil {
				zap.L().Warn("audit write failed", zap.Error(logErr))
			}
		}

		return c.Status(fiber.StatusCreated).JSON(toResponse(row))
	}
}

// GET /api/vehicle-trips
func ListVehicleTripsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rows []models.VehicleTrip
		if err := database.DB.Order("created_at desc").Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not fetch trips")
		}

		out := make([]VehicleTripResponse, 0, len(rows))
		for _, row := range rows {
			out = append(out, toResponse(row))
		}
		return c.JSON(out)
	}
}
