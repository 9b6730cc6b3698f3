package payroll

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

type CreateEmployeeRequest struct {
	Name         string  `json:"name"`
	PerDaySalary float64 `json:"perday_salary"`
	DaysWorked   int     `json:"days_worked"`
	Advance      float64 `json:"advance"` // optional
}

type EmployeeResponse struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	PerDaySalary float64 `json:"perday_salary"`
	DaysWorked   int     `json:"days_worked"`
	Advance      float64 `json:"advance"`
	CreatedAt    string  `json:"created_at"`
}

func toResponse(row models.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           row.ID,
		Name:         row.Name,
		PerDaySalary: row.PerDaySalary,
		DaysWorked:   row.DaysWorked,
		Advance:      row.Advance,
		CreatedAt:    row.CreatedAt.Format(time.RFC3339),
	}
}

// POST /api/employees
// Wage settlement happens off-system; only the inputs are recorded here.
func CreateEmployeeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateEmployeeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Employee name is required")
		}
		if body.PerDaySalary < 0 || body.DaysWorked < 0 || body.Advance < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Salary, days worked and advance cannot be negative")
		}

		row := models.Employee{
			Name:         body.Name,
			PerDaySalary: body.PerDaySalary,
			DaysWorked:   body.DaysWorked,
			Advance:      body.Advance,
		}

		if err := database.DB.Create(&row).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not save employee")
		}

		if userID, username, err := auth.SessionUser(c); err == nil {
			if logErr := audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				Username:    username,
				EntityType:  "employee",
				EntityID:    row.ID,
				Description: fmt.Sprintf("Employee added: %s", row.Name),
				Data:        toResponse(row),
			}); logErr != nil {
				zap.L().Warn("audit write failed", zap.Error(logErr))
			}
		}

		return c.Status(fiber.StatusCreated).JSON(toResponse(row))
	}
}

// GET /api/employees
func ListEmployeesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rows []models.Employee
		if err := database.DB.Order("id desc").Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not fetch employees")
		}

		out := make([]EmployeeResponse, 0, len(rows))
		for _, row := range rows {
			out = append(out, toResponse(row))
		}
		return c.JSON(out)
	}
}
