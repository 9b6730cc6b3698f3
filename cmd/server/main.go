package main

import (
	"strings"

	"mandi-backend/internal/auction"
	"mandi-backend/internal/audit"
	"mandi-backend/internal/auth"
	"mandi-backend/internal/config"
	"mandi-backend/internal/database"
	"mandi-backend/internal/fleet"
	"mandi-backend/internal/garden"
	"mandi-backend/internal/inventory"
	"mandi-backend/internal/logger"
	"mandi-backend/internal/models"
	"mandi-backend/internal/payroll"
	"mandi-backend/internal/pending"
	"mandi-backend/internal/reports"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"
)

func main() {
	log := logger.Must(logger.New())
	defer log.Sync()
	zap.ReplaceGlobals(log)

	cfg := config.Load()
	database.Init(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Error("unexpected error", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Unexpected server error",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register-ceo", auth.RegisterCEOHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())
	protected.Get("/views", auth.ListViewsHandler())

	// Staff accounts (CEO only)
	protected.Post("/users", auth.RequireRole(models.RoleCEO), auth.CreateUserHandler())

	// Auction ledger + seller billing
	auctionRoutes := protected.Group("/auction", auth.RequireView(auth.ViewAuction))
	auctionRoutes.Post("/lines", auction.CreateAuctionLineHandler())
	auctionRoutes.Get("/lines", auction.ListAuctionLinesHandler())
	auctionRoutes.Get("/seller-bill", auction.SellerBillHandler())

	// Warehouse stock
	stockRoutes := protected.Group("/available-stock", auth.RequireView(auth.ViewAvailableStock))
	stockRoutes.Post("/", inventory.CreateAvailableStockHandler())
	stockRoutes.Get("/", inventory.ListAvailableStockHandler())

	// Direct inbound
	inboundRoutes := protected.Group("/direct-inbound", auth.RequireView(auth.ViewDirectInbound))
	inboundRoutes.Post("/", inventory.CreateDirectInboundHandler())
	inboundRoutes.Get("/", inventory.ListDirectInboundHandler())

	// Outbound
	outboundRoutes := protected.Group("/outbound", auth.RequireView(auth.ViewOutbound))
	outboundRoutes.Post("/", inventory.CreateOutboundHandler())
	outboundRoutes.Get("/", inventory.ListOutboundHandler())

	// Pending receivables
	pendingRoutes := protected.Group("/out-pending", auth.RequireView(auth.ViewOutPending))
	pendingRoutes.Post("/", pending.CreateOutPendingHandler())
	pendingRoutes.Get("/", pending.ListOutPendingHandler())

	// Garden procurement
	gardenRoutes := protected.Group("/garden-ledger", auth.RequireView(auth.ViewGardenLedger))
	gardenRoutes.Post("/", garden.CreateGardenLedgerHandler())
	gardenRoutes.Get("/", garden.ListGardenLedgerHandler())

	// Vehicles
	fleetRoutes := protected.Group("/vehicle-trips", auth.RequireView(auth.ViewVehicles))
	fleetRoutes.Post("/", fleet.CreateVehicleTripHandler())
	fleetRoutes.Get("/", fleet.ListVehicleTripsHandler())

	// Staff records
	employeeRoutes := protected.Group("/employees", auth.RequireView(auth.ViewEmployees))
	employeeRoutes.Post("/", payroll.CreateEmployeeHandler())
	employeeRoutes.Get("/", payroll.ListEmployeesHandler())

	// Reports
	reportRoutes := protected.Group("/reports", auth.RequireView(auth.ViewReports))
	reportRoutes.Get("/monthly", reports.MonthlyReportHandler())
	reportRoutes.Get("/seller-bill.xlsx", reports.SellerBillExportHandler())

	// Audit trail (CEO only)
	protected.Get("/audit-logs", auth.RequireRole(models.RoleCEO), audit.ListAuditLogsHandler())

	log.Info("server starting", zap.String("port", cfg.HTTPPort))
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
