package database

import (
	"mandi-backend/internal/config"
	"mandi-backend/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		zap.L().Fatal("could not connect to database", zap.Error(err))
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.AuctionLine{},
		&models.AvailableStock{},
		&models.DirectInbound{},
		&models.Outbound{},
		&models.Employee{},
		&models.OutPending{},
		&models.GardenLedger{},
		&models.VehicleTrip{},
		&models.AuditLog{},
	)
	if err != nil {
		zap.L().Fatal("auto-migrate failed", zap.Error(err))
	}

	zap.L().Info("database connected, migration done")
}
