package database

import (
	"fmt"

	"ubwiza_rentals/config"
	"ubwiza_rentals/model"
	"ubwiza_rentals/utils"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	logger := utils.GetLogger()
	cfg := config.AppConfig

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}
	logger.Info("Connection opened to database", zap.String("host", cfg.DBHost), zap.String("db", cfg.DBName))

	if err := DB.AutoMigrate(
		&model.Account{},
		&model.Room{},
		&model.Booking{},
		&model.ContactMessage{},
		&model.GalleryImage{},
		&model.Apartment{},
	); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}
	logger.Info("Database migrated")

	SeedData(DB)
}

// notFound turns gorm's miss into the shared sentinel.
func notFound(err error, what string, id any) error {
	if err == gorm.ErrRecordNotFound {
		return fmt.Errorf("%s %v: %w", what, id, utils.ErrNotFound)
	}
	return err
}
