package database

import (
	"ubwiza_rentals/config"
	"ubwiza_rentals/constants"
	"ubwiza_rentals/model"
	"ubwiza_rentals/utils"

	"github.com/gosimple/slug"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	logger := utils.GetLogger()

	if config.AppConfig.AdminPassword == "" {
		logger.Warn("ADMIN_PASSWORD not set, skipping admin account seed")
	} else {
		bytes, err := bcrypt.GenerateFromPassword([]byte(config.AppConfig.AdminPassword), 10)
		if err != nil {
			logger.Error("failed to hash admin password", zap.Error(err))
		} else {
			account := model.Account{
				Username: config.AppConfig.AdminUsername,
				Password: string(bytes),
				Active:   true,
				Role:     constants.ROLE_ADMIN,
			}
			// Only creates; an existing admin keeps its password.
			if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
				logger.Error("failed to seed account", zap.String("username", account.Username), zap.Error(err))
			}
		}
	}

	var roomCount int64
	if err := db.Model(&model.Room{}).Count(&roomCount).Error; err != nil || roomCount > 0 {
		return
	}

	rooms := []model.Room{
		{Title: "Garden Single", RoomType: model.RoomSingle, Price: 35000, Description: "Quiet single room facing the garden.", IsFeatured: true},
		{Title: "City View Double", RoomType: model.RoomDouble, Price: 65000, Description: "Double room with a view over Kigali.", IsFeatured: true},
		{Title: "Family Suite", RoomType: model.RoomSuite, Price: 120000, Description: "Two-bedroom suite with a kitchenette.", IsFeatured: true},
		{Title: "Standard Double", RoomType: model.RoomDouble, Price: 50000, Description: "Comfortable double room."},
	}
	for _, room := range rooms {
		room.Slug = slug.Make(room.Title)
		if err := db.Create(&room).Error; err != nil {
			logger.Error("failed to seed room", zap.String("title", room.Title), zap.Error(err))
		}
	}
	logger.Info("Seeded demo rooms", zap.Int("count", len(rooms)))
}
