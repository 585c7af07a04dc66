package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ubwiza_rentals/config"
	"ubwiza_rentals/database"
	"ubwiza_rentals/handler"
	"ubwiza_rentals/helper"
	"ubwiza_rentals/middleware"
	"ubwiza_rentals/router"
	"ubwiza_rentals/service/booking"
	"ubwiza_rentals/service/catalog"
	"ubwiza_rentals/service/contact"
	"ubwiza_rentals/service/notification"
	"ubwiza_rentals/service/report"
	"ubwiza_rentals/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	database.ConnectDB()
	redisClient := database.ConnectRedis()
	repos := database.NewRepositories()

	gateway := notification.NewGatewayFromConfig(logger)
	dispatcher := notification.NewDispatcher(gateway, logger)
	feed := notification.NewFeed(redisClient)
	operator := config.AppConfig.ContactEmail

	cld, err := helper.InitCloudinary()
	if err != nil {
		logger.Fatal("Cloudinary init failed", zap.Error(err))
	}

	reports := report.NewReportService(repos, dispatcher, operator)
	h := &handler.Handler{
		Bookings:   booking.NewBookingService(repos.Rooms, repos.Bookings, dispatcher, feed),
		Checker:    booking.NewChecker(repos.Rooms, repos.Bookings),
		Catalog:    catalog.NewCatalogService(repos, catalog.NewRoomCache(redisClient, config.AppConfig.RoomCacheTTL, logger)),
		Contact:    contact.NewContactService(repos.Messages, dispatcher, operator),
		Reports:    reports,
		Accounts:   repos.Accounts,
		Feed:       feed,
		Cloudinary: cld,
	}

	scheduler, err := helper.StartDailyScheduler("pending-booking-digest", config.AppConfig.DigestHour, config.Location(), func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := reports.SendPendingDigest(ctx); err != nil {
			logger.Error("pending booking digest failed", zap.Error(err))
		}
	})
	if err != nil {
		logger.Fatal("failed to start scheduler", zap.Error(err))
	}

	app := fiber.New(router.AppConfig())
	app.Use(recover.New())
	app.Use(middleware.RequestLogger(logger))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.AppConfig.CorsOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept, X-Requested-With",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	router.SetupRoutes(app, h)

	go func() {
		if err := app.Listen(":" + config.AppConfig.AppPort); err != nil {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	if err := scheduler.Shutdown(); err != nil {
		logger.Error("scheduler shutdown", zap.Error(err))
	}
	dispatcher.Wait()
	if redisClient != nil {
		_ = redisClient.Close()
	}
}
