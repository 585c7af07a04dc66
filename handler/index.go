package handler

import (
	"errors"

	"ubwiza_rentals/constants"
	"ubwiza_rentals/database"
	"ubwiza_rentals/service/booking"
	"ubwiza_rentals/service/catalog"
	"ubwiza_rentals/service/contact"
	"ubwiza_rentals/service/notification"
	"ubwiza_rentals/service/report"
	"ubwiza_rentals/utils"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Handler struct {
	Bookings booking.BookingService
	Checker  booking.AvailabilityChecker
	Catalog  catalog.CatalogService
	Contact  contact.ContactService
	Reports  report.ReportService
	Accounts database.AccountRepository
	// Feed and Cloudinary may be nil; their endpoints then report the feature as disabled.
	Feed       *notification.Feed
	Cloudinary *cloudinary.Cloudinary
}

// respondError maps service errors onto the JSON envelopes.
func respondError(c *fiber.Ctx, err error, notFoundMessage string) error {
	if ve, ok := utils.AsValidationError(err); ok {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, ve.Message, ve, ve.Field)
	}
	if utils.IsNotFound(err) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, notFoundMessage, err)
	}
	utils.GetLogger().Error("request failed", zap.String("path", c.Path()), zap.Error(err))
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
}

func localsError(key string) error {
	return errors.New("missing request data: " + key)
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"ok": true})
}
