package handler

import (
	"fmt"

	"ubwiza_rentals/constants"
	"ubwiza_rentals/model"
	"ubwiza_rentals/utils"

	"github.com/gofiber/fiber/v2"
)

const qrSize = 256

func (h *Handler) SubmitBooking(c *fiber.Ctx) error {
	input, ok := c.Locals("bookingInput").(model.BookingInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, localsError("bookingInput"))
	}

	result, err := h.Bookings.Submit(c.UserContext(), input)
	if err != nil {
		return respondError(c, err, constants.ROOM_NOT_FOUND)
	}

	message := fmt.Sprintf("Booking request submitted successfully! We will contact you at %s within 24 hours to confirm.", result.Booking.Email)
	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"booking":       result.Booking,
		"nights":        result.Nights,
		"months":        result.Months,
		"estimatedCost": result.EstimatedCost,
		"currency":      constants.CURRENCY,
		"message":       message,
		"redirect":      "/booking/success/" + result.Booking.Reference,
	})
}

func (h *Handler) BookingSuccess(c *fiber.Ctx) error {
	b, err := h.Bookings.GetByReference(c.UserContext(), c.Params("reference"))
	if err != nil {
		return respondError(c, err, constants.BOOKING_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"booking": b,
		"status":  b.Status(),
	})
}

func (h *Handler) BookingQR(c *fiber.Ctx) error {
	b, err := h.Bookings.GetByReference(c.UserContext(), c.Params("reference"))
	if err != nil {
		return respondError(c, err, constants.BOOKING_NOT_FOUND)
	}
	png, err := utils.BookingQRCode(b.Reference, qrSize)
	if err != nil {
		return respondError(c, err, "")
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

// CheckAvailability answers with the bare {available, message} object the booking form expects.
func (h *Handler) CheckAvailability(c *fiber.Ctx) error {
	q, ok := c.Locals("availability").(model.AvailabilityCheck)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": constants.INVALID_REQUEST})
	}

	result, err := h.Checker.IsAvailable(c.UserContext(), q.RoomID, q.CheckIn, q.CheckOut)
	if err != nil {
		if ve, ok := utils.AsValidationError(err); ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ve.Message})
		}
		if utils.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": constants.ROOM_NOT_FOUND})
		}
		return respondError(c, err, "")
	}
	return c.JSON(result)
}

func (h *Handler) BookingReport(c *fiber.Ctx) error {
	r, err := h.Reports.BookingReport(c.UserContext())
	if err != nil {
		return respondError(c, err, "")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, r)
}
