package validate

import (
	"strconv"
	"strings"

	"ubwiza_rentals/constants"
	"ubwiza_rentals/model"
	"ubwiza_rentals/utils"

	"github.com/gofiber/fiber/v2"
)

func parseOptionalDate(field, value string) (utils.CustomDate, error) {
	if value == "" {
		return utils.CustomDate{}, nil
	}
	d, err := utils.ParseDate(value)
	if err != nil {
		return utils.CustomDate{}, utils.NewValidationError(field, "Enter a valid date.")
	}
	return d, nil
}

// parseOptionalNumber leaves an empty value at zero for the required check.
func parseOptionalNumber(field string, value model.FormNumber, message string) (uint64, error) {
	raw := strings.TrimSpace(string(value))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, utils.NewValidationError(field, message)
	}
	return n, nil
}

// Booking parses the booking form (urlencoded or JSON) into Locals("bookingInput").
func Booking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.BookingRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.BOOKING_FORM_ERROR, err)
		}

		roomID, err := parseOptionalNumber("room", req.Room, "Select a valid choice. That choice is not one of the available choices.")
		if err != nil {
			return validationResponse(c, err)
		}
		guests, err := parseOptionalNumber("guests", req.Guests, "Enter a whole number.")
		if err != nil {
			return validationResponse(c, err)
		}
		checkIn, err := parseOptionalDate("check_in", req.CheckIn)
		if err != nil {
			return validationResponse(c, err)
		}
		checkOut, err := parseOptionalDate("check_out", req.CheckOut)
		if err != nil {
			return validationResponse(c, err)
		}

		// The input outlives the request (the guest email is sent afterwards),
		// so it must not share fiber's pooled buffers.
		c.Locals("bookingInput", model.BookingInput{
			RoomID:   uint(roomID),
			Name:     strings.Clone(req.Name),
			Email:    strings.Clone(req.Email),
			Phone:    strings.Clone(req.Phone),
			CheckIn:  checkIn,
			CheckOut: checkOut,
			Guests:   int(guests),
		})
		return c.Next()
	}
}

// Availability parses check_in, check_out and room_id. Missing values answer
// {"error":"Invalid request"}, unparseable dates {"error":"Invalid date format"}.
func Availability() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var q model.AvailabilityQuery
		if err := c.QueryParser(&q); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": constants.INVALID_REQUEST})
		}
		if q.CheckIn == "" || q.CheckOut == "" || q.RoomID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": constants.INVALID_REQUEST})
		}

		checkIn, errIn := utils.ParseDate(q.CheckIn)
		checkOut, errOut := utils.ParseDate(q.CheckOut)
		if errIn != nil || errOut != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": constants.INVALID_DATE_FORMAT})
		}
		roomID, err := strconv.ParseUint(q.RoomID, 10, 64)
		if err != nil || roomID == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": constants.INVALID_REQUEST})
		}

		c.Locals("availability", model.AvailabilityCheck{
			RoomID:   uint(roomID),
			CheckIn:  checkIn,
			CheckOut: checkOut,
		})
		return c.Next()
	}
}

// RoomPreselect reads the optional ?room= used to preselect a room on the booking form.
func RoomPreselect() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Query("room")
		// A malformed value is ignored, as on the public form.
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			c.Locals("preselect", uint(id))
		}
		return c.Next()
	}
}
