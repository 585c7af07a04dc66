package handler

import (
	"errors"
	"time"

	"ubwiza_rentals/constants"
	"ubwiza_rentals/helper"
	"ubwiza_rentals/model"
	"ubwiza_rentals/utils"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) Dashboard(c *fiber.Ctx) error {
	d, err := h.Reports.Dashboard(c.UserContext())
	if err != nil {
		return respondError(c, err, "")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, d)
}

func (h *Handler) ListBookings(c *fiber.Ctx) error {
	filter, ok := c.Locals("bookingFilter").(model.BookingFilter)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, localsError("bookingFilter"))
	}
	bookings, total, err := h.Bookings.List(c.UserContext(), filter)
	if err != nil {
		return respondError(c, err, "")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       bookings,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	})
}

// GetBooking returns the booking with the confirmed bookings it clashes with.
func (h *Handler) GetBooking(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)
	b, err := h.Bookings.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, constants.BOOKING_NOT_FOUND)
	}
	conflicts, err := h.Checker.Conflicts(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, constants.BOOKING_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"booking":   b,
		"status":    b.Status(),
		"conflicts": conflicts,
	})
}

func (h *Handler) ConfirmBooking(c *fiber.Ctx) error {
	b, err := h.Bookings.Confirm(c.UserContext(), c.Locals("inputId").(uint))
	if err != nil {
		return respondError(c, err, constants.BOOKING_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, b)
}

func (h *Handler) UnconfirmBooking(c *fiber.Ctx) error {
	b, err := h.Bookings.Unconfirm(c.UserContext(), c.Locals("inputId").(uint))
	if err != nil {
		return respondError(c, err, constants.BOOKING_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, b)
}

func (h *Handler) ConfirmBookings(c *fiber.Ctx) error {
	ids := c.Locals("ids").(model.ArrayId)
	n, err := h.Bookings.ConfirmMany(c.UserContext(), ids.IDs)
	if err != nil {
		return respondError(c, err, "")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"updated": n})
}

// CancelBookings returns the selected bookings to pending.
func (h *Handler) CancelBookings(c *fiber.Ctx) error {
	ids := c.Locals("ids").(model.ArrayId)
	n, err := h.Bookings.UnconfirmMany(c.UserContext(), ids.IDs)
	if err != nil {
		return respondError(c, err, "")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"updated": n})
}

func (h *Handler) DeleteBooking(c *fiber.Ctx) error {
	if err := h.Bookings.Delete(c.UserContext(), c.Locals("inputId").(uint)); err != nil {
		return respondError(c, err, constants.BOOKING_NOT_FOUND)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) CreateRoom(c *fiber.Ctx) error {
	input := c.Locals("roomInput").(model.CreateRoomInput)
	room, err := h.Catalog.CreateRoom(c.UserContext(), input)
	if err != nil {
		return respondError(c, err, "")
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, room)
}

func (h *Handler) UpdateRoom(c *fiber.Ctx) error {
	input := c.Locals("roomUpdate").(model.UpdateRoomInput)
	room, err := h.Catalog.UpdateRoom(c.UserContext(), c.Locals("inputId").(uint), input)
	if err != nil {
		return respondError(c, err, constants.ROOM_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, room)
}

func (h *Handler) DeleteRoom(c *fiber.Ctx) error {
	if err := h.Catalog.DeleteRoom(c.UserContext(), c.Locals("inputId").(uint)); err != nil {
		return respondError(c, err, constants.ROOM_NOT_FOUND)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) AddGalleryImage(c *fiber.Ctx) error {
	input := c.Locals("galleryInput").(model.CreateGalleryImageInput)
	image, err := h.Catalog.AddGalleryImage(c.UserContext(), input)
	if err != nil {
		return respondError(c, err, "")
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, image)
}

func (h *Handler) DeleteGalleryImage(c *fiber.Ctx) error {
	if err := h.Catalog.DeleteGalleryImage(c.UserContext(), c.Locals("inputId").(uint)); err != nil {
		return respondError(c, err, constants.IMAGE_NOT_FOUND)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) ListApartments(c *fiber.Ctx) error {
	apartments, err := h.Catalog.ListApartments(c.UserContext())
	if err != nil {
		return respondError(c, err, "")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, apartments)
}

func (h *Handler) CreateApartment(c *fiber.Ctx) error {
	input := c.Locals("apartmentInput").(model.ApartmentInput)
	apartment, err := h.Catalog.CreateApartment(c.UserContext(), input)
	if err != nil {
		return respondError(c, err, "")
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, apartment)
}

func (h *Handler) UpdateApartment(c *fiber.Ctx) error {
	input := c.Locals("apartmentInput").(model.ApartmentInput)
	apartment, err := h.Catalog.UpdateApartment(c.UserContext(), c.Locals("inputId").(uint), input)
	if err != nil {
		return respondError(c, err, constants.APARTMENT_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, apartment)
}

func (h *Handler) DeleteApartment(c *fiber.Ctx) error {
	if err := h.Catalog.DeleteApartment(c.UserContext(), c.Locals("inputId").(uint)); err != nil {
		return respondError(c, err, constants.APARTMENT_NOT_FOUND)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) CloudinarySignature(c *fiber.Ctx) error {
	if h.Cloudinary == nil {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, "Image uploads are not configured", errors.New("cloudinary disabled"))
	}
	sig, err := helper.SignUpload(h.Cloudinary, helper.UploadFolder, time.Now())
	if err != nil {
		return respondError(c, err, "")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, sig)
}
