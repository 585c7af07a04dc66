package handler

import (
	"ubwiza_rentals/config"
	"ubwiza_rentals/constants"
	"ubwiza_rentals/model"
	"ubwiza_rentals/utils"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) Home(c *fiber.Ctx) error {
	page, err := h.Catalog.Home(c.UserContext())
	if err != nil {
		return respondError(c, err, "")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, page)
}

func (h *Handler) Rooms(c *fiber.Ctx) error {
	filter, ok := c.Locals("roomFilter").(model.RoomFilter)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, localsError("roomFilter"))
	}
	rooms, err := h.Catalog.ListRooms(c.UserContext(), filter)
	if err != nil {
		return respondError(c, err, "")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"rooms":         rooms,
		"roomTypes":     model.RoomTypeOptions(),
		"selectedType":  filter.Type,
		"selectedPrice": filter.Price,
	})
}

func (h *Handler) RoomDetail(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)
	detail, err := h.Catalog.RoomDetail(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, constants.ROOM_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, detail)
}

func (h *Handler) Gallery(c *fiber.Ctx) error {
	images, err := h.Catalog.ListGallery(c.UserContext(), 0)
	if err != nil {
		return respondError(c, err, "")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"galleryImages": images})
}

func (h *Handler) About(c *fiber.Ctx) error {
	page, err := h.Catalog.About(c.UserContext())
	if err != nil {
		return respondError(c, err, "")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, page)
}

func (h *Handler) BookingForm(c *fiber.Ctx) error {
	var preselect *uint
	if id, ok := c.Locals("preselect").(uint); ok {
		preselect = &id
	}
	page, err := h.Catalog.BookingForm(c.UserContext(), preselect)
	if err != nil {
		return respondError(c, err, "")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, page)
}

func (h *Handler) ContactForm(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"businessName":  constants.BUSINESS_NAME,
		"businessPhone": constants.BUSINESS_PHONE,
		"contactEmail":  config.AppConfig.ContactEmail,
	})
}
