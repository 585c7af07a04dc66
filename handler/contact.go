package handler

import (
	"ubwiza_rentals/constants"
	"ubwiza_rentals/model"
	"ubwiza_rentals/utils"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) SubmitContact(c *fiber.Ctx) error {
	input, ok := c.Locals("contactInput").(model.ContactInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, localsError("contactInput"))
	}

	msg, err := h.Contact.Submit(c.UserContext(), input)
	if err != nil {
		return respondError(c, err, "")
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"message":        constants.CONTACT_SUCCESS,
		"contactMessage": msg,
	})
}

func (h *Handler) ListMessages(c *fiber.Ctx) error {
	pagination, _ := c.Locals("pagination").(model.Pagination)
	messages, total, err := h.Contact.List(c.UserContext(), pagination)
	if err != nil {
		return respondError(c, err, "")
	}

	rows := make([]fiber.Map, 0, len(messages))
	for _, m := range messages {
		rows = append(rows, fiber.Map{
			"id":      m.ID,
			"name":    m.Name,
			"email":   m.Email,
			"message": m.Message,
			"preview": m.Preview(),
			"sentAt":  m.SentAt,
		})
	}
	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       rows,
		Limit:      pagination.Limit,
		Page:       pagination.Page,
		TotalCount: total,
	})
}
