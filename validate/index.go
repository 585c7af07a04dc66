package validate

import (
	"errors"
	"fmt"
	"strconv"

	"ubwiza_rentals/constants"
	"ubwiza_rentals/model"
	"ubwiza_rentals/utils"

	"github.com/gofiber/fiber/v2"
)

// GetById parses a numeric route param into Locals("inputId") as uint.
func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		valueKey, err := strconv.ParseUint(c.Params(key), 10, 64)
		if err != nil || valueKey == 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		c.Locals("inputId", uint(valueKey))
		return c.Next()
	}
}

// BulkIds parses {"ids":[...]} into Locals("ids").
func BulkIds() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ArrayId
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := utils.ValidateStruct(input); err != nil {
			return validationResponse(c, err)
		}

		c.Locals("ids", input)
		return c.Next()
	}
}

// Body parses the request body into a T and stores it under key. Rule
// validation is left to the services.
func Body[T any](key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input T
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, fmt.Sprintf("%s: %s", constants.ERROR_INPUT, err.Error()), err)
		}

		c.Locals(key, input)
		return c.Next()
	}
}

// Query parses the query string into a T and stores it under key.
func Query[T any](key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input T
		if err := c.QueryParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals(key, input)
		return c.Next()
	}
}

func validationResponse(c *fiber.Ctx, err error) error {
	if ve, ok := utils.AsValidationError(err); ok {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, ve.Message, ve, ve.Field)
	}
	return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
}
