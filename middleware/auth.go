package middleware

import (
	"errors"
	"strings"

	"ubwiza_rentals/constants"
	"ubwiza_rentals/database"
	"ubwiza_rentals/helper"
	"ubwiza_rentals/model"
	"ubwiza_rentals/utils"

	"github.com/gofiber/fiber/v2"
)

var (
	errNoToken      = errors.New("no token")
	errInvalidToken = errors.New("invalid token")
	errNotStaff     = errors.New("not staff")
)

func tokenFromRequest(c *fiber.Ctx) string {
	token := c.Cookies("access_token")
	if token == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			token = strings.TrimPrefix(auth, "Bearer ")
		}
	}
	return token
}

// authenticate resolves the caller to an active staff account.
func authenticate(c *fiber.Ctx, accounts database.AccountRepository) (model.TokenClaim, error) {
	raw := tokenFromRequest(c)
	if raw == "" {
		return model.TokenClaim{}, errNoToken
	}
	token, err := helper.ParseToken(raw)
	if err != nil || !token.Valid {
		return model.TokenClaim{}, errInvalidToken
	}
	claim, kind, err := helper.ClaimFromToken(token)
	if err != nil || kind != "access" {
		return model.TokenClaim{}, errInvalidToken
	}

	account, err := accounts.GetByID(c.UserContext(), claim.AccountId)
	if err != nil {
		if utils.IsNotFound(err) {
			return model.TokenClaim{}, errInvalidToken
		}
		return model.TokenClaim{}, err
	}
	if !account.Active || (account.Role != constants.ROLE_ADMIN && account.Role != constants.ROLE_STAFF) {
		return model.TokenClaim{}, errNotStaff
	}
	claim.Role = account.Role
	return claim, nil
}

// Protected guards the staff API: anything but an active staff token gets 401/403.
func Protected(accounts database.AccountRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claim, err := authenticate(c, accounts)
		switch {
		case err == nil:
		case errors.Is(err, errNoToken):
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Missing token", err)
		case errors.Is(err, errInvalidToken):
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", err)
		case errors.Is(err, errNotStaff):
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_STAFF, err)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		c.Locals("account", claim)
		return c.Next()
	}
}

// StaffOnly guards staff pages: non-staff visitors are sent to the home page.
func StaffOnly(accounts database.AccountRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claim, err := authenticate(c, accounts)
		if err != nil {
			return c.Redirect("/", fiber.StatusFound)
		}
		c.Locals("account", claim)
		return c.Next()
	}
}
