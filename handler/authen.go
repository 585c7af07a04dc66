package handler

import (
	"errors"
	"time"

	"ubwiza_rentals/config"
	"ubwiza_rentals/constants"
	"ubwiza_rentals/helper"
	"ubwiza_rentals/model"
	"ubwiza_rentals/utils"

	"github.com/gofiber/fiber/v2"
)

func setAuthCookies(c *fiber.Ctx, access, refresh string) {
	secure := config.IsProduction()
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    access,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   secure,
		Path:     "/",
		Expires:  time.Now().Add(helper.AccessTokenTTL),
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   secure,
		Path:     "/",
		Expires:  time.Now().Add(helper.RefreshTokenTTL),
	})
}

func issueTokens(c *fiber.Ctx, account *model.Account) error {
	tokenClaim := model.TokenClaim{
		AccountId: account.ID,
		Username:  account.Username,
		Role:      account.Role,
	}
	token, err := helper.GenerateAccessToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	refreshToken, err := helper.GenerateRefreshToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	setAuthCookies(c, token, refreshToken)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"account": account,
		"tokens":  model.TokenData{AccessToken: token, RefreshToken: refreshToken},
	})
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var input model.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, err)
	}

	account, err := h.Accounts.GetByUsername(c.UserContext(), input.Username)
	if err != nil {
		if utils.IsNotFound(err) {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_USERNAME, errors.New("username not exists"))
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if !helper.CheckPasswordHash(input.Password, account.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_PASSWORD, errors.New("password does not match username"))
	}
	if !account.Active {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_ACTIVE, errors.New("active false"))
	}

	return issueTokens(c, account)
}

func (h *Handler) RefreshToken(c *fiber.Ctx) error {
	raw := c.Cookies("refresh_token")
	if raw == "" {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Missing refresh token", errors.New("no token"))
	}
	token, err := helper.ParseToken(raw)
	if err != nil || !token.Valid {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid refresh token", err)
	}
	claim, kind, err := helper.ClaimFromToken(token)
	if err != nil || kind != "refresh" {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid refresh token", err)
	}

	account, err := h.Accounts.GetByID(c.UserContext(), claim.AccountId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid refresh token", err)
	}
	if !account.Active {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_ACTIVE, errors.New("active false"))
	}
	return issueTokens(c, account)
}

func (h *Handler) Logout(c *fiber.Ctx) error {
	c.ClearCookie("access_token", "refresh_token")
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "logout success"})
}

func (h *Handler) Me(c *fiber.Ctx) error {
	claim, ok := helper.GetInfoAccountFromToken(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", errors.New("no account"))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, claim)
}
