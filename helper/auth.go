package helper

import (
	"errors"
	"fmt"
	"time"

	"ubwiza_rentals/config"
	"ubwiza_rentals/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	AccessTokenTTL  = 60 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// ErrMissingSecret guards against HS256 with an empty key, which would let
// anyone mint staff tokens.
var ErrMissingSecret = errors.New("JWT secret is not configured")

func jwtSecret() ([]byte, error) {
	if config.AppConfig.JWTSecret == "" {
		return nil, ErrMissingSecret
	}
	return []byte(config.AppConfig.JWTSecret), nil
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func generateToken(tokenClaim model.TokenClaim, kind string, ttl time.Duration) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = tokenClaim.Username
	claims["accountId"] = tokenClaim.AccountId
	claims["role"] = tokenClaim.Role
	claims["kind"] = kind
	claims["exp"] = time.Now().Add(ttl).Unix()

	secret, err := jwtSecret()
	if err != nil {
		return "", err
	}
	return token.SignedString(secret)
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	return generateToken(tokenClaim, "access", AccessTokenTTL)
}

func GenerateRefreshToken(tokenClaim model.TokenClaim) (string, error) {
	return generateToken(tokenClaim, "refresh", RefreshTokenTTL)
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret()
	})
}

// ClaimFromToken reads our claims out of a verified token.
func ClaimFromToken(token *jwt.Token) (model.TokenClaim, string, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}, "", errors.New("invalid claims")
	}
	accountID, ok := claims["accountId"].(float64)
	if !ok || accountID == 0 {
		return model.TokenClaim{}, "", errors.New("missing account id")
	}
	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)
	kind, _ := claims["kind"].(string)
	return model.TokenClaim{AccountId: uint(accountID), Username: username, Role: role}, kind, nil
}

// GetInfoAccountFromToken returns the claims stored by the auth middleware.
func GetInfoAccountFromToken(c *fiber.Ctx) (model.TokenClaim, bool) {
	claim, ok := c.Locals("account").(model.TokenClaim)
	return claim, ok
}
