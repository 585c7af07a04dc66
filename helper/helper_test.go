package helper

import (
	"context"
	"errors"
	"testing"
	"time"

	"ubwiza_rentals/config"
	"ubwiza_rentals/model"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/golang-jwt/jwt/v5"
)

func TestTokenRoundTrip(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	claim := model.TokenClaim{AccountId: 7, Username: "admin", Role: "ADMIN"}

	access, err := GenerateAccessToken(claim)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	token, err := ParseToken(access)
	if err != nil || !token.Valid {
		t.Fatalf("ParseToken: %v", err)
	}
	got, kind, err := ClaimFromToken(token)
	if err != nil {
		t.Fatalf("ClaimFromToken: %v", err)
	}
	if got != claim || kind != "access" {
		t.Errorf("claim = %+v kind = %q", got, kind)
	}

	refresh, _ := GenerateRefreshToken(claim)
	token, _ = ParseToken(refresh)
	if _, kind, _ := ClaimFromToken(token); kind != "refresh" {
		t.Errorf("refresh kind = %q", kind)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	config.AppConfig.JWTSecret = "one"
	signed, _ := GenerateAccessToken(model.TokenClaim{AccountId: 1})
	config.AppConfig.JWTSecret = "two"
	if _, err := ParseToken(signed); err == nil {
		t.Fatal("token signed with another secret was accepted")
	}
}

func TestEmptySecretIsRefused(t *testing.T) {
	config.AppConfig.JWTSecret = ""
	t.Cleanup(func() { config.AppConfig.JWTSecret = "test-secret" })

	if _, err := GenerateAccessToken(model.TokenClaim{AccountId: 1}); !errors.Is(err, ErrMissingSecret) {
		t.Fatalf("GenerateAccessToken err = %v, want ErrMissingSecret", err)
	}

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"accountId": 1, "kind": "access"}).SignedString([]byte(""))
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}
	if _, err := ParseToken(forged); err == nil {
		t.Fatal("token signed with an empty key was accepted")
	}
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !CheckPasswordHash("s3cret", hash) || CheckPasswordHash("wrong", hash) {
		t.Error("CheckPasswordHash mismatch")
	}
}

func TestGenerateUniqueSlug(t *testing.T) {
	taken := map[string]bool{"family-suite": true, "family-suite-1": true}
	exists := func(_ context.Context, s string) (bool, error) { return taken[s], nil }

	got, err := GenerateUniqueSlug(context.Background(), "Family Suite", exists)
	if err != nil {
		t.Fatalf("GenerateUniqueSlug: %v", err)
	}
	if got != "family-suite-2" {
		t.Errorf("slug = %q, want family-suite-2", got)
	}
}

func TestSignUpload(t *testing.T) {
	cld, err := cloudinary.NewFromParams("demo", "1234", "abcd")
	if err != nil {
		t.Fatalf("NewFromParams: %v", err)
	}
	now := time.Unix(1700000000, 0)
	sig, err := SignUpload(cld, UploadFolder, now)
	if err != nil {
		t.Fatalf("SignUpload: %v", err)
	}
	if sig.CloudName != "demo" || sig.APIKey != "1234" || sig.Timestamp != 1700000000 || sig.Folder != UploadFolder {
		t.Errorf("signature = %+v", sig)
	}
	if len(sig.Signature) == 0 {
		t.Error("empty signature")
	}

	again, _ := SignUpload(cld, UploadFolder, now)
	if again.Signature != sig.Signature {
		t.Error("signature is not deterministic")
	}
}
