package auth

import (
	"testing"

	"pharma-backend/internal/config"
	"pharma-backend/internal/models"
)

func testConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.ExpirationHours = 24
	cfg.JWT.Issuer = "pharma-backend"
	return cfg
}

func TestGenerateAndValidateToken(t *testing.T) {
	manager := NewJWTManager(testConfig("test-secret"))

	user := &models.User{
		ID:       42,
		Email:    "sales@example.com",
		Role:     "salesperson",
		IsActive: true,
	}

	token, err := manager.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := manager.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != 42 || claims.Email != "sales@example.com" || claims.Role != "salesperson" {
		t.Errorf("claims mismatch: %+v", claims)
	}
	if !claims.IsActive {
		t.Error("is_active claim lost")
	}
	if claims.Issuer != "pharma-backend" {
		t.Errorf("issuer = %q", claims.Issuer)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	manager := NewJWTManager(testConfig("secret-a"))
	other := NewJWTManager(testConfig("secret-b"))

	token, err := manager.GenerateToken(&models.User{ID: 1, Email: "a@b.c", Role: "admin", IsActive: true})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := other.ValidateToken(token); err == nil {
		t.Error("token signed with another secret must be rejected")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	manager := NewJWTManager(testConfig("test-secret"))
	if _, err := manager.ValidateToken("not.a.token"); err == nil {
		t.Error("garbage token must be rejected")
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "s3cret!" {
		t.Fatal("password stored in the clear")
	}
	if !VerifyPassword(hash, "s3cret!") {
		t.Error("correct password rejected")
	}
	if VerifyPassword(hash, "wrong") {
		t.Error("wrong password accepted")
	}
}
