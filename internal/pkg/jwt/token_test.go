package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yashpatel/fileportal/internal/pkg/models"
)

func testJWTConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "test-secret",
		Expiration: 60,
		Issuer:     "fileportal-test",
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := testJWTConfig()

	token, expiresAt, err := GenerateToken("ypatel@corp.example.com", models.LoginTypeSuperAdmin, cfg)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	claims, err := ValidateToken(token, cfg.Secret)
	assert.NoError(t, err)
	assert.Equal(t, "ypatel@corp.example.com", claims["login"])
	assert.Equal(t, models.LoginTypeSuperAdmin, claims["login_type"])
	assert.Equal(t, "fileportal-test", claims["iss"])
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := testJWTConfig()

	token, _, err := GenerateToken("ypatel@corp.example.com", models.LoginTypeUser, cfg)
	assert.NoError(t, err)

	_, err = ValidateToken(token, "other-secret")
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not-a-token", "test-secret")
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Expiration = -1

	token, _, err := GenerateToken("ypatel@corp.example.com", models.LoginTypeUser, cfg)
	assert.NoError(t, err)

	_, err = ValidateToken(token, cfg.Secret)
	assert.Error(t, err)
}
