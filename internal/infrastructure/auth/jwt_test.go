package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/onuroner/pk-vkf/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-that-is-long-enough-for-hs256"

func testConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:   testSecret,
		Issuer:   "vk-identity",
		Audience: "vk-bank-api",
	}
}

func signToken(t *testing.T, secret string, mutate func(*Claims)) string {
	t.Helper()
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    "vk-identity",
			Audience:  jwt.ClaimStrings{"vk-bank-api"},
			Subject:   uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID:   uuid.New().String(),
		Username: "teller",
		Roles:    []string{"transfers:write"},
	}
	if mutate != nil {
		mutate(claims)
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestJWTService_ValidateToken(t *testing.T) {
	service := NewJWTService(testConfig())

	t.Run("accepts a valid token", func(t *testing.T) {
		token := signToken(t, testSecret, nil)

		claims, err := service.ValidateToken(token)

		require.NoError(t, err)
		assert.NotEmpty(t, claims.UserID)
		assert.Equal(t, "teller", claims.Username)
		assert.Equal(t, []string{"transfers:write"}, claims.Roles)
	})

	t.Run("rejects a token signed with the wrong secret", func(t *testing.T) {
		token := signToken(t, "completely-different-secret-value", nil)

		_, err := service.ValidateToken(token)

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		token := signToken(t, testSecret, func(c *Claims) {
			c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
		})

		_, err := service.ValidateToken(token)

		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("rejects a token that is not yet valid", func(t *testing.T) {
		token := signToken(t, testSecret, func(c *Claims) {
			c.NotBefore = jwt.NewNumericDate(time.Now().Add(time.Hour))
		})

		_, err := service.ValidateToken(token)

		assert.ErrorIs(t, err, ErrTokenNotYetValid)
	})

	t.Run("rejects a token with the wrong issuer", func(t *testing.T) {
		token := signToken(t, testSecret, func(c *Claims) {
			c.Issuer = "someone-else"
		})

		_, err := service.ValidateToken(token)

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects a token with the wrong audience", func(t *testing.T) {
		token := signToken(t, testSecret, func(c *Claims) {
			c.Audience = jwt.ClaimStrings{"another-api"}
		})

		_, err := service.ValidateToken(token)

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects a token without a user id", func(t *testing.T) {
		token := signToken(t, testSecret, func(c *Claims) {
			c.UserID = ""
		})

		_, err := service.ValidateToken(token)

		assert.ErrorIs(t, err, ErrMissingUserID)
	})

	t.Run("rejects garbage input", func(t *testing.T) {
		_, err := service.ValidateToken("not.a.token")

		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
