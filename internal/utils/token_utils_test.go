package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corebanc/bankledger_app/internal/utils"
)

func TestGenerateAndParseJWT(t *testing.T) {
	const (
		secret   = "test-secret"
		issuer   = "bankledger"
		audience = "bankledger-clients"
	)

	token, err := utils.GenerateJWT("client-1", "jo@example.com", secret, 5*time.Minute, issuer, audience)
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, secret, issuer, audience)
	require.NoError(t, err)
	assert.Equal(t, "client-1", claims.Subject)
	assert.Equal(t, issuer, claims.Issuer)
	assert.WithinDuration(t, time.Now().Add(5*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestParseAndValidateJWT_Failures(t *testing.T) {
	token, err := utils.GenerateJWT("client-1", "jo@example.com", "secret-a", 5*time.Minute, "iss", "aud")
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := utils.ParseAndValidateJWT(token, "secret-b", "iss", "aud")
		assert.Error(t, err)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		_, err := utils.ParseAndValidateJWT(token, "secret-a", "other", "aud")
		assert.Error(t, err)
	})

	t.Run("wrong audience", func(t *testing.T) {
		_, err := utils.ParseAndValidateJWT(token, "secret-a", "iss", "other")
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		expired, err := utils.GenerateJWT("client-1", "jo@example.com", "secret-a", -time.Minute, "iss", "aud")
		require.NoError(t, err)
		_, err = utils.ParseAndValidateJWT(expired, "secret-a", "iss", "aud")
		assert.Error(t, err)
	})
}
