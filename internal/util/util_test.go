package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("secret", 12, time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, uint(12), claims.UserID)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("secret", 1, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken("other", token)
	assert.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	token, err := GenerateToken("secret", 1, -time.Minute)
	require.NoError(t, err)

	// negative ttl falls back to the default lifetime
	claims, err := ParseToken("secret", token)
	require.NoError(t, err)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestVerifyPasswordBcrypt(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	assert.True(t, VerifyPassword(hash, "s3cret"))
	assert.False(t, VerifyPassword(hash, "wrong"))
}

func TestVerifyPasswordPlain(t *testing.T) {
	assert.True(t, VerifyPassword("letmein", "letmein"))
	assert.False(t, VerifyPassword("letmein", "letmeout"))
}
