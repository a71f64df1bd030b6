package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookface/config"
)

func TestTokenRoundTrip(t *testing.T) {
	config.Cfg = &config.Config{JWTSecret: "test-secret", SessionTTLHours: 1}

	token, err := GenerateToken("user-123")
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
}

func TestParseToken_RejectsTampering(t *testing.T) {
	config.Cfg = &config.Config{JWTSecret: "test-secret", SessionTTLHours: 1}

	token, err := GenerateToken("user-123")
	require.NoError(t, err)

	_, err = ParseToken(token + "x")
	assert.Error(t, err)

	config.Cfg.JWTSecret = "different-secret"
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	config.Cfg = &config.Config{JWTSecret: "test-secret", SessionTTLHours: 1}

	_, err := ParseToken("not-a-token")
	assert.Error(t, err)
}
