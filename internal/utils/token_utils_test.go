package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseAccessToken(t *testing.T) {
	token, err := GenerateAccessToken("alice", "s3cret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseAccessToken(token, "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, AccessTokenIssuer, claims.Issuer)
}

func TestParseAccessToken_Failures(t *testing.T) {
	expired, err := GenerateAccessToken("alice", "s3cret", -time.Minute)
	require.NoError(t, err)
	_, err = ParseAccessToken(expired, "s3cret")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	valid, err := GenerateAccessToken("alice", "s3cret", time.Hour)
	require.NoError(t, err)
	_, err = ParseAccessToken(valid, "other")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestGenerateAccessToken_EmptySecret(t *testing.T) {
	_, err := GenerateAccessToken("alice", "", time.Hour)
	assert.Error(t, err)
}
