package sec_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/backlist/internal/platform/sec"
)

const testSecret = "0123456789abcdef0123456789abcdef"

/*
TestTokenService_RoundTrip signs a token and verifies it back.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service, err := sec.NewTokenService(testSecret, "backlist.test")
	require.NoError(t, err)

	token, issued, err := service.GenerateSessionToken("admin", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, issued.ID)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, issued.ID, claims.ID)
	assert.Equal(t, "admin", claims.Subject)
}

/*
TestTokenService_Rejects covers tampered, foreign and expired tokens.
*/
func TestTokenService_Rejects(t *testing.T) {
	service, err := sec.NewTokenService(testSecret, "backlist.test")
	require.NoError(t, err)

	other, err := sec.NewTokenService(strings.Repeat("x", 32), "backlist.test")
	require.NoError(t, err)

	foreign, _, err := other.GenerateSessionToken("admin", time.Hour)
	require.NoError(t, err)

	expired, _, err := service.GenerateSessionToken("admin", -time.Minute)
	require.NoError(t, err)

	valid, _, err := service.GenerateSessionToken("admin", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"foreign_secret", foreign},
		{"expired", expired},
		{"tampered", valid + "x"},
		{"garbage", "not.a.token"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.VerifyToken(tt.token)
			assert.Error(t, err)
		})
	}
}

/*
TestNewTokenService_WeakSecret refuses short signing keys.
*/
func TestNewTokenService_WeakSecret(t *testing.T) {
	_, err := sec.NewTokenService("short", "backlist.test")
	assert.ErrorIs(t, err, sec.ErrWeakSecret)
}

/*
TestPasswordHash verifies bcrypt hashing and comparison.
*/
func TestPasswordHash(t *testing.T) {
	hash, err := sec.HashPassword("lesen-ist-gut")
	require.NoError(t, err)

	assert.True(t, sec.CheckPasswordHash("lesen-ist-gut", hash))
	assert.False(t, sec.CheckPasswordHash("falsch", hash))
}
