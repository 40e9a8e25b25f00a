package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)

	token, err := tm.GenerateAccessToken("u1", "ann@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := tm.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "u1", claims.UID)
	assert.Equal(t, "ann@example.com", claims.Email)
	assert.Equal(t, "renthub-auth", claims.Issuer)
}

func TestTokenManager_ExpiredToken(t *testing.T) {
	tm := NewTokenManager(testSecret, -time.Minute)
	// ttl <= 0 falls back to an hour, so force expiry with a manager
	// whose clock already passed.
	short := &tokenManager{secret: []byte(testSecret), ttl: -time.Minute}

	token, err := short.GenerateAccessToken("u1", "")
	assert.NoError(t, err)

	_, err = short.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)

	// The public constructor never issues pre-expired tokens.
	token, err = tm.GenerateAccessToken("u1", "")
	assert.NoError(t, err)
	_, err = tm.ValidateToken(token)
	assert.NoError(t, err)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)
	other := NewTokenManager("another-secret-that-is-32-bytes!", time.Hour)

	token, err := tm.GenerateAccessToken("u1", "")
	assert.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_Garbage(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)
	_, err := tm.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
