package token

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	manager := NewManager("access-secret", "refresh-secret", time.Minute, time.Hour)
	userID := uuid.New()

	tokenString, err := manager.GenerateAccessToken(userID, "ana@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	claims, err := manager.ValidateAccessToken(tokenString)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
}

func TestAccessTokenRejectedByRefreshValidator(t *testing.T) {
	manager := NewManager("access-secret", "refresh-secret", time.Minute, time.Hour)

	accessToken, err := manager.GenerateAccessToken(uuid.New(), "ana@example.com")
	assert.NoError(t, err)

	_, err = manager.ValidateRefreshToken(accessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateWrongSecret(t *testing.T) {
	issuer := NewManager("secret-a", "secret-a", time.Minute, time.Hour)
	verifier := NewManager("secret-b", "secret-b", time.Minute, time.Hour)

	tokenString, err := issuer.GenerateAccessToken(uuid.New(), "ana@example.com")
	assert.NoError(t, err)

	_, err = verifier.ValidateAccessToken(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateExpiredToken(t *testing.T) {
	manager := NewManager("access-secret", "refresh-secret", -time.Minute, time.Hour)

	tokenString, err := manager.GenerateAccessToken(uuid.New(), "ana@example.com")
	assert.NoError(t, err)

	_, err = manager.ValidateAccessToken(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateGarbage(t *testing.T) {
	manager := NewManager("access-secret", "refresh-secret", time.Minute, time.Hour)

	_, err := manager.ValidateAccessToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
