package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims holds the standard JWT claims plus the authenticated identity.
type Claims struct {
	UserID uuid.UUID `json:"id"`
	Email  string    `json:"email"`
	jwt.RegisteredClaims
}

// Manager issues and verifies the two token families. Access and refresh
// tokens are signed with distinct secrets so one can never stand in for the
// other.
type Manager struct {
	accessSecret      []byte
	refreshSecret     []byte
	accessExpiration  time.Duration
	refreshExpiration time.Duration
}

func NewManager(accessSecret, refreshSecret string, accessExpiration, refreshExpiration time.Duration) *Manager {
	return &Manager{
		accessSecret:      []byte(accessSecret),
		refreshSecret:     []byte(refreshSecret),
		accessExpiration:  accessExpiration,
		refreshExpiration: refreshExpiration,
	}
}

func generate(userID uuid.UUID, email string, secret []byte, expiration time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func validate(tokenString string, secret []byte) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims, ok := parsed.Claims.(*Claims); ok && parsed.Valid {
		return claims, nil
	}
	return nil, ErrInvalidToken
}

func (m *Manager) GenerateAccessToken(userID uuid.UUID, email string) (string, error) {
	return generate(userID, email, m.accessSecret, m.accessExpiration)
}

func (m *Manager) GenerateRefreshToken(userID uuid.UUID, email string) (string, error) {
	return generate(userID, email, m.refreshSecret, m.refreshExpiration)
}

func (m *Manager) ValidateAccessToken(tokenString string) (*Claims, error) {
	return validate(tokenString, m.accessSecret)
}

func (m *Manager) ValidateRefreshToken(tokenString string) (*Claims, error) {
	return validate(tokenString, m.refreshSecret)
}
