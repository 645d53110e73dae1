package services

import "errors"

var (
	ErrInvalidCredentials   = errors.New("Invalid credentials")
	ErrRefreshTokenNotFound = errors.New("Refresh token not found")
	ErrInvalidToken         = errors.New("Invalid refresh token")
)
