package auth

import "errors"

var (
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrInvalidToken         = errors.New("invalid or expired token")
	ErrTokenRevoked         = errors.New("refresh token revoked")
	ErrWrongCurrentPassword = errors.New("current password is incorrect")
)
