package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrInsufficientRole   = errors.New("insufficient permissions")
	ErrEmployeeAccessOnly = errors.New("can only access your own data")
)
