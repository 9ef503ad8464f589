package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmailExists      = errors.New("email already exists")
	ErrManagerNotFound  = errors.New("manager not found")
	ErrAlreadyInactive  = errors.New("employee is already inactive")
	ErrAlreadyActive    = errors.New("employee is already active")
)
