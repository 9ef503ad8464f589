package department

import "errors"

var (
	ErrDepartmentNotFound  = errors.New("department not found")
	ErrDepartmentCodeTaken = errors.New("department code already exists")
	ErrDesignationNotFound = errors.New("designation not found")
)
