package types

import "errors"

// Store operation errors.
var (
	ErrNotFound    = errors.New("record not found")
	ErrStoreClosed = errors.New("store is closed")
)

// Validation errors for user-supplied values.
var (
	ErrInvalidName   = errors.New("name must not be empty")
	ErrInvalidSalary = errors.New("salary must be a positive number")
)

// Integrity guard rejections. These are reported to the user as plain
// messages rather than treated as faults.
var (
	ErrDepartmentInUse = errors.New("department still has roles assigned")
	ErrRoleInUse       = errors.New("role still has employees assigned")
	ErrManagerCycle    = errors.New("manager assignment would create a reporting cycle")
)

// IsGuard reports whether err is an integrity guard rejection.
func IsGuard(err error) bool {
	return errors.Is(err, ErrDepartmentInUse) ||
		errors.Is(err, ErrRoleInUse) ||
		errors.Is(err, ErrManagerCycle)
}
