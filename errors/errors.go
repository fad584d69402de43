package errors

import "fmt"

var (
	ErrWorkerPanic        = fmt.Errorf("worker panic")
	ErrMissingToken       = fmt.Errorf("DISCORD_TOKEN is not set")
	ErrInvalidConfig      = fmt.Errorf("invalid configuration")
	ErrAlreadyCheckedIn   = fmt.Errorf("user is already checked in")
	ErrAlreadyCheckedOut  = fmt.Errorf("user is already checked out")
	ErrPermissionDenied   = fmt.Errorf("permission denied")
	ErrStaffRoleNotFound  = fmt.Errorf("staff role not found")
	ErrEmptyCensoredWords = fmt.Errorf("no censored words have been provided")
)
