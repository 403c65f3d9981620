package ports

import "errors"

// Sentinel errors shared by repositories, services and handlers. Handlers
// map them to HTTP status codes with errors.Is.
var (
	ErrNotFound           = errors.New("record not found")
	ErrValidation         = errors.New("validation failed")
	ErrEmailExists        = errors.New("Email already exists!")
	ErrUsernameExists     = errors.New("Username already exists!")
	ErrUserIDExists       = errors.New("User ID already exists!")
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrUserInactive       = errors.New("Account is deactivated")
	ErrNotClaimable       = errors.New("Food item is not available for claiming")
)
