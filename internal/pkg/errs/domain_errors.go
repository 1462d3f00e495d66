package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Allocation errors
	ErrResourceExhausted = errors.New("no available resources for this service")

	// Provider configuration errors
	ErrUnknownProvider    = errors.New("unknown service provider")
	ErrUnknownServiceCode = errors.New("unknown service code")
	ErrDuplicatePolicy    = errors.New("duplicate provider policy registration")

	// Inventory errors
	ErrImportFailed = errors.New("inventory import failed")

	// Assignment lifecycle errors
	ErrInvalidStateTransition = errors.New("invalid assignment state transition")
	ErrNotFound               = errors.New("object not found")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
