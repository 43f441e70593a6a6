package services

import "errors"

// Error taxonomy of the order core. Callers match with errors.Is; the concrete
// error usually wraps one of these with detail.
var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrInsufficientPoints   = errors.New("insufficient reward points")
	ErrInvalidStatus        = errors.New("invalid order status")
	ErrNotFound             = errors.New("not found")
	ErrForbidden            = errors.New("access denied")
	ErrOrderNumberCollision = errors.New("could not allocate a unique order number")
	ErrTransientStore       = errors.New("order store unavailable")
)
