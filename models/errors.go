package models

import "errors"

// Business rule sentinels. Handlers wrap these with concrete messages and
// pick the response status with errors.Is.
var (
	ErrValidation         = errors.New("validation failed")
	ErrProductNotFound    = errors.New("product not found")
	ErrProductUnavailable = errors.New("product unavailable")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrQuantityExceeded   = errors.New("quantity limit exceeded")
	ErrBelowMinimumOrder  = errors.New("below minimum order amount")
	ErrTooManyItems       = errors.New("too many items in order")
	ErrDailyLimitReached  = errors.New("daily order limit reached")
)
