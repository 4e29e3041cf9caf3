package service

import "errors"

// Operation outcomes surfaced to the HTTP layer. Every failure is scoped to
// its operation; nothing here is fatal and nothing is retried internally.
var (
	ErrValidation       = errors.New("validation")        // 400
	ErrInvalidReference = errors.New("invalid reference") // 400
	ErrForbidden        = errors.New("forbidden")         // 403
	ErrNotFound         = errors.New("not found")         // 404
	ErrConflict         = errors.New("conflict")          // 409
	ErrNoOrders         = errors.New("no orders")
)
