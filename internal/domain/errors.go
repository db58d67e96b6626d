package domain

import "errors"

// ErrValidation is returned by service functions when input fails a business
// rule (e.g. blank goal text).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrInvalidID is returned by repo functions when an identifier cannot be
// interpreted by the active store (e.g. a malformed ObjectID or UUID).
// It is a store failure, not a validation failure: handlers map it to HTTP 500.
var ErrInvalidID = errors.New("invalid id")
