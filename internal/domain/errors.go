package domain

import "errors"

// ErrNotReady means the upstream calendar/spreadsheet clients have not
// finished initializing. Callers should fail fast rather than hang.
var ErrNotReady = errors.New("service not ready")

// ErrNotFound indicates a missing record.
var ErrNotFound = errors.New("not found")

// ErrInvalidInput indicates a request that fails validation.
var ErrInvalidInput = errors.New("invalid input")
