package service

import "errors"

// Sentinel errors the HTTP layer maps to status codes: ErrValidation → 400,
// ErrNotFound → 404. Everything else surfaces as 500 on writes; read paths
// log and degrade instead of propagating.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
)
