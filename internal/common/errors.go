// Package common defines sentinel errors shared by the client and the server.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrValidation = errors.New("validation error")
	ErrInternal   = errors.New("internal error")
)
