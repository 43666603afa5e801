package domain

import (
	"errors"
	"net/http"
)

// HTTPError defines errors that can be mapped to HTTP status codes.
type HTTPError interface {
	error
	StatusCode() int
}

type (
	// NotFoundError indicates a file or folder id no longer resolves
	// (unknown or trashed on the provider side).
	NotFoundError struct {
		Message string
	}

	// ValidationError indicates invalid input
	ValidationError struct {
		Message string
	}

	// UnauthorizedError indicates a missing or rejected bearer token
	UnauthorizedError struct {
		Message string
	}

	// RemoteError indicates a provider-side failure (network, quota,
	// server error). Propagated unchanged; no retry is performed.
	RemoteError struct {
		Message string
	}

	// SummarizeError indicates a failure of the inference endpoint
	SummarizeError struct {
		Message string
	}
)

func (e *NotFoundError) Error() string     { return e.Message }
func (e *ValidationError) Error() string   { return e.Message }
func (e *UnauthorizedError) Error() string { return e.Message }
func (e *RemoteError) Error() string       { return e.Message }
func (e *SummarizeError) Error() string    { return e.Message }

func (e *NotFoundError) StatusCode() int     { return http.StatusNotFound }
func (e *ValidationError) StatusCode() int   { return http.StatusBadRequest }
func (e *UnauthorizedError) StatusCode() int { return http.StatusUnauthorized }
func (e *RemoteError) StatusCode() int       { return http.StatusBadGateway }
func (e *SummarizeError) StatusCode() int    { return http.StatusBadGateway }

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrRemote       = errors.New("remote operation failed")
)

func (e *NotFoundError) Is(target error) bool     { return target == ErrNotFound }
func (e *ValidationError) Is(target error) bool   { return target == ErrValidation }
func (e *UnauthorizedError) Is(target error) bool { return target == ErrUnauthorized }
func (e *RemoteError) Is(target error) bool       { return target == ErrRemote }
