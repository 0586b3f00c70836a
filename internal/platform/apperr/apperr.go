// Copyright (c) 2026 Moim. All rights reserved.

/*
Package apperr defines the centralized error handling framework for Moim.

It provides a rich error type that bridges the gap between low-level Domain/Storage
errors and high-level HTTP responses.

Architecture:

  - AppError: A struct containing a machine-readable code, user-friendly message,
    HTTP status, and ordered field-level errors.
  - Mapping: Explicit mapping from AppError to standard HTTP status codes.

Every error that leaves the service layer should be wrapped as an [AppError] to ensure
consistent API responses.
*/
package apperr

import (
	"errors"
	"net/http"
)

// Machine-readable error codes. The letter prefix groups the code by domain:
// C- common, A- article, U- user/authorization.
const (
	CodeInvalidInput      = "C-400"
	CodeMethodNotAllowed  = "C-405"
	CodeInternal          = "C-500"
	CodeArticleNotFound   = "A-001"
	CodeArticleNotCreated = "A-002"
	CodeUnauthorized      = "U-401"
	CodeForbidden         = "U-403"
	CodeAccountNotFound   = "U-404"
)

// AppError is the canonical error type for the Moim API.
//
// It carries an HTTP status code, a machine-readable code, a client-safe
// message, and an ordered list of field-level validation errors.
//
// # Security
//
// The Cause field is for server-side logging only and is never sent to clients
// to avoid leaking internal implementation details (e.g., SQL queries).
type AppError struct {
	// Message is a human-readable description safe to return to the client.
	Message string `json:"message"`
	// Code is a machine-readable error identifier (e.g. "A-001", "C-400").
	Code string `json:"code"`
	// HTTPStatus is the HTTP response status code.
	HTTPStatus int `json:"status"`
	// Errors holds per-field validation failures. It is never null on the
	// wire; absence of errors is an empty list.
	Errors []FieldError `json:"errors"`
	// Cause is the underlying error, used for server-side logging only.
	Cause error `json:"-"`
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the input field name that failed validation.
	Field string `json:"field"`
	// Value is the rejected input value, rendered as text.
	Value string `json:"value"`
	// Reason is the human-readable description of the failure.
	Reason string `json:"reason"`
}

// Error implements the error interface. It returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// FieldErrors returns the field-error list, substituting an empty (non-nil)
// slice when no field errors were recorded. Serialization must always go
// through this accessor so "errors" is never null on the wire.
func (e *AppError) FieldErrors() []FieldError {
	if e.Errors == nil {
		return []FieldError{}
	}
	return e.Errors
}

// # Client Errors (4xx)

// ArticleNotFound creates a 404 [AppError] for a missing article.
func ArticleNotFound() *AppError {
	return &AppError{
		Code:       CodeArticleNotFound,
		Message:    "Article does not exist",
		HTTPStatus: http.StatusNotFound,
	}
}

// ArticleNotCreated creates a 404 [AppError] signalling that a freshly
// written article could not be re-read. This is a persistence inconsistency,
// distinct from a validation failure.
func ArticleNotCreated() *AppError {
	return &AppError{
		Code:       CodeArticleNotCreated,
		Message:    "Article was not created",
		HTTPStatus: http.StatusNotFound,
	}
}

// AccountNotFound creates a 404 [AppError] for a missing account.
func AccountNotFound() *AppError {
	return &AppError{
		Code:       CodeAccountNotFound,
		Message:    "Account does not exist",
		HTTPStatus: http.StatusNotFound,
	}
}

// Unauthorized creates a 401 [AppError] for requests without an
// authenticated session.
func Unauthorized() *AppError {
	return &AppError{
		Code:       CodeUnauthorized,
		Message:    "Login is required",
		HTTPStatus: http.StatusUnauthorized,
	}
}

// Forbidden creates a 403 [AppError] for authenticated but unentitled actors.
func Forbidden() *AppError {
	return &AppError{
		Code:       CodeForbidden,
		Message:    "You do not have permission to do that",
		HTTPStatus: http.StatusForbidden,
	}
}

// InvalidInput creates a 400 [AppError] with one entry per invalid field.
func InvalidInput(fieldErrors ...FieldError) *AppError {
	return &AppError{
		Code:       CodeInvalidInput,
		Message:    "Invalid input value",
		HTTPStatus: http.StatusBadRequest,
		Errors:     fieldErrors,
	}
}

// InvalidType creates a 400 [AppError] for a type mismatch on a structured
// input field (e.g. a non-numeric path identifier), with one synthesized
// entry describing the rejected value.
func InvalidType(field, value, expected string) *AppError {
	return &AppError{
		Code:       CodeInvalidInput,
		Message:    "Invalid type of value",
		HTTPStatus: http.StatusBadRequest,
		Errors: []FieldError{
			{Field: field, Value: value, Reason: "expected " + expected},
		},
	}
}

// MethodNotAllowed creates a 405 [AppError].
func MethodNotAllowed() *AppError {
	return &AppError{
		Code:       CodeMethodNotAllowed,
		Message:    "Method is not allowed",
		HTTPStatus: http.StatusMethodNotAllowed,
	}
}

// # Server Errors (5xx)

// Internal creates a 500 [AppError] wrapping an unexpected server-side error.
// The cause is stored for logging but is never sent to the client.
func Internal(cause error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    "An unexpected error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// # Helpers

// IsAppError reports whether err (or any error in its chain) is an [*AppError].
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}
