// Copyright (c) 2026 Moim. All rights reserved.

/*
Package respond provides HTTP response helpers used by all API handlers.

# Architecture

This package centralizes the presentation logic for HTTP responses.
Every successful response is wrapped in the uniform result envelope
(resultCode/message/body), and every failure is rendered as the uniform
error payload. This consistency is crucial for clients to parse data robustly.
*/
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/seonokim/moim/internal/platform/apperr"
	"github.com/seonokim/moim/internal/platform/ctxkey"
)

// SuccessPrefix distinguishes success result codes from soft-failure codes.
// An envelope is successful if and only if its code starts with this prefix.
const SuccessPrefix = "S-"

// Envelope is the uniform wrapper around every successful API response body.
//
// # Invariant
//
// Success/failure is derived solely from the ResultCode prefix via
// [Envelope.IsSuccess] — it is never stored as a separate field, so the two
// can never go out of sync.
type Envelope struct {
	ResultCode string `json:"resultCode"`
	Message    string `json:"message"`
	Body       any    `json:"body"` // Explicitly null when an operation has no payload
}

// IsSuccess reports whether the envelope carries a success result code.
func (e Envelope) IsSuccess() bool {
	return strings.HasPrefix(e.ResultCode, SuccessPrefix)
}

// IsFail reports whether the envelope carries a failure result code.
func (e Envelope) IsFail() bool {
	return !e.IsSuccess()
}

// NewEnvelope constructs an envelope from a result code, message, and body.
func NewEnvelope(resultCode, message string, body any) Envelope {
	return Envelope{ResultCode: resultCode, Message: message, Body: body}
}

// errorPayload is the uniform error body shape. The "errors" list is never
// null; absence of field errors is an empty sequence.
type errorPayload struct {
	Message string             `json:"message"`
	Code    string             `json:"code"`
	Status  int                `json:"status"`
	Errors  []apperr.FieldError `json:"errors"`
}

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload any) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes a 200 OK envelope with the given result code, message, and body.
func OK(writer http.ResponseWriter, resultCode, message string, body any) {
	JSON(writer, http.StatusOK, NewEnvelope(resultCode, message, body))
}

// Created writes a 201 Created envelope with the given result code, message,
// and body.
func Created(writer http.ResponseWriter, resultCode, message string, body any) {
	JSON(writer, http.StatusCreated, NewEnvelope(resultCode, message, body))
}

// Error converts any Go error into the standardized JSON error payload.
//
// Unexpected (non-AppError) failures are logged with full details and hidden
// from the client behind a generic internal error.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	var appError *apperr.AppError
	if !errors.As(err, &appError) {
		logger := getLoggerFromContext(request)
		logger.ErrorContext(request.Context(), "unhandled_error_swallowed",
			slog.String("error", err.Error()),
			slog.String("request_id", getRequestIDFromContext(request)),
		)
		appError = apperr.Internal(err)
	}

	// Always log 5xx errors as they indicate server-side issues.
	if appError.HTTPStatus >= 500 {
		logger := getLoggerFromContext(request)
		logger.ErrorContext(request.Context(), "api_server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", getRequestIDFromContext(request)),
			slog.Any("cause", appError.Cause),
		)
	}

	JSON(writer, appError.HTTPStatus, errorPayload{
		Message: appError.Message,
		Code:    appError.Code,
		Status:  appError.HTTPStatus,
		Errors:  appError.FieldErrors(),
	})
}

// getLoggerFromContext extracts the per-request logger.
func getLoggerFromContext(request *http.Request) *slog.Logger {
	if logger, ok := request.Context().Value(ctxkey.KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

// getRequestIDFromContext extracts the X-Request-ID for log correlation.
func getRequestIDFromContext(request *http.Request) string {
	if id, ok := request.Context().Value(ctxkey.KeyRequestID).(string); ok {
		return id
	}
	return ""
}
