// Copyright (c) 2026 Moim. All rights reserved.

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seonokim/moim/internal/platform/apperr"
)

/*
TestConstructors tests the code and status carried by each error class.
*/
func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		err    *apperr.AppError
		code   string
		status int
	}{
		{"article_not_found", apperr.ArticleNotFound(), "A-001", http.StatusNotFound},
		{"article_not_created", apperr.ArticleNotCreated(), "A-002", http.StatusNotFound},
		{"unauthorized", apperr.Unauthorized(), "U-401", http.StatusUnauthorized},
		{"forbidden", apperr.Forbidden(), "U-403", http.StatusForbidden},
		{"account_not_found", apperr.AccountNotFound(), "U-404", http.StatusNotFound},
		{"invalid_input", apperr.InvalidInput(), "C-400", http.StatusBadRequest},
		{"invalid_type", apperr.InvalidType("id", "abc", "a numeric id"), "C-400", http.StatusBadRequest},
		{"method_not_allowed", apperr.MethodNotAllowed(), "C-405", http.StatusMethodNotAllowed},
		{"internal", apperr.Internal(errors.New("boom")), "C-500", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

/*
TestFieldErrors tests the never-nil guarantee of the field error list.
*/
func TestFieldErrors(t *testing.T) {
	// Errors without field detail still expose an empty, non-nil list.
	bare := apperr.ArticleNotFound()
	require.NotNil(t, bare.FieldErrors())
	assert.Empty(t, bare.FieldErrors())

	detailed := apperr.InvalidInput(
		apperr.FieldError{Field: "title", Value: "", Reason: "This field is required"},
		apperr.FieldError{Field: "content", Value: "", Reason: "This field is required"},
	)
	assert.Len(t, detailed.FieldErrors(), 2)

	// A type mismatch synthesizes one entry carrying the rejected value.
	mismatch := apperr.InvalidType("id", "abc", "a numeric article id")
	require.Len(t, mismatch.FieldErrors(), 1)
	assert.Equal(t, "abc", mismatch.FieldErrors()[0].Value)
}

/*
TestUnwrap tests that wrapped causes survive errors.Is/As traversal.
*/
func TestUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	internal := apperr.Internal(cause)

	assert.True(t, errors.Is(internal, cause))

	// AppErrors survive fmt.Errorf wrapping in the service layer.
	wrapped := fmt.Errorf("article_service_get_failed: %w", apperr.ArticleNotFound())
	assert.True(t, apperr.IsAppError(wrapped))

	ae := apperr.As(wrapped)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeArticleNotFound, ae.Code)

	assert.Nil(t, apperr.As(errors.New("plain")))
	assert.False(t, apperr.IsAppError(nil))
}
