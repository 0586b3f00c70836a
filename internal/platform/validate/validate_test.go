// Copyright (c) 2026 Moim. All rights reserved.

package validate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seonokim/moim/internal/platform/apperr"
	"github.com/seonokim/moim/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "title", "모임", false},
		{"empty_string", "title", "", true},
		{"whitespace_only", "title", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, apperr.CodeInvalidInput, ae.Code)
				assert.Equal(t, tt.field, ae.Errors[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Username tests the username alphabet and length rule,
including Hangul syllables and jamo.
*/
func TestValidator_Username(t *testing.T) {
	tests := []struct {
		name     string
		username string
		isValid  bool
	}{
		{"latin", "seono-kim", true},
		{"hangul_syllables", "서노김", true},
		{"hangul_jamo", "ㄱㄴㄷ", true},
		{"mixed", "서노kim_99", true},
		{"too_short", "ab", false},
		{"too_long", "아주아주아주아주아주아주아주아주아주아주긴", false},
		{"uppercase", "SeonoKim", false},
		{"space", "seono kim", false},
		{"symbol", "seono!kim", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Username("username", tt.username)

			if tt.isValid {
				assert.False(t, v.HasErrors())
			} else {
				assert.True(t, v.HasErrors())
			}
		})
	}
}

/*
TestNormalizeUsername tests NFC composition of decomposed Hangul input.
*/
func TestNormalizeUsername(t *testing.T) {
	// NFD spelling of 한글님 using conjoining jamo.
	decomposed := "한글님"

	normalized := validate.NormalizeUsername(decomposed)
	assert.Equal(t, "한글님", normalized)

	// Normalized output passes the username rule; raw jamo would not.
	v := &validate.Validator{}
	v.Username("username", normalized)
	assert.False(t, v.HasErrors())

	assert.Equal(t, "서노김", validate.NormalizeUsername("  서노김  "))
}

/*
TestValidator_MaxBytes tests the byte-counted length rule, which multibyte
text must hit well before the equivalent character count.
*/
func TestValidator_MaxBytes(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		max     int
		isValid bool
	}{
		{"ascii_within", strings.Repeat("a", 72), 72, true},
		{"ascii_over", strings.Repeat("a", 73), 72, false},
		// 30 Hangul runes encode to 90 bytes.
		{"multibyte_over", strings.Repeat("비", 30), 72, false},
		{"multibyte_within", strings.Repeat("비", 24), 72, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.MaxBytes("password", tt.value, tt.max)

			if tt.isValid {
				assert.False(t, v.HasErrors())
			} else {
				assert.True(t, v.HasErrors())
			}
		})
	}
}

/*
TestValidator_Email checks the email format validation rule.
*/
func TestValidator_Email(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		isValid bool
	}{
		{"valid_email", "test@example.com", true},
		{"invalid_format", "invalid-email", false},
		{"missing_domain", "test@", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Email("email", tt.email)

			if tt.isValid {
				assert.False(t, v.HasErrors())
			} else {
				assert.True(t, v.HasErrors())
			}
		})
	}
}

/*
TestValidator_Chain tests the fluent API (chaining multiple rules).
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	// Multi-rule validation
	err := v.
		Required("username", "서노").
		MinLen("password", "12345678", 8).
		MaxLen("nickname", "노을", 30).
		Email("email", "seono@moim.app").
		Err()

	assert.NoError(t, err)
	assert.False(t, v.HasErrors())
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("username", "").       // Fails
		MinLen("password", "a", 8).     // Fails
		Email("email", "not-an-email"). // Fails
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	// Should accumulate all 3 errors
	assert.Len(t, ae.Errors, 3)
}

/*
TestValidator_Custom tests condition-driven failures with rejected values.
*/
func TestValidator_Custom(t *testing.T) {
	v := &validate.Validator{}
	v.Custom("username", true, "서노김", "Username is already in use")

	err := v.Err()
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	require.Len(t, ae.Errors, 1)
	assert.Equal(t, "서노김", ae.Errors[0].Value)
	assert.Equal(t, "Username is already in use", ae.Errors[0].Reason)
}
