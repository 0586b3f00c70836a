// Copyright (c) 2026 Moim. All rights reserved.

// Package validate provides a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError].
//
// # Architecture
//
// This package is used in the service layer and at the HTTP boundary for
// form presence checks — never in storage. It ensures that business logic
// only operates on semantically valid data.
package validate

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/seonokim/moim/internal/platform/apperr"
)

// usernameRegex matches the permitted username alphabet: lowercase latin
// letters, digits, underscore, hyphen, and Hangul (jamo and syllables).
var usernameRegex = regexp.MustCompile(`^[ㄱ-ㅎ가-힣a-z0-9_-]{3,20}$`)

// NormalizeUsername applies Unicode NFC normalization to a username so that
// composed and decomposed Hangul spellings compare (and persist) identically.
func NormalizeUsername(username string) string {
	return norm.NFC.String(strings.TrimSpace(username))
}

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	errs []apperr.FieldError
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, value, "This field is required")
	}
	return v
}

// MaxLen fails if the Unicode character count exceeds max.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if utf8.RuneCountInString(value) > max {
		v.add(field, value, fmt.Sprintf("Maximum %d characters", max))
	}
	return v
}

// MinLen fails if the Unicode character count is below min.
func (v *Validator) MinLen(field, value string, min int) *Validator {
	if utf8.RuneCountInString(value) < min {
		v.add(field, value, fmt.Sprintf("Minimum %d characters", min))
	}
	return v
}

// MaxBytes fails if the encoded byte length exceeds max. Use this where
// the consumer's limit is on bytes rather than characters, such as the
// bcrypt input limit; multibyte text hits it well before MaxLen would.
func (v *Validator) MaxBytes(field, value string, max int) *Validator {
	if len(value) > max {
		v.add(field, value, fmt.Sprintf("Maximum %d bytes", max))
	}
	return v
}

// Email fails if the value is not a valid RFC 5322 email address.
func (v *Validator) Email(field, value string) *Validator {
	if _, err := mail.ParseAddress(value); err != nil {
		v.add(field, value, "Must be a valid email address")
	}
	return v
}

// Username fails if the value is not 3-20 characters from the restricted
// username alphabet. The value must already be NFC-normalized via
// [NormalizeUsername].
func (v *Validator) Username(field, value string) *Validator {
	if !usernameRegex.MatchString(value) {
		v.add(field, value, "Must be 3-20 characters of letters, digits, '_' or '-'")
	}
	return v
}

// Custom adds a failure with a custom reason if the condition is true.
//
// # Example
//
//	v.Custom("authLevel", level < 0, fmt.Sprint(level), "Must not be negative")
func (v *Validator) Custom(field string, failed bool, value, reason string) *Validator {
	if failed {
		v.add(field, value, reason)
	}
	return v
}

// Err returns an [apperr.AppError] (C-400) if any rules failed,
// or nil if all rules passed.
//
// This is the only output method — call it at the end of the chain.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.InvalidInput(v.errs...)
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// add appends an [apperr.FieldError] to the internal slice.
func (v *Validator) add(field, value, reason string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Value: value, Reason: reason})
}

// RequiredError is a shortcut to create a single-field validation error.
func RequiredError(field, value, reason string) *apperr.AppError {
	return apperr.InvalidInput(apperr.FieldError{
		Field:  field,
		Value:  value,
		Reason: reason,
	})
}
