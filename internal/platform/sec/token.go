// Copyright (c) 2026 Moim. All rights reserved.

package sec

import (
	"crypto/rand"
	"encoding/base64"
)

// SessionIDLength is the byte length of the random session identifier.
// 32 bytes of entropy makes session guessing computationally infeasible.
const SessionIDLength = 32

// GenerateSecureToken returns a URL-safe random token of byteLength entropy.
//
// crypto/rand.Read is guaranteed not to fail (it aborts the process on a
// broken entropy source), so no error is surfaced here.
func GenerateSecureToken(byteLength int) string {
	buffer := make([]byte, byteLength)
	_, _ = rand.Read(buffer)
	return base64.RawURLEncoding.EncodeToString(buffer)
}

// NewSessionID generates a fresh opaque session identifier.
//
// A new ID is issued on every successful login so that a pre-login session
// identifier can never be promoted to an authenticated one (fixation defense).
func NewSessionID() string {
	return GenerateSecureToken(SessionIDLength)
}
