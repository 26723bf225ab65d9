// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrInvalidToken     = errors.New("invalid token format")
)

// NewRecordID returns a fresh identifier for a stored record (user, quiz)
func NewRecordID() string {
	return uuid.NewString()
}

// GenerateSessionToken creates a random secure token for a login session
func GenerateSessionToken() (string, error) {
	b := make([]byte, 24) // 24 bytes = 192 bits of entropy
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	// URL-safe base64 without padding
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "="), nil
}

// Signature computes the HMAC of a token under the given secret
func Signature(token, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(token))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner cookies
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// SignToken returns "token.signature", suitable for a cookie value
func SignToken(token, secret string) string {
	return token + "." + Signature(token, secret)
}

// VerifyToken checks a signed value and returns the bare token
func VerifyToken(signed, secret string) (string, error) {
	token, sig, ok := strings.Cut(signed, ".")
	if !ok || token == "" || sig == "" {
		return "", ErrInvalidToken
	}
	expected := Signature(token, secret)
	if !hmac.Equal([]byte(sig), []byte(expected)) {
		return "", ErrInvalidSignature
	}
	return token, nil
}
