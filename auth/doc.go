// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides identifier and token generation utilities.

# Record IDs

Users and quizzes are keyed by random UUIDs:

	id := auth.NewRecordID()

# Session Tokens

Session tokens are random 24-byte (192-bit) secrets:

	token, err := auth.GenerateSessionToken()

Tokens are URL-safe base64 encoded without padding.

# Signed Cookies

Session cookies carry the token together with its HMAC-SHA256 signature:

	value := auth.SignToken(token, secret)       // "token.signature"
	token, err := auth.VerifyToken(value, secret)

VerifyToken returns ErrInvalidToken for malformed values and
ErrInvalidSignature when the signature does not match. Comparison is
constant-time.
*/
package auth
