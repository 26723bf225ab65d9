// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session tracks who is signed in.

A session is a random token stored server-side against a user ID. The
browser holds the token in the globoquiz_session cookie as
"token.signature", where the signature is an HMAC of the token under
SESSION_SECRET. A cookie whose signature does not verify, or whose token
is unknown or expired, reads as anonymous.

# Backends

	store := session.NewMemoryStore()                 // default, per process
	store, err := session.NewRedisStore(ctx, redisURL) // shared, survives restarts

Redis keys are globoquiz:session:<token> with the session TTL as expiry.

# Manager

	sessions := session.NewManager(store, cfg.SessionSecret, cfg.SessionTTL, cfg.CookieSecure)

	userID, err := sessions.UserID(r)   // "" when anonymous
	err = sessions.SignIn(w, r, user.ID) // always issues a new token
	err = sessions.SignOut(w, r)
*/
package session
