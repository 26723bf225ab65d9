// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/globoquiz/auth"
)

// CookieName is the session cookie set on sign-in
const CookieName = "globoquiz_session"

// Manager ties the session cookie to a Store
type Manager struct {
	store  Store
	secret string
	ttl    time.Duration
	secure bool
}

func NewManager(store Store, secret string, ttl time.Duration, secure bool) *Manager {
	return &Manager{
		store:  store,
		secret: secret,
		ttl:    ttl,
		secure: secure,
	}
}

// token returns the verified token from the request cookie, or "" if the
// cookie is absent or its signature does not match
func (m *Manager) token(r *http.Request) string {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	token, err := auth.VerifyToken(cookie.Value, m.secret)
	if err != nil {
		slog.Warn("rejected session cookie", "error", err)
		return ""
	}
	return token
}

// UserID returns the signed-in user for the request, "" when anonymous
func (m *Manager) UserID(r *http.Request) (string, error) {
	token := m.token(r)
	if token == "" {
		return "", nil
	}

	userID, ok, err := m.store.Get(r.Context(), token)
	if err != nil {
		return "", fmt.Errorf("lookup session: %w", err)
	}
	if !ok {
		return "", nil
	}
	return userID, nil
}

// SignIn binds userID to a fresh token and sets the cookie. Any session
// the request already carried is dropped.
func (m *Manager) SignIn(w http.ResponseWriter, r *http.Request, userID string) error {
	if old := m.token(r); old != "" {
		if err := m.store.Delete(r.Context(), old); err != nil {
			return fmt.Errorf("drop previous session: %w", err)
		}
	}

	token, err := auth.GenerateSessionToken()
	if err != nil {
		return err
	}
	if err := m.store.Set(r.Context(), token, userID, m.ttl); err != nil {
		return fmt.Errorf("store session: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    auth.SignToken(token, m.secret),
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// SignOut invalidates the request's session and clears the cookie
func (m *Manager) SignOut(w http.ResponseWriter, r *http.Request) error {
	if token := m.token(r); token != "" {
		if err := m.store.Delete(r.Context(), token); err != nil {
			return fmt.Errorf("delete session: %w", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
