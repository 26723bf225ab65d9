// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/globoquiz/auth"
)

const testSecret = "test-secret"

func newTestManager() (*Manager, *MemoryStore) {
	store := NewMemoryStore()
	return NewManager(store, testSecret, time.Hour, false), store
}

// signIn signs userID in and returns the issued cookie
func signIn(t *testing.T, m *Manager, userID string, existing *http.Cookie) *http.Cookie {
	t.Helper()
	req := httptest.NewRequest("POST", "/login", nil)
	if existing != nil {
		req.AddCookie(existing)
	}
	w := httptest.NewRecorder()

	if err := m.SignIn(w, req, userID); err != nil {
		t.Fatalf("SignIn() error = %v", err)
	}

	for _, c := range w.Result().Cookies() {
		if c.Name == CookieName {
			return c
		}
	}
	t.Fatal("SignIn() did not set the session cookie")
	return nil
}

func userIDFor(t *testing.T, m *Manager, cookie *http.Cookie) string {
	t.Helper()
	req := httptest.NewRequest("GET", "/me", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	userID, err := m.UserID(req)
	if err != nil {
		t.Fatalf("UserID() error = %v", err)
	}
	return userID
}

func TestManager_NoCookieIsAnonymous(t *testing.T) {
	m, _ := newTestManager()
	if got := userIDFor(t, m, nil); got != "" {
		t.Errorf("expected anonymous, got %q", got)
	}
}

func TestManager_SignInRoundTrip(t *testing.T) {
	m, _ := newTestManager()
	cookie := signIn(t, m, "user-1", nil)

	if !cookie.HttpOnly {
		t.Error("session cookie should be HttpOnly")
	}
	if cookie.Path != "/" {
		t.Errorf("expected cookie path /, got %q", cookie.Path)
	}
	if !strings.Contains(cookie.Value, ".") {
		t.Errorf("expected signed cookie value, got %q", cookie.Value)
	}

	if got := userIDFor(t, m, cookie); got != "user-1" {
		t.Errorf("expected user-1, got %q", got)
	}
}

func TestManager_TamperedCookieIsAnonymous(t *testing.T) {
	m, _ := newTestManager()
	cookie := signIn(t, m, "user-1", nil)

	token, _, _ := strings.Cut(cookie.Value, ".")
	tests := []struct {
		name  string
		value string
	}{
		{"bad signature", token + ".forged"},
		{"missing signature", token},
		{"empty", ""},
		{"signed with other secret", auth.SignToken(token, "other-secret")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forged := &http.Cookie{Name: CookieName, Value: tt.value}
			if got := userIDFor(t, m, forged); got != "" {
				t.Errorf("expected anonymous, got %q", got)
			}
		})
	}
}

func TestManager_SignInRotatesToken(t *testing.T) {
	m, store := newTestManager()
	first := signIn(t, m, "user-1", nil)
	second := signIn(t, m, "user-2", first)

	if first.Value == second.Value {
		t.Fatal("SignIn() should issue a fresh token")
	}
	if got := userIDFor(t, m, first); got != "" {
		t.Errorf("previous session should be dropped, got %q", got)
	}
	if got := userIDFor(t, m, second); got != "user-2" {
		t.Errorf("expected user-2, got %q", got)
	}
	if len(store.entries) != 1 {
		t.Errorf("expected exactly one live session, got %d", len(store.entries))
	}
}

func TestManager_SignOut(t *testing.T) {
	m, _ := newTestManager()
	cookie := signIn(t, m, "user-1", nil)

	req := httptest.NewRequest("POST", "/logout", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	if err := m.SignOut(w, req); err != nil {
		t.Fatalf("SignOut() error = %v", err)
	}

	cleared := w.Result().Cookies()
	if len(cleared) != 1 || cleared[0].MaxAge >= 0 {
		t.Errorf("expected expired cookie, got %+v", cleared)
	}

	// The old cookie no longer resolves even if the browser keeps it
	if got := userIDFor(t, m, cookie); got != "" {
		t.Errorf("expected anonymous after SignOut(), got %q", got)
	}
}

func TestManager_SignOutAnonymous(t *testing.T) {
	m, _ := newTestManager()
	w := httptest.NewRecorder()
	if err := m.SignOut(w, httptest.NewRequest("POST", "/logout", nil)); err != nil {
		t.Errorf("SignOut() without a session error = %v", err)
	}
}

type failingStore struct{ err error }

func (f failingStore) Get(context.Context, string) (string, bool, error) { return "", false, f.err }
func (f failingStore) Set(context.Context, string, string, time.Duration) error {
	return f.err
}
func (f failingStore) Delete(context.Context, string) error { return f.err }

func TestManager_StoreErrors(t *testing.T) {
	boom := errors.New("backend down")
	m := NewManager(failingStore{err: boom}, testSecret, time.Hour, false)

	req := httptest.NewRequest("POST", "/login", nil)
	if err := m.SignIn(httptest.NewRecorder(), req, "user-1"); !errors.Is(err, boom) {
		t.Errorf("SignIn() error = %v, want %v", err, boom)
	}

	req = httptest.NewRequest("GET", "/me", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: auth.SignToken("tok", testSecret)})
	if _, err := m.UserID(req); !errors.Is(err, boom) {
		t.Errorf("UserID() error = %v, want %v", err, boom)
	}
}
