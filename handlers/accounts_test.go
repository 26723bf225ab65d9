// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/globoquiz/models"
	"github.com/danielhkuo/globoquiz/store"
	"github.com/danielhkuo/globoquiz/testutil"
)

func setupAccountHandler(t *testing.T) *AccountHandler {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return NewAccountHandler(store.New(db), testutil.NewTestSessions())
}

func registerForm(username, password, again string) url.Values {
	return url.Values{
		"username":       {username},
		"password":       {password},
		"password-again": {again},
	}
}

func TestRegister(t *testing.T) {
	h := setupAccountHandler(t)

	w := httptest.NewRecorder()
	h.Register(w, testutil.MakeFormRequest("POST", "/register", registerForm("alice", "s3cret", "s3cret"), nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	cookie := testutil.SessionCookie(w)
	if cookie == nil {
		t.Fatal("Expected registration to sign the user in")
	}

	var resp models.AccountResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.ID == "" || resp.Username != "alice" {
		t.Errorf("Unexpected response: %+v", resp)
	}

	// The new cookie identifies the new account
	w = httptest.NewRecorder()
	h.Me(w, testutil.MakeRequest("GET", "/me", cookie))
	testutil.AssertStatus(t, w, http.StatusOK)

	var me models.AccountResponse
	testutil.AssertJSON(t, w, &me)
	if me.ID != resp.ID {
		t.Errorf("Expected /me to return %s, got %s", resp.ID, me.ID)
	}
}

func TestRegister_Errors(t *testing.T) {
	h := setupAccountHandler(t)

	// Claim the name first
	w := httptest.NewRecorder()
	h.Register(w, testutil.MakeFormRequest("POST", "/register", registerForm("taken", "pw", "pw"), nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	testCases := []struct {
		name     string
		form     url.Values
		expected int
	}{
		{"missing username", registerForm("", "pw", "pw"), http.StatusBadRequest},
		{"blank username", registerForm("   ", "pw", "pw"), http.StatusBadRequest},
		{"missing password", registerForm("bob", "", ""), http.StatusBadRequest},
		{"passwords differ", registerForm("bob", "pw1", "pw2"), http.StatusBadRequest},
		{"username taken", registerForm("taken", "pw", "pw"), http.StatusConflict},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.Register(w, testutil.MakeFormRequest("POST", "/register", tc.form, nil))
			testutil.AssertStatus(t, w, tc.expected)

			if testutil.SessionCookie(w) != nil {
				t.Error("Failed registration must not sign in")
			}
		})
	}
}

func TestLogin(t *testing.T) {
	h := setupAccountHandler(t)

	w := httptest.NewRecorder()
	h.Register(w, testutil.MakeFormRequest("POST", "/register", registerForm("alice", "pw", "pw"), nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	testCases := []struct {
		name     string
		username string
		password string
		expected int
	}{
		{"correct", "alice", "pw", http.StatusOK},
		{"wrong password", "alice", "nope", http.StatusForbidden},
		{"unknown user", "mallory", "pw", http.StatusForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			form := url.Values{"username": {tc.username}, "password": {tc.password}}
			w := httptest.NewRecorder()
			h.Login(w, testutil.MakeFormRequest("POST", "/login", form, nil))
			testutil.AssertStatus(t, w, tc.expected)

			gotCookie := testutil.SessionCookie(w) != nil
			if gotCookie != (tc.expected == http.StatusOK) {
				t.Errorf("Session cookie set = %v for status %d", gotCookie, w.Code)
			}
		})
	}
}

func TestLogoutAndMe(t *testing.T) {
	h := setupAccountHandler(t)

	w := httptest.NewRecorder()
	h.Register(w, testutil.MakeFormRequest("POST", "/register", registerForm("alice", "pw", "pw"), nil))
	cookie := testutil.SessionCookie(w)
	if cookie == nil {
		t.Fatal("Expected session cookie")
	}

	w = httptest.NewRecorder()
	h.Logout(w, testutil.MakeRequest("POST", "/logout", cookie))
	testutil.AssertStatus(t, w, http.StatusNoContent)

	// The old cookie no longer identifies anyone
	w = httptest.NewRecorder()
	h.Me(w, testutil.MakeRequest("GET", "/me", cookie))
	testutil.AssertStatus(t, w, http.StatusUnauthorized)
}

func TestMe_Anonymous(t *testing.T) {
	h := setupAccountHandler(t)

	w := httptest.NewRecorder()
	h.Me(w, testutil.MakeRequest("GET", "/me", nil))
	testutil.AssertStatus(t, w, http.StatusUnauthorized)
}

func TestMe_TamperedCookie(t *testing.T) {
	h := setupAccountHandler(t)

	forged := &http.Cookie{Name: "globoquiz_session", Value: "made-up-token.bad-signature"}
	w := httptest.NewRecorder()
	h.Me(w, testutil.MakeRequest("GET", "/me", forged))
	testutil.AssertStatus(t, w, http.StatusUnauthorized)
}

// TestConcurrentRegistration races several registrations for one username;
// exactly one account may exist afterwards
func TestConcurrentRegistration(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewAccountHandler(store.New(db), testutil.NewTestSessions())

	numAttempts := 5

	var created, conflicts atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numAttempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			w := httptest.NewRecorder()
			h.Register(w, testutil.MakeFormRequest("POST", "/register", registerForm("racer", "pw", "pw"), nil))

			switch w.Code {
			case http.StatusCreated:
				created.Add(1)
			case http.StatusConflict:
				conflicts.Add(1)
			}
		}()
	}

	wg.Wait()

	if created.Load() != 1 {
		t.Errorf("Expected exactly 1 successful registration, got %d", created.Load())
	}
	if conflicts.Load() != int32(numAttempts-1) {
		t.Errorf("Expected %d conflicts, got %d", numAttempts-1, conflicts.Load())
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM account WHERE username = $1", "racer").Scan(&count); err != nil {
		t.Fatalf("Failed to count accounts: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 account in database, got %d", count)
	}
}
