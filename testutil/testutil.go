// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/globoquiz/cliparse"
	"github.com/danielhkuo/globoquiz/db"
	"github.com/danielhkuo/globoquiz/models"
	"github.com/danielhkuo/globoquiz/session"
	"github.com/danielhkuo/globoquiz/store"
)

// TestSessionSecret signs session cookies in tests
const TestSessionSecret = "test-session-secret"

// SecretFileContent is written next to (never inside) the test asset root
const SecretFileContent = "TOP-SECRET-DO-NOT-SERVE"

// SetupTestDB creates a fresh SQLite database with the full schema in a
// temporary directory
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, filepath.Join(t.TempDir(), "globoquiz_test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3318,
		DatabaseURL:   "file::memory:",
		DatabaseType:  db.TypeSQLite,
		SessionSecret: TestSessionSecret,
		SessionTTL:    time.Hour,
		AssetDir:      "flags",
		LogLevel:      "info",
		LogFormat:     "text",
	}
}

// NewTestSessions returns a session manager backed by memory
func NewTestSessions() *session.Manager {
	return session.NewManager(session.NewMemoryStore(), TestSessionSecret, time.Hour, false)
}

// CreateTestUser registers an account and returns its ID
func CreateTestUser(t *testing.T, conn *sql.DB, username string) string {
	t.Helper()

	userID, err := store.New(conn).CreateUser(context.Background(), username, "pw-"+username)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return userID
}

// CreateTestQuiz stores a quiz owned by ownerID with numQuestions questions.
// Question n has option n%4+1 as its answer.
func CreateTestQuiz(t *testing.T, conn *sql.DB, ownerID, title string, isPublic bool, numQuestions int) string {
	t.Helper()
	ctx := context.Background()

	var quizID string
	err := store.New(conn).WithinTx(ctx, func(w store.QuizWriter) error {
		id, err := w.CreateQuiz(ctx, ownerID, title, time.Now().UTC(), isPublic)
		if err != nil {
			return err
		}
		for n := 1; n <= numQuestions; n++ {
			err := w.CreateQuestion(ctx, models.Question{
				QuizID:        id,
				Number:        n,
				Prompt:        fmt.Sprintf("Which country does flag %d belong to?", n),
				Option1:       "Sweden",
				Option2:       "Norway",
				Option3:       "Denmark",
				Option4:       "Finland",
				CorrectOption: n%4 + 1,
			})
			if err != nil {
				return err
			}
		}
		quizID = id
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to create test quiz: %v", err)
	}

	return quizID
}

// LoginCookie signs userID in and returns the resulting session cookie
func LoginCookie(t *testing.T, sessions *session.Manager, userID string) *http.Cookie {
	t.Helper()

	w := httptest.NewRecorder()
	if err := sessions.SignIn(w, httptest.NewRequest("POST", "/login", nil), userID); err != nil {
		t.Fatalf("Failed to sign in test user: %v", err)
	}
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	t.Fatal("SignIn did not set a session cookie")
	return nil
}

// SessionCookie returns the session cookie set on a response, or nil
func SessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	return nil
}

// QuizForm builds an authoring form with numQuestions complete groups
func QuizForm(title string, isPublic bool, numQuestions int) url.Values {
	form := url.Values{}
	form.Set("quiz-title", title)
	if isPublic {
		form.Set("quiz-public", "on")
	}
	for n := 1; n <= numQuestions; n++ {
		prefix := fmt.Sprintf("question-%d-", n)
		form.Set(prefix+"prompt", fmt.Sprintf("Question %d", n))
		form.Set(prefix+"option-1", "Sweden")
		form.Set(prefix+"option-2", "Norway")
		form.Set(prefix+"option-3", "Denmark")
		form.Set(prefix+"option-4", "Finland")
		form.Set(prefix+"answer", "1")
	}
	return form
}

// SetupAssetDir creates a flag directory with a few images and a secret
// file beside it. It returns the asset root.
func SetupAssetDir(t *testing.T) string {
	t.Helper()

	base := t.TempDir()
	root := filepath.Join(base, "flags")
	if err := os.Mkdir(root, 0o755); err != nil {
		t.Fatal(err)
	}

	files := map[string]string{
		filepath.Join(root, "sweden.svg"):  `<svg xmlns="http://www.w3.org/2000/svg"><rect fill="#006aa7"/></svg>`,
		filepath.Join(root, "norway.svg"):  `<svg xmlns="http://www.w3.org/2000/svg"><rect fill="#ba0c2f"/></svg>`,
		filepath.Join(base, "secret.txt"):  SecretFileContent,
		filepath.Join(base, "flags-other"): SecretFileContent,
	}
	for path, content := range files {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	return root
}

// MakeRequest creates an HTTP test request carrying an optional session cookie
func MakeRequest(method, path string, cookie *http.Cookie) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return req
}

// MakeFormRequest creates an urlencoded form request
func MakeFormRequest(method, path string, form url.Values, cookie *http.Cookie) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
