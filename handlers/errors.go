// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/globoquiz/access"
	"github.com/danielhkuo/globoquiz/assets"
	"github.com/danielhkuo/globoquiz/middleware"
	"github.com/danielhkuo/globoquiz/quiz"
	"github.com/danielhkuo/globoquiz/session"
	"github.com/danielhkuo/globoquiz/store"
)

// writeError maps a domain error to a status and error body. Unexpected
// errors are logged and reported as 500 without detail.
func writeError(w http.ResponseWriter, err error, op string) {
	var verr *quiz.ValidationError

	switch {
	case errors.As(err, &verr):
		middleware.ErrorResponse(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, access.ErrDenied):
		middleware.ErrorResponse(w, http.StatusForbidden, "Sign in to create quizzes")
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Quiz not found")
	case errors.Is(err, store.ErrUsernameTaken):
		middleware.ErrorResponse(w, http.StatusConflict, "Username already taken")
	case errors.Is(err, store.ErrInvalidFilter):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, assets.ErrInvalidName):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid asset name")
	case errors.Is(err, assets.ErrPathEscape):
		slog.Warn("asset path escape rejected", "op", op, "error", err)
		middleware.ErrorResponse(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, assets.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Asset not found")
	default:
		slog.Error("failed to "+op, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
	}
}

// currentUser resolves the session's user ID ("" when anonymous). It
// writes a 500 and returns false when the session backend fails.
func currentUser(w http.ResponseWriter, r *http.Request, sessions *session.Manager) (string, bool) {
	userID, err := sessions.UserID(r)
	if err != nil {
		writeError(w, err, "resolve session")
		return "", false
	}
	return userID, true
}
