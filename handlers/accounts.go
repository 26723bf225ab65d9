// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/globoquiz/middleware"
	"github.com/danielhkuo/globoquiz/models"
	"github.com/danielhkuo/globoquiz/session"
	"github.com/danielhkuo/globoquiz/store"
)

type AccountHandler struct {
	store    *store.Store
	sessions *session.Manager
}

func NewAccountHandler(st *store.Store, sessions *session.Manager) *AccountHandler {
	return &AccountHandler{store: st, sessions: sessions}
}

// Register handles POST /register and signs the new user in
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	form, err := middleware.ParseForm(w, r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid form")
		return
	}

	username := strings.TrimSpace(form.Get("username"))
	password := form.Get("password")

	// Validate input
	if username == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "username is required")
		return
	}
	if password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "password is required")
		return
	}
	if password != form.Get("password-again") {
		middleware.ErrorResponse(w, http.StatusBadRequest, "passwords do not match")
		return
	}

	userID, err := h.store.CreateUser(r.Context(), username, password)
	if err != nil {
		writeError(w, err, "create user")
		return
	}

	if err := h.sessions.SignIn(w, r, userID); err != nil {
		writeError(w, err, "sign in")
		return
	}

	slog.Info("user registered", "user_id", userID, "username", username)

	middleware.JSONResponse(w, http.StatusCreated, models.AccountResponse{
		ID:       userID,
		Username: username,
	})
}

// Login handles POST /login
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	form, err := middleware.ParseForm(w, r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid form")
		return
	}

	user, err := h.store.FindUserByCredentials(r.Context(), strings.TrimSpace(form.Get("username")), form.Get("password"))
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusForbidden, "Wrong username or password")
		return
	}
	if err != nil {
		writeError(w, err, "query user")
		return
	}

	if err := h.sessions.SignIn(w, r, user.ID); err != nil {
		writeError(w, err, "sign in")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.AccountResponse{
		ID:       user.ID,
		Username: user.Username,
	})
}

// Logout handles POST /logout
func (h *AccountHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.SignOut(w, r); err != nil {
		writeError(w, err, "sign out")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Me handles GET /me
func (h *AccountHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r, h.sessions)
	if !ok {
		return
	}
	if userID == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not signed in")
		return
	}

	user, err := h.store.FindUserByID(r.Context(), userID)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not signed in")
		return
	}
	if err != nil {
		writeError(w, err, "query user")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.AccountResponse{
		ID:       user.ID,
		Username: user.Username,
	})
}
