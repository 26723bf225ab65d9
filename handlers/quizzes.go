// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/danielhkuo/globoquiz/access"
	"github.com/danielhkuo/globoquiz/middleware"
	"github.com/danielhkuo/globoquiz/models"
	"github.com/danielhkuo/globoquiz/quiz"
	"github.com/danielhkuo/globoquiz/session"
	"github.com/danielhkuo/globoquiz/store"
)

type QuizHandler struct {
	store    *store.Store
	ingestor *quiz.Ingestor
	sessions *session.Manager
}

func NewQuizHandler(st *store.Store, sessions *session.Manager) *QuizHandler {
	return &QuizHandler{
		store:    st,
		ingestor: quiz.NewIngestor(st),
		sessions: sessions,
	}
}

// CreateQuiz handles POST /quiz
func (h *QuizHandler) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r, h.sessions)
	if !ok {
		return
	}

	form, err := middleware.ParseForm(w, r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid form")
		return
	}

	quizID, err := h.ingestor.Ingest(r.Context(), userID, quiz.FieldsFromForm(form))
	if err != nil {
		writeError(w, err, "create quiz")
		return
	}

	slog.Info("quiz created", "quiz_id", quizID, "owner_id", userID)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateQuizResponse{ID: quizID})
}

// GetQuiz handles GET /quiz/{id}. Quizzes the requester may not read are
// reported as not found.
func (h *QuizHandler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	quizID := r.PathValue("id")
	if quizID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "quiz id is required")
		return
	}

	userID, ok := currentUser(w, r, h.sessions)
	if !ok {
		return
	}

	q, err := h.store.FindQuizByID(r.Context(), quizID)
	if err != nil {
		writeError(w, err, "query quiz")
		return
	}
	if !access.CanRead(userID, q) {
		writeError(w, store.ErrNotFound, "query quiz")
		return
	}

	questions, err := h.store.FindQuestionsByQuizID(r.Context(), quizID)
	if err != nil {
		writeError(w, err, "query questions")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuizWithQuestions{
		Quiz:      q,
		Questions: questions,
	})
}

// ListQuizzes handles GET /quizzes?operator=>=&questions=3
func (h *QuizHandler) ListQuizzes(w http.ResponseWriter, r *http.Request) {
	filter, err := parseQuizFilter(r)
	if err != nil {
		writeError(w, err, "parse filter")
		return
	}
	h.respondWithQuizzes(w, r, filter)
}

// SearchQuizzes handles GET /search?search=term
func (h *QuizHandler) SearchQuizzes(w http.ResponseWriter, r *http.Request) {
	term := strings.TrimSpace(r.URL.Query().Get("search"))
	if term == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "search is required")
		return
	}
	h.respondWithQuizzes(w, r, store.QuizFilter{Search: term})
}

func (h *QuizHandler) respondWithQuizzes(w http.ResponseWriter, r *http.Request, filter store.QuizFilter) {
	userID, ok := currentUser(w, r, h.sessions)
	if !ok {
		return
	}

	quizzes, err := h.store.FindQuizzesVisibleTo(r.Context(), userID, filter)
	if err != nil {
		writeError(w, err, "list quizzes")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuizListResponse{Quizzes: quizzes})
}

// parseQuizFilter reads the optional question count condition. The
// operator defaults to ">=" when only a count is given.
func parseQuizFilter(r *http.Request) (store.QuizFilter, error) {
	query := r.URL.Query()
	filter := store.QuizFilter{Search: strings.TrimSpace(query.Get("search"))}

	raw := query.Get("questions")
	if raw == "" {
		if query.Get("operator") != "" {
			return store.QuizFilter{}, fmt.Errorf("%w: operator needs questions", store.ErrInvalidFilter)
		}
		return filter, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return store.QuizFilter{}, fmt.Errorf("%w: questions must be a number", store.ErrInvalidFilter)
	}

	op := store.AtLeast
	if rawOp := query.Get("operator"); rawOp != "" {
		if op, err = store.ParseCountOp(rawOp); err != nil {
			return store.QuizFilter{}, err
		}
	}

	filter.Count = &store.CountFilter{Op: op, N: n}
	return filter, filter.Validate()
}
