// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package quiz

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/danielhkuo/globoquiz/access"
	"github.com/danielhkuo/globoquiz/models"
	"github.com/danielhkuo/globoquiz/store"
)

// ValidationError reports a missing or malformed form field. Nothing has
// been written when it is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

// PersistenceError wraps a store failure. The whole quiz was rolled back.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Draft is a validated quiz that has not been stored yet
type Draft struct {
	Title     string
	IsPublic  bool
	Questions []models.Question // QuizID unset, Number 1..k
}

// Parse validates a quiz authoring form.
//
// Question groups are read from n = 1 upwards while question-<n>-prompt is
// present; the first missing n ends the scan and any later groups are
// ignored.
func Parse(fields Fields) (Draft, error) {
	title, _ := fields.Lookup(KeyTitle)
	title = strings.TrimSpace(title)
	if title == "" {
		return Draft{}, &ValidationError{Field: KeyTitle, Reason: "title is required"}
	}

	// An unchecked checkbox is simply not submitted
	_, isPublic := fields.Lookup(KeyPublic)

	draft := Draft{Title: title, IsPublic: isPublic}
	for n := 1; ; n++ {
		prompt, ok := fields.Lookup(QuestionKey(n, SlotPrompt))
		if !ok {
			break
		}
		q, err := parseQuestion(fields, n, prompt)
		if err != nil {
			return Draft{}, err
		}
		draft.Questions = append(draft.Questions, q)
	}

	if len(draft.Questions) == 0 {
		return Draft{}, &ValidationError{
			Field:  QuestionKey(1, SlotPrompt),
			Reason: "at least one question is required",
		}
	}

	return draft, nil
}

func parseQuestion(fields Fields, n int, prompt string) (models.Question, error) {
	q := models.Question{Number: n, Prompt: strings.TrimSpace(prompt)}
	if q.Prompt == "" {
		return models.Question{}, &ValidationError{Field: QuestionKey(n, SlotPrompt), Reason: "prompt is required"}
	}

	var options [4]string
	for i := range options {
		key := QuestionKey(n, OptionSlot(i+1))
		v, _ := fields.Lookup(key)
		options[i] = strings.TrimSpace(v)
		if options[i] == "" {
			return models.Question{}, &ValidationError{Field: key, Reason: "option is required"}
		}
	}
	q.Option1, q.Option2, q.Option3, q.Option4 = options[0], options[1], options[2], options[3]

	answerKey := QuestionKey(n, SlotAnswer)
	raw, ok := fields.Lookup(answerKey)
	if !ok {
		return models.Question{}, &ValidationError{Field: answerKey, Reason: "answer is required"}
	}
	answer, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || answer < models.MinOption || answer > models.MaxOption {
		return models.Question{}, &ValidationError{
			Field:  answerKey,
			Reason: fmt.Sprintf("answer must be a number from %d to %d", models.MinOption, models.MaxOption),
		}
	}
	q.CorrectOption = answer

	if flag, ok := fields.Lookup(QuestionKey(n, SlotFlag)); ok {
		if flag = strings.TrimSpace(flag); flag != "" {
			q.ImageAssetName = &flag
		}
	}

	return q, nil
}

// TxRunner runs fn inside a single unit of work that commits only when fn
// returns nil
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(store.QuizWriter) error) error
}

// Ingestor turns authoring forms into stored quizzes
type Ingestor struct {
	store TxRunner

	// Now stamps CreatedAt; replaced in tests
	Now func() time.Time
}

func NewIngestor(s TxRunner) *Ingestor {
	return &Ingestor{store: s, Now: time.Now}
}

// Ingest validates fields and stores the quiz and its questions owned by
// ownerID. It returns access.ErrDenied for anonymous owners, a
// *ValidationError for bad input and a *PersistenceError when the store
// fails. On any error no rows are left behind.
func (in *Ingestor) Ingest(ctx context.Context, ownerID string, fields Fields) (string, error) {
	if !access.CanWrite(ownerID, access.ActionCreateQuiz) {
		return "", access.ErrDenied
	}

	draft, err := Parse(fields)
	if err != nil {
		return "", err
	}

	var quizID string
	err = in.store.WithinTx(ctx, func(w store.QuizWriter) error {
		id, err := w.CreateQuiz(ctx, ownerID, draft.Title, in.Now().UTC(), draft.IsPublic)
		if err != nil {
			return &PersistenceError{Op: "create quiz", Err: err}
		}

		for _, q := range draft.Questions {
			q.QuizID = id
			if err := w.CreateQuestion(ctx, q); err != nil {
				return &PersistenceError{Op: fmt.Sprintf("create question %d", q.Number), Err: err}
			}
		}

		quizID = id
		return nil
	})
	if err != nil {
		var perr *PersistenceError
		if errors.As(err, &perr) {
			return "", err
		}
		return "", &PersistenceError{Op: "store quiz", Err: err}
	}

	return quizID, nil
}
