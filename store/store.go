// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/danielhkuo/globoquiz/access"
	"github.com/danielhkuo/globoquiz/auth"
	"github.com/danielhkuo/globoquiz/models"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrUsernameTaken = errors.New("username already taken")
	ErrInvalidFilter = errors.New("invalid quiz filter")
)

// QuizWriter is the write side of one quiz ingestion
type QuizWriter interface {
	CreateQuiz(ctx context.Context, ownerID, title string, createdAt time.Time, isPublic bool) (string, error)
	CreateQuestion(ctx context.Context, q models.Question) error
}

// Store is the SQL persistence layer. Queries use $n placeholders, which
// both PostgreSQL and SQLite accept.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Users

// CreateUser stores a new account and returns its ID
func (s *Store) CreateUser(ctx context.Context, username, password string) (string, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM account WHERE username = $1)
	`, username).Scan(&exists)
	if err != nil {
		return "", fmt.Errorf("check username: %w", err)
	}
	if exists {
		return "", ErrUsernameTaken
	}

	userID := auth.NewRecordID()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO account (id, username, password, created_at)
		VALUES ($1, $2, $3, $4)
	`, userID, username, password, time.Now().UTC())
	if err != nil {
		// Lost a race with a concurrent registration
		if isUniqueViolation(err) {
			return "", ErrUsernameTaken
		}
		return "", fmt.Errorf("insert account: %w", err)
	}

	return userID, nil
}

// FindUserByCredentials returns the account matching both values exactly
func (s *Store) FindUserByCredentials(ctx context.Context, username, password string) (models.User, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, username, password, created_at
		FROM account
		WHERE username = $1 AND password = $2
	`, username, password)
	return scanUser(row)
}

func (s *Store) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, username, password, created_at
		FROM account
		WHERE id = $1
	`, userID)
	return scanUser(row)
}

func scanUser(row *sql.Row) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Password, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("query account: %w", err)
	}
	return u, nil
}

// Quizzes

// WithinTx runs fn in one transaction, committing only if fn returns nil
func (s *Store) WithinTx(ctx context.Context, fn func(QuizWriter) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&txWriter{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

type txWriter struct {
	tx *sql.Tx
}

func (w *txWriter) CreateQuiz(ctx context.Context, ownerID, title string, createdAt time.Time, isPublic bool) (string, error) {
	var quizID string
	err := w.tx.QueryRowContext(ctx, `
		INSERT INTO quiz (id, owner_id, title, created_at, is_public)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, auth.NewRecordID(), ownerID, title, createdAt, isPublic).Scan(&quizID)
	if err != nil {
		return "", fmt.Errorf("insert quiz: %w", err)
	}
	return quizID, nil
}

func (w *txWriter) CreateQuestion(ctx context.Context, q models.Question) error {
	var image sql.NullString
	if q.ImageAssetName != nil {
		image = sql.NullString{String: *q.ImageAssetName, Valid: true}
	}

	_, err := w.tx.ExecContext(ctx, `
		INSERT INTO question (quiz_id, number, prompt, option_1, option_2, option_3, option_4, correct_option, image_asset_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, q.QuizID, q.Number, q.Prompt, q.Option1, q.Option2, q.Option3, q.Option4, q.CorrectOption, image)
	if err != nil {
		return fmt.Errorf("insert question: %w", err)
	}
	return nil
}

// FindQuizByID returns the quiz regardless of visibility; callers apply
// access.CanRead
func (s *Store) FindQuizByID(ctx context.Context, quizID string) (models.Quiz, error) {
	var q models.Quiz
	err := s.db.QueryRowContext(ctx, `
		SELECT id, owner_id, title, created_at, is_public
		FROM quiz
		WHERE id = $1
	`, quizID).Scan(&q.ID, &q.OwnerID, &q.Title, &q.CreatedAt, &q.IsPublic)
	if err == sql.ErrNoRows {
		return models.Quiz{}, ErrNotFound
	}
	if err != nil {
		return models.Quiz{}, fmt.Errorf("query quiz: %w", err)
	}
	return q, nil
}

// FindQuestionsByQuizID returns the questions of a quiz in play order
func (s *Store) FindQuestionsByQuizID(ctx context.Context, quizID string) ([]models.Question, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT quiz_id, number, prompt, option_1, option_2, option_3, option_4, correct_option, image_asset_name
		FROM question
		WHERE quiz_id = $1
		ORDER BY number
	`, quizID)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		var q models.Question
		var image sql.NullString
		if err := rows.Scan(
			&q.QuizID, &q.Number, &q.Prompt,
			&q.Option1, &q.Option2, &q.Option3, &q.Option4,
			&q.CorrectOption, &image,
		); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		if image.Valid {
			name := image.String
			q.ImageAssetName = &name
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}

	return questions, nil
}

// FindQuizzesVisibleTo lists the quizzes requesterID may read, with owner
// and question count, ordered by title then owner username. An empty
// requesterID lists public quizzes only.
func (s *Store) FindQuizzesVisibleTo(ctx context.Context, requesterID string, filter QuizFilter) ([]models.QuizSummary, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	args := []any{requesterID}
	where := access.VisibleSQL("q.is_public", "q.owner_id", "$1")

	if filter.Search != "" {
		args = append(args, "%"+escapeLike(filter.Search)+"%")
		where += fmt.Sprintf(` AND q.title LIKE $%d ESCAPE '\'`, len(args))
	}

	query := `
		SELECT q.id, q.title, q.owner_id, a.username, q.is_public, q.created_at, COUNT(*) AS question_count
		FROM quiz q
		JOIN account a ON a.id = q.owner_id
		JOIN question qu ON qu.quiz_id = q.id
		WHERE ` + where + `
		GROUP BY q.id, q.title, q.owner_id, a.username, q.is_public, q.created_at`

	if filter.Count != nil {
		args = append(args, filter.Count.N)
		query += fmt.Sprintf(`
		HAVING COUNT(*) %s $%d`, filter.Count.Op, len(args))
	}

	query += `
		ORDER BY q.title, a.username`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query quizzes: %w", err)
	}
	defer rows.Close()

	quizzes := []models.QuizSummary{}
	for rows.Next() {
		var qs models.QuizSummary
		if err := rows.Scan(
			&qs.ID, &qs.Title, &qs.OwnerID, &qs.OwnerUsername,
			&qs.IsPublic, &qs.CreatedAt, &qs.QuestionCount,
		); err != nil {
			return nil, fmt.Errorf("scan quiz: %w", err)
		}
		quizzes = append(quizzes, qs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quizzes: %w", err)
	}

	return quizzes, nil
}

// escapeLike makes s match literally inside a LIKE pattern using '\' as
// the escape character
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505" // unique_violation
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		case sqlite3.SQLITE_CONSTRAINT:
			return strings.Contains(liteErr.Error(), "UNIQUE")
		}
	}

	return false
}
