// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package quiz parses quiz authoring forms and stores them atomically.

# Form Fields

	quiz-title                  required, non-empty
	quiz-public                 present = public, absent = private
	question-<n>-prompt         required, n = 1, 2, ...
	question-<n>-option-1..4    required
	question-<n>-answer         1-4
	question-<n>-flag           optional asset name

Groups are scanned from n = 1 until the first n without a prompt. A form
with groups 1, 2 and 4 stores two questions.

# Ingestion

	ingestor := quiz.NewIngestor(st)
	quizID, err := ingestor.Ingest(ctx, userID, quiz.FieldsFromForm(r.PostForm))

Errors:

  - access.ErrDenied: anonymous owner
  - *ValidationError: missing or malformed field
  - *PersistenceError: store failure, rolled back

The quiz row and every question row are written in one transaction, so a
failed ingestion never leaves a partial quiz.
*/
package quiz
