// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the GloboQuiz API.

# Handler Types

Each handler is a struct over its collaborators:

  - AccountHandler: registration, sign in and out, current user
  - QuizHandler: quiz authoring, play payload, browse and search
  - AssetHandler: flag gallery and raw flag images

	quizHandler := handlers.NewQuizHandler(store.New(db), sessions)

# Sessions

The requester is read from the session cookie on every request. An expired
or tampered cookie means anonymous; anonymous requesters may read
public quizzes but cannot author.

# Errors

Domain packages return sentinel and typed errors. Handlers choose status
codes in one place:

	*quiz.ValidationError          400
	store.ErrInvalidFilter         400
	access.ErrDenied               403
	assets.ErrPathEscape           403
	store.ErrNotFound              404
	store.ErrUsernameTaken         409

Quizzes the requester may not read answer 404 exactly like missing ones.
*/
package handlers
