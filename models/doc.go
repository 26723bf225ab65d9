// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, response, and error types for the API.

# Domain Types

  - User: registered account (password never serialised)
  - Quiz: titled quiz with owner and visibility flag
  - Question: one numbered multiple-choice question of a quiz
  - QuizWithQuestions: the play payload returned by GET /quiz/{id}
  - QuizSummary: one row of the browse and search listings

JSON field names mirror the attribute names of the data model:

	Quiz:     id, ownerId, title, createdAt, isPublic
	Question: quizId, number, prompt, option1..option4, correctOption, imageAssetName

# Response Types

  - CreateQuizResponse: id
  - QuizListResponse: quizzes
  - AssetListResponse: assets
  - AccountResponse: id, username
  - ErrorResponse: error, message

# Constants

Correct options are 1-indexed:

	MinOption = 1
	MaxOption = 4
*/
package models
