// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the GloboQuiz API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, sessions, cfg)

# Endpoints

Health:

	GET /health

Accounts (form posts, session cookie):

	POST /register - Create account and sign in
	POST /login    - Sign in
	POST /logout   - Sign out
	GET  /me       - Current user

Quizzes:

	POST /quiz      - Create quiz from the authoring form (signed in)
	GET  /quiz/{id} - Quiz with questions; private quizzes of others are 404
	GET  /quizzes   - Browse, optional operator and questions filter
	GET  /search    - Title search, requires search

Flag images:

	GET /assets            - Names in the asset directory
	GET /asset?name={name} - Raw image bytes

# Handler Initialization

	st := store.New(db)
	accountHandler := handlers.NewAccountHandler(st, sessions)
	quizHandler := handlers.NewQuizHandler(st, sessions)
	assetHandler := handlers.NewAssetHandler(assets.New(cfg.AssetDir))
*/
package router
