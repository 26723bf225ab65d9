// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/globoquiz/assets"
	"github.com/danielhkuo/globoquiz/cliparse"
	"github.com/danielhkuo/globoquiz/handlers"
	"github.com/danielhkuo/globoquiz/middleware"
	"github.com/danielhkuo/globoquiz/session"
	"github.com/danielhkuo/globoquiz/store"
)

func NewRouter(db *sql.DB, sessions *session.Manager, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	st := store.New(db)
	accountHandler := handlers.NewAccountHandler(st, sessions)
	quizHandler := handlers.NewQuizHandler(st, sessions)
	assetHandler := handlers.NewAssetHandler(assets.New(cfg.AssetDir))

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Accounts
	mux.HandleFunc("POST /register", middleware.WithLogging(accountHandler.Register))
	mux.HandleFunc("POST /login", middleware.WithLogging(accountHandler.Login))
	mux.HandleFunc("POST /logout", middleware.WithLogging(accountHandler.Logout))
	mux.HandleFunc("GET /me", middleware.WithLogging(accountHandler.Me))

	// Quizzes (reads filtered by visibility, writes need a session)
	mux.HandleFunc("POST /quiz", middleware.WithLogging(quizHandler.CreateQuiz))
	mux.HandleFunc("GET /quiz/{id}", middleware.WithLogging(quizHandler.GetQuiz))
	mux.HandleFunc("GET /quizzes", middleware.WithLogging(quizHandler.ListQuizzes))
	mux.HandleFunc("GET /search", middleware.WithLogging(quizHandler.SearchQuizzes))

	// Flag images
	mux.HandleFunc("GET /assets", middleware.WithLogging(assetHandler.ListAssets))
	mux.HandleFunc("GET /asset", middleware.WithLogging(assetHandler.GetAsset))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("globoquiz API v1"))
	})

	return mux
}
