// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the GloboQuiz API server.

GloboQuiz is a flag quiz platform. Signed-in users author quizzes whose
questions show a flag image and four options; quizzes are public or
private to their owner.

# Starting the Server

With defaults the server uses SQLite and in-memory sessions:

	SESSION_SECRET=change-me go run . -d globoquiz.db

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." --redis redis://localhost:6379/0

# Configuration

Settings come from a .env file, the environment and CLI flags, in that
order of increasing precedence:

  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): SQLite file path or Postgres connection string
  - SESSION_SECRET (--session-secret): HMAC key for session cookies
  - SESSION_TTL: session lifetime (default: 24h)
  - REDIS_URL (--redis): session store; in memory if empty
  - ASSET_DIR (--assets): flag image directory (default: flags)
  - ALLOWED_ORIGINS: comma separated CORS origins
  - LOG_LEVEL, LOG_FORMAT: slog level and text or json output
  - PORT (-p): Server port (default: 3318)

# Architecture

  - handlers: HTTP request handlers (accounts, quizzes, assets)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON and form helpers
  - quiz: Authoring form parsing and atomic ingestion
  - access: Quiz visibility rule
  - assets: Confinement of asset names to the asset directory
  - store: SQL persistence
  - session: Cookie sessions over memory or redis
  - auth: Password hashing and token signing
  - db: Connection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
