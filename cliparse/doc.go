// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from .env files, environment
variables, and command-line flags.

# Configuration

	if err := cliparse.LoadDotEnv(".env"); err != nil {
		log.Fatal(err)
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])

Precedence, lowest first: .env file, process environment, CLI flags.
Variables already set in the environment are not overwritten by .env.

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: SQLite file path or PostgreSQL connection string (required)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - SessionSecret: HMAC key for session cookies (required)
  - SessionTTL: Session lifetime (default: 24h)
  - CookieSecure: Mark session cookies Secure
  - AssetDir: Flag image directory (default: flags)
  - RedisURL: Redis session backend; in-memory when empty
  - AllowedOrigins: CORS origins allowed to send credentials
  - LogLevel, LogFormat: slog level (info) and handler (text or json)

# CLI Flags

	-p               Server port
	-d               Database URL
	-t               Database type
	-assets          Flag image directory
	-redis           Redis URL
	-session-secret  Session secret

# Environment Variables

	PORT, DATABASE_URL, DATABASE_TYPE, SESSION_SECRET, SESSION_TTL,
	COOKIE_SECURE, ASSET_DIR, REDIS_URL, ALLOWED_ORIGINS (comma separated),
	LOG_LEVEL, LOG_FORMAT

# Validation

ParseFlags returns an error if:

  - DATABASE_URL or SESSION_SECRET is missing
  - DATABASE_TYPE is not sqlite or postgres
  - PORT is out of range, LOG_LEVEL or LOG_FORMAT is unknown
*/
package cliparse
