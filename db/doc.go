// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Connections

Open selects the driver from the configured type:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

  - sqlite: modernc.org/sqlite, URL is a file path (default)
  - postgres: github.com/lib/pq, URL is a connection string

SQLite connections enable foreign keys and a 5s busy timeout, and are
limited to one open connection.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - account: registered users
  - quiz: quiz metadata, owner and visibility
  - question: numbered questions of a quiz

# Relationships

	account 1──* quiz
	quiz    1──* question (ordered by number)

All foreign keys use ON DELETE CASCADE.
*/
package db
