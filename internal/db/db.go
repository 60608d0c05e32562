// Copyright (c) 2025 ToeiRei
// Keyforge - configurable key and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

// package db provides the data access layer for Keyforge's key history.
// It abstracts the underlying database (SQLite, PostgreSQL or MySQL)
// behind a consistent interface so the rest of the application can
// record and query generation history in a uniform way.
package db // import "github.com/toeirei/keyforge/internal/db"

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	// SQL drivers required at runtime.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// package-level store used by the convenience helpers.
var store Store

// sqlOpenFunc allows tests to override database opening behavior.
var sqlOpenFunc = sql.Open

// InitDB initializes the database connection for the given type and DSN
// and sets the package-level store.
func InitDB(dbType, dsn string) error {
	s, err := NewStoreFromDSN(dbType, dsn)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	store = s
	return nil
}

// IsInitialized reports whether the package-level store has been set.
func IsInitialized() bool {
	return store != nil
}

// NewStoreFromDSN opens the database identified by dbType and dsn,
// ensures the schema exists, and returns a bun-backed Store.
func NewStoreFromDSN(dbType, dsn string) (Store, error) {
	driverName := dbType
	if dbType == "postgres" {
		driverName = "pgx"
	}
	sqlDB, err := sqlOpenFunc(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dbType, err)
	}

	bunDB := createBunDB(sqlDB, dbType)
	s := &BunStore{bun: bunDB}
	if err := s.ensureSchema(context.Background()); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return s, nil
}

// createBunDB constructs a *bun.DB for the provided *sql.DB and dbType.
// Centralizing construction keeps dialect selection in one place.
func createBunDB(sqlDB *sql.DB, dbType string) *bun.DB {
	switch dbType {
	case "postgres":
		return bun.NewDB(sqlDB, pgdialect.New())
	case "mysql":
		return bun.NewDB(sqlDB, mysqldialect.New())
	default:
		return bun.NewDB(sqlDB, sqlitedialect.New())
	}
}
