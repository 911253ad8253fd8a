// Package sqlite provides a SQLite-backed implementation of the Level Up
// repositories, for single-node deployments and in-process tests.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/scamp925/level-up-server/internal/database"
	"github.com/scamp925/level-up-server/internal/database/sqlitemigrate"
	"github.com/scamp925/level-up-server/internal/repository/sqlite/migrations"
)

// Store owns the SQLite handle shared by the repositories
type Store struct {
	sqlDB *sql.DB
}

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

func newID() string {
	return uuid.NewString()
}

// Open opens a SQLite store at path and applies embedded migrations.
// Use ":memory:" for a private in-memory database.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("storage path is required")
	}

	dsn := path
	if path != ":memory:" {
		dsn = filepath.Clean(path)
	}
	dsn += "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: open sqlite db: %v", database.ErrConnection, err)
	}
	if path == ":memory:" {
		// Each pooled connection would otherwise see its own empty database
		sqlDB.SetMaxOpenConns(1)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("%w: ping sqlite db: %v", database.ErrConnection, err)
	}
	if err := sqlitemigrate.ApplyMigrations(ctx, sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Ping checks the SQLite handle
func (s *Store) Ping(ctx context.Context) error {
	if err := s.sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", database.ErrConnection, err)
	}
	return nil
}

// GameTypes returns the game type repository
func (s *Store) GameTypes() *GameTypeRepository { return &GameTypeRepository{db: s.sqlDB} }

// Gamers returns the gamer repository
func (s *Store) Gamers() *GamerRepository { return &GamerRepository{db: s.sqlDB} }

// Games returns the game repository
func (s *Store) Games() *GameRepository { return &GameRepository{db: s.sqlDB} }

// Events returns the event repository
func (s *Store) Events() *EventRepository { return &EventRepository{db: s.sqlDB} }

// Attendance returns the attendance repository
func (s *Store) Attendance() *AttendanceRepository { return &AttendanceRepository{db: s.sqlDB} }

// wrapWriteError maps unique violations onto database.ErrDuplicate
func wrapWriteError(op string, err error) error {
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %s: %v", database.ErrDuplicate, op, err)
	}
	return fmt.Errorf("%w: %s: %v", database.ErrQuery, op, err)
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
