// Package store opens the configured storage backend and exposes its
// repositories behind the interfaces the services consume.
package store

import (
	"context"
	"fmt"

	"github.com/scamp925/level-up-server/internal/config"
	"github.com/scamp925/level-up-server/internal/database"
	"github.com/scamp925/level-up-server/internal/repository"
	"github.com/scamp925/level-up-server/internal/repository/sqlite"
	"github.com/scamp925/level-up-server/internal/service"
	"github.com/scamp925/level-up-server/migrations"
)

// GameTypeStore serves both lookups and seeding
type GameTypeStore interface {
	service.GameTypeRepository
	service.GameTypeSeedRepository
}

// Store is an open backend
type Store struct {
	Driver     string
	GameTypes  GameTypeStore
	Gamers     service.GamerRepository
	Games      service.GameRepository
	Events     service.EventRepository
	Attendance service.AttendanceRepository

	ping  func(ctx context.Context) error
	close func() error
}

// Ping checks the backend connection
func (s *Store) Ping(ctx context.Context) error {
	return s.ping(ctx)
}

// Close releases the backend connection
func (s *Store) Close() error {
	return s.close()
}

// Open connects to the backend selected by cfg.Driver and brings its
// schema up to date.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*Store, error) {
	switch cfg.Driver {
	case config.DriverSurrealDB:
		return openSurrealDB(ctx, cfg)
	case config.DriverSQLite:
		return openSQLite(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

func openSurrealDB(ctx context.Context, cfg config.DatabaseConfig) (*Store, error) {
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Host,
		Port:      cfg.Port,
		User:      cfg.User,
		Password:  cfg.Password,
		Namespace: cfg.Namespace,
		Database:  cfg.Database,
	})
	if err := db.Connect(ctx); err != nil {
		return nil, err
	}
	if err := database.ApplyMigrations(ctx, db, migrations.FS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{
		Driver:     config.DriverSurrealDB,
		GameTypes:  repository.NewGameTypeRepository(db),
		Gamers:     repository.NewGamerRepository(db),
		Games:      repository.NewGameRepository(db),
		Events:     repository.NewEventRepository(db),
		Attendance: repository.NewAttendanceRepository(db),
		ping:       db.Ping,
		close:      db.Close,
	}, nil
}

func openSQLite(ctx context.Context, cfg config.DatabaseConfig) (*Store, error) {
	db, err := sqlite.Open(ctx, cfg.Path)
	if err != nil {
		return nil, err
	}

	return &Store{
		Driver:     config.DriverSQLite,
		GameTypes:  db.GameTypes(),
		Gamers:     db.Gamers(),
		Games:      db.Games(),
		Events:     db.Events(),
		Attendance: db.Attendance(),
		ping:       db.Ping,
		close:      db.Close,
	}, nil
}
