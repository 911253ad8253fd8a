package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scamp925/level-up-server/internal/config"
	"github.com/scamp925/level-up-server/internal/model"
	"github.com/scamp925/level-up-server/internal/store"
)

func TestOpen_SQLite(t *testing.T) {
	ctx := context.Background()

	s, err := store.Open(ctx, config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "levelup.db"),
	})
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, config.DriverSQLite, s.Driver)
	require.NoError(t, s.Ping(ctx))

	require.NoError(t, s.GameTypes.Create(ctx, &model.GameType{Label: "Party game"}))
	types, err := s.GameTypes.List(ctx)
	require.NoError(t, err)
	assert.Len(t, types, 1)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := store.Open(context.Background(), config.DatabaseConfig{Driver: "postgres"})
	assert.ErrorContains(t, err, "unknown database driver")
}
