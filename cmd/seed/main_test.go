package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scamp925/level-up-server/internal/repository/sqlite"
	"github.com/scamp925/level-up-server/internal/service"
)

func seedEnv(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.db")
	t.Setenv("SERVER_ENV", "test")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", path)
	t.Setenv("OTEL_ENABLED", "false")
	return path
}

func TestRun_SeedsDefaultsAsJSON(t *testing.T) {
	path := seedEnv(t)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-json"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	var result service.SeedResult
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &result))
	assert.Equal(t, len(service.DefaultGameTypes), result.Created)

	stdout.Reset()
	code = run(nil, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "Seeded 0 game types")

	s, err := sqlite.Open(context.Background(), path)
	require.NoError(t, err)
	defer s.Close()
	types, err := s.GameTypes().List(context.Background())
	require.NoError(t, err)
	assert.Len(t, types, len(service.DefaultGameTypes))
}

func TestRun_SeedFailureClosesStore(t *testing.T) {
	path := seedEnv(t)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-types", "Board game," + strings.Repeat("x", 51)}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Error seeding game types")

	// The WAL file is removed when the last connection closes
	_, err := os.Stat(path + "-wal")
	assert.True(t, os.IsNotExist(err), "expected %s-wal to be gone after run returns", path)
}

func TestRun_BadFlag(t *testing.T) {
	seedEnv(t)

	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run([]string{"-nope"}, &stdout, &stderr))
}
