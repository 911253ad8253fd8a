package database

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

// recordingDB captures queries sent through the Database interface
type recordingDB struct {
	queries []string
	vars    []map[string]interface{}
	err     error
}

func (r *recordingDB) Connect(ctx context.Context) error { return nil }
func (r *recordingDB) Close() error                      { return nil }
func (r *recordingDB) Ping(ctx context.Context) error    { return nil }

func (r *recordingDB) Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error) {
	r.queries = append(r.queries, query)
	r.vars = append(r.vars, vars)
	return nil, r.err
}

func (r *recordingDB) QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error) {
	_, err := r.Query(ctx, query, vars)
	return nil, err
}

func (r *recordingDB) Execute(ctx context.Context, query string, vars map[string]interface{}) error {
	_, err := r.Query(ctx, query, vars)
	return err
}

func TestTxBuilder_NamespacesVariables(t *testing.T) {
	tb := NewTxBuilder()
	tb.Add("DELETE event_gamer WHERE event = $event", map[string]interface{}{"event": "event:1"})
	tb.Add("DELETE $event", map[string]interface{}{"event": "event:2"})

	query, vars := tb.Build()

	if !strings.HasPrefix(query, "BEGIN TRANSACTION;") || !strings.HasSuffix(query, "COMMIT TRANSACTION;") {
		t.Fatalf("expected transaction block, got %q", query)
	}
	if !strings.Contains(query, "WHERE event = $v1_event;") {
		t.Errorf("expected first statement renamed, got %q", query)
	}
	if !strings.Contains(query, "DELETE $v2_event;") {
		t.Errorf("expected second statement renamed, got %q", query)
	}
	if vars["v1_event"] != "event:1" || vars["v2_event"] != "event:2" {
		t.Errorf("unexpected vars %v", vars)
	}
}

func TestTxBuilder_PrefixVariableNames(t *testing.T) {
	tb := NewTxBuilder()
	tb.Add("UPDATE $event SET game = $event_game", map[string]interface{}{
		"event":      "event:1",
		"event_game": "game:1",
	})

	query, vars := tb.Build()

	if !strings.Contains(query, "UPDATE $v1_event SET game = $v1_event_game;") {
		t.Errorf("expected both variables renamed independently, got %q", query)
	}
	if len(vars) != 2 {
		t.Errorf("expected 2 vars, got %v", vars)
	}
}

func TestTxBuilder_EmptyBuild(t *testing.T) {
	query, vars := NewTxBuilder().Build()
	if query != "" || vars != nil {
		t.Errorf("expected empty build, got %q %v", query, vars)
	}
}

func TestAtomicBatch_ExecutesOnce(t *testing.T) {
	db := &recordingDB{}

	batch := NewAtomicBatch().
		Add("DELETE event_gamer WHERE event = $event", map[string]interface{}{"event": "event:1"}).
		Add("DELETE $event", map[string]interface{}{"event": "event:1"})

	if batch.Len() != 2 {
		t.Fatalf("expected 2 statements, got %d", batch.Len())
	}
	if err := batch.Execute(context.Background(), db); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(db.queries) != 1 {
		t.Fatalf("expected a single round trip, got %d", len(db.queries))
	}
}

func TestAtomicBatch_EmptyIsNoop(t *testing.T) {
	db := &recordingDB{}

	if err := NewAtomicBatch().Execute(context.Background(), db); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(db.queries) != 0 {
		t.Errorf("expected no queries, got %d", len(db.queries))
	}
}

func TestAtomicBatch_PropagatesError(t *testing.T) {
	db := &recordingDB{err: ErrDuplicate}

	err := NewAtomicBatch().Add("CREATE event_gamer", nil).Execute(context.Background(), db)
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}
}

func TestClassifyError(t *testing.T) {
	dup := classifyError(
		"The query was not executed due to a failed transaction",
		"Database index `event_gamer_unique` already contains [event:1, gamer:1], with record `event_gamer:abc`",
	)
	if !errors.Is(dup, ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", dup)
	}

	q := classifyError(
		"The query was not executed due to a failed transaction",
		"Parse error: unexpected token",
	)
	if !errors.Is(q, ErrQuery) || !strings.Contains(q.Error(), "Parse error") {
		t.Errorf("expected ErrQuery carrying the real failure, got %v", q)
	}
}

func TestApplyMigrations_RunsSurqlInOrder(t *testing.T) {
	db := &recordingDB{}
	fsys := fstest.MapFS{
		"002_indexes.surql": &fstest.MapFile{Data: []byte("DEFINE INDEX IF NOT EXISTS b ON gamer FIELDS uid UNIQUE;")},
		"001_tables.surql":  &fstest.MapFile{Data: []byte("DEFINE TABLE IF NOT EXISTS gamer SCHEMAFULL;")},
		"embed.go":          &fstest.MapFile{Data: []byte("package migrations")},
	}

	if err := ApplyMigrations(context.Background(), db, fsys); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(db.queries) != 2 {
		t.Fatalf("expected 2 migrations, got %d", len(db.queries))
	}
	if !strings.Contains(db.queries[0], "DEFINE TABLE") {
		t.Errorf("expected tables first, got %q", db.queries[0])
	}
}

func TestApplyMigrations_WrapsFailure(t *testing.T) {
	db := &recordingDB{err: ErrQuery}
	fsys := fstest.MapFS{
		"001_tables.surql": &fstest.MapFile{Data: []byte("DEFINE TABLE broken")},
	}

	err := ApplyMigrations(context.Background(), db, fsys)
	if !errors.Is(err, ErrQuery) || !strings.Contains(err.Error(), "001_tables.surql") {
		t.Errorf("expected wrapped ErrQuery naming the file, got %v", err)
	}
}
