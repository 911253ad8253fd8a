package database

// Atomic batches for Level Up
//
// SurrealDB transactions are BATCH-BASED: statements accumulate in memory
// and are sent as one BEGIN TRANSACTION / COMMIT TRANSACTION block. Either
// every statement applies or none does. There is no isolation between Add()
// calls, so read-then-write logic belongs in the service before the batch.
//
//	batch := NewAtomicBatch()
//	batch.Add("DELETE event_gamer WHERE event = $event", vars)
//	batch.Add("DELETE $event", vars)
//	batch.Execute(ctx, db) // All or nothing

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// TxBuilder builds atomic transaction queries with automatic variable namespacing.
// Two statements that both bind $event get $v1_event and $v2_event.
type TxBuilder struct {
	statements []string
	vars       map[string]interface{}
	counter    int
}

// NewTxBuilder creates a new transaction builder
func NewTxBuilder() *TxBuilder {
	return &TxBuilder{
		vars: make(map[string]interface{}),
	}
}

// Add appends a statement, renaming its variables so they cannot collide
// with variables of earlier statements.
func (tb *TxBuilder) Add(query string, vars map[string]interface{}) {
	tb.counter++

	// Longest names first so $event is not rewritten inside $event_id
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return len(names[i]) > len(names[j]) })

	replacements := make([]string, 0, len(names)*2)
	for _, name := range names {
		renamed := fmt.Sprintf("v%d_%s", tb.counter, name)
		replacements = append(replacements, "$"+name, "$"+renamed)
		tb.vars[renamed] = vars[name]
	}

	tb.statements = append(tb.statements, strings.NewReplacer(replacements...).Replace(query))
}

// Len returns the number of statements added so far
func (tb *TxBuilder) Len() int {
	return len(tb.statements)
}

// Build returns the complete transaction query and merged variables
func (tb *TxBuilder) Build() (string, map[string]interface{}) {
	if len(tb.statements) == 0 {
		return "", nil
	}

	var sb strings.Builder
	sb.WriteString("BEGIN TRANSACTION;\n")
	for _, stmt := range tb.statements {
		sb.WriteString(strings.TrimSuffix(strings.TrimSpace(stmt), ";"))
		sb.WriteString(";\n")
	}
	sb.WriteString("COMMIT TRANSACTION;")

	return sb.String(), tb.vars
}

// ExecuteTransaction executes a transaction built with TxBuilder
func ExecuteTransaction(ctx context.Context, db Database, tb *TxBuilder) ([]interface{}, error) {
	query, vars := tb.Build()
	if query == "" {
		return nil, nil
	}

	return db.Query(ctx, query, vars)
}

// AtomicBatch is a fluent wrapper over TxBuilder for a handful of
// statements that must succeed together.
type AtomicBatch struct {
	tb *TxBuilder
}

// NewAtomicBatch creates a new atomic batch
func NewAtomicBatch() *AtomicBatch {
	return &AtomicBatch{tb: NewTxBuilder()}
}

// Add adds a query to the batch
func (ab *AtomicBatch) Add(query string, vars map[string]interface{}) *AtomicBatch {
	ab.tb.Add(query, vars)
	return ab
}

// Execute runs all queries as a single transaction
func (ab *AtomicBatch) Execute(ctx context.Context, db Database) error {
	_, err := ExecuteTransaction(ctx, db, ab.tb)
	return err
}

// Len returns the number of queries in the batch
func (ab *AtomicBatch) Len() int {
	return ab.tb.Len()
}
