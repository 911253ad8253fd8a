// Package database provides the database abstraction layer for Level Up.
//
// This package defines the Database interface that abstracts SurrealDB operations,
// allowing for clean separation between business logic and data access.
//
// # Interface Design
//
// The Database interface provides three query methods:
//   - Query: Returns one {status, result} entry per statement
//   - QueryOne: Returns the first record of the first statement
//   - Execute: No return value (for CREATE/UPDATE/DELETE mutations)
//
// # Atomic Batches
//
// AtomicBatch accumulates statements and sends them as a single
// BEGIN/COMMIT TRANSACTION block. See transaction.go.
//
// # Migrations
//
// ApplyMigrations runs every *.surql file of an fs.FS in name order.
// Schema statements use IF NOT EXISTS so repeated runs are harmless.
// The SQLite counterpart lives in the sqlitemigrate subpackage.
//
// # Error Handling
//
//   - ErrNotFound: Record does not exist
//   - ErrDuplicate: Unique index violation
//   - ErrConnection: Database connection issues
//   - ErrQuery: Query execution failures
//
// Use errors.Is() to check error types:
//
//	if errors.Is(err, database.ErrDuplicate) {
//	    // Gamer already signed up
//	}
//
// # Usage Example
//
//	db := database.NewSurrealDB(cfg)
//	if err := db.Connect(ctx); err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	result, err := db.QueryOne(ctx, "SELECT * FROM $id", map[string]interface{}{"id": eventID})
package database
