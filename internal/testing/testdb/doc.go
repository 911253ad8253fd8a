// Package testdb provides SurrealDB test database utilities for the Level Up API.
//
// # Test Database Setup
//
//	func TestSomething(t *testing.T) {
//	    tdb := testdb.New(t)
//	    defer tdb.Close()
//	}
//
// New applies the embedded schema from the migrations package, and skips
// the test when SurrealDB cannot be reached (or under -short).
//
// # Isolation
//
// Each TestDB gets its own namespace, removed again by Close.
//
// # Configuration
//
//	TEST_DB_HOST, TEST_DB_PORT, TEST_DB_USER, TEST_DB_PASSWORD
package testdb
