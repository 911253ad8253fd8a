// Package repository implements the SurrealDB data access layer for the Level Up API.
//
// Each repository struct handles the operations for one record table:
// game_type, gamer, game, event and event_gamer (attendance).
//
// # Repository Pattern
//
//   - Constructor function (NewXxxRepository) accepts a database.Database
//   - Lookups return (nil, nil) when the record does not exist; the
//     service layer turns that into its not-found error
//   - Ids are full record ids ("event:x1y2"); an id naming another table is
//     treated as not found
//   - Reads return hydrated entities: games fetch their game type and owner,
//     events fetch their game (with type and owner) and organizer
//
// # Query Patterns
//
//   - Parameterized queries with $variable syntax
//   - type::record() for record ids and record links
//   - FETCH for hydrating record links in one round trip
//   - database.AtomicBatch when an event is deleted with its attendance rows
//
// The SQLite subpackage implements the same contracts for single-node use.
package repository
