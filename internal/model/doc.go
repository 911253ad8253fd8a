// Package model defines domain entities and data structures for the Level Up API.
//
// The model package contains the struct definitions for domain objects,
// request payloads, wire projections, and error definitions. Models are used
// across all layers of the application.
//
// # Domain Entities
//
//   - GameType: category label for games
//   - Gamer: registered player, identified externally by uid
//   - Game: catalog entry owned by a gamer and classified by a game type
//   - Event: scheduled session for one game, created by an organizer
//   - EventGamer: attendance record linking a gamer to an event
//
// # Request Payloads
//
// Every write operation decodes into a typed request struct with a
// Validate method returning field errors:
//
//	var req model.CreateEventRequest
//	if errs := req.Validate(); len(errs) > 0 {
//	    // 400 with per-field errors
//	}
//
// # Resources
//
// Responses never serialize entities directly. resource.go defines one
// projection per entity with a fixed field set and fixed nesting.
//
// # Error Types
//
// RFC 9457 Problem Details errors are defined in errors.go.
package model
