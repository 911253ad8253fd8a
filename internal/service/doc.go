// Package service implements the business logic layer for the Level Up API.
//
// Services validate typed request payloads, resolve referenced entities
// and orchestrate repository calls. They sit between HTTP handlers and
// the storage implementations.
//
// # Repository Interfaces
//
// Services define the repository interfaces they consume. Both the
// SurrealDB repositories and the SQLite store satisfy them, and tests
// substitute function-field mocks.
//
// Repositories return nil, nil for a missing row. Services turn that into
// one of the sentinel errors in errors.go, so every lookup by id or uid
// fails the same way:
//
//	var (
//	    ErrEventNotFound   = errors.New("event not found")
//	    ErrAlreadySignedUp = errors.New("gamer already signed up for this event")
//	)
//
// # Example Usage
//
//	svc := NewEventService(EventServiceConfig{
//	    EventRepo:      events,
//	    GameRepo:       games,
//	    GamerRepo:      gamers,
//	    AttendanceRepo: attendance,
//	})
//	event, err := svc.Create(ctx, &model.CreateEventRequest{...})
package service
