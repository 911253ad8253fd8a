package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/scamp925/level-up-server/internal/database"
	"github.com/scamp925/level-up-server/internal/model"
)

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	Get(ctx context.Context, id string) (*model.Event, error)
	List(ctx context.Context, filters model.EventFilters) ([]*model.Event, error)
	Update(ctx context.Context, event *model.Event) error
	// Delete must remove the event's attendance rows with it
	Delete(ctx context.Context, id string) error
}

// AttendanceRepository defines the interface for event attendance storage
type AttendanceRepository interface {
	Create(ctx context.Context, attendance *model.EventGamer) error
	Get(ctx context.Context, eventID, gamerID string) (*model.EventGamer, error)
	Delete(ctx context.Context, id string) error
	ListGamers(ctx context.Context, eventID string) ([]*model.Gamer, error)
}

// EventService handles event scheduling and attendance
type EventService struct {
	events     EventRepository
	games      GameRepository
	gamers     GamerRepository
	attendance AttendanceRepository
}

// EventServiceConfig holds the dependencies of the event service
type EventServiceConfig struct {
	EventRepo      EventRepository
	GameRepo       GameRepository
	GamerRepo      GamerRepository
	AttendanceRepo AttendanceRepository
}

// NewEventService creates a new event service
func NewEventService(cfg EventServiceConfig) *EventService {
	return &EventService{
		events:     cfg.EventRepo,
		games:      cfg.GameRepo,
		gamers:     cfg.GamerRepo,
		attendance: cfg.AttendanceRepo,
	}
}

// Get retrieves an event with its game and organizer
func (s *EventService) Get(ctx context.Context, id string) (*model.Event, error) {
	return s.resolveEvent(ctx, id)
}

// List returns all events, or only those for gameID when it is set
func (s *EventService) List(ctx context.Context, gameID string) ([]*model.Event, error) {
	var filters model.EventFilters
	if gameID != "" {
		filters.GameID = &gameID
	}

	events, err := s.events.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// Create schedules an event. The game and organizer must exist; nothing is
// written when either is missing.
func (s *EventService) Create(ctx context.Context, req *model.CreateEventRequest) (*model.Event, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, model.NewInvalidPayloadError(errs)
	}

	game, err := resolveGame(ctx, s.games, req.Game)
	if err != nil {
		return nil, err
	}
	organizer, err := resolveGamer(ctx, s.gamers, req.Organizer)
	if err != nil {
		return nil, err
	}

	event := &model.Event{
		Description: strings.TrimSpace(req.Description),
		Date:        req.Date,
		Time:        req.Time,
		GameID:      game.ID,
		OrganizerID: organizer.ID,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	event.Game = game
	event.Organizer = organizer
	return event, nil
}

// Update overwrites the event's description, date, time and game
func (s *EventService) Update(ctx context.Context, id string, req *model.UpdateEventRequest) (*model.Event, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, model.NewInvalidPayloadError(errs)
	}

	event, err := s.resolveEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	game, err := resolveGame(ctx, s.games, req.Game)
	if err != nil {
		return nil, err
	}

	event.Description = strings.TrimSpace(req.Description)
	event.Date = req.Date
	event.Time = req.Time
	event.GameID = game.ID
	event.Game = game

	if err := s.events.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return event, nil
}

// Delete removes an event and everyone's attendance of it
func (s *EventService) Delete(ctx context.Context, id string) error {
	event, err := s.resolveEvent(ctx, id)
	if err != nil {
		return err
	}
	if err := s.events.Delete(ctx, event.ID); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

// Signup adds the gamer to the event
func (s *EventService) Signup(ctx context.Context, eventID string, req *model.GamerUIDRequest) (*model.EventGamer, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, model.NewInvalidPayloadError(errs)
	}

	event, err := s.resolveEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	gamer, err := resolveGamer(ctx, s.gamers, req.UID)
	if err != nil {
		return nil, err
	}

	existing, err := s.attendance.Get(ctx, event.ID, gamer.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check attendance: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadySignedUp
	}

	attendance := &model.EventGamer{EventID: event.ID, GamerID: gamer.ID}
	if err := s.attendance.Create(ctx, attendance); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrAlreadySignedUp
		}
		return nil, fmt.Errorf("failed to sign up: %w", err)
	}
	return attendance, nil
}

// Leave removes the gamer from the event
func (s *EventService) Leave(ctx context.Context, eventID string, req *model.GamerUIDRequest) error {
	if errs := req.Validate(); len(errs) > 0 {
		return model.NewInvalidPayloadError(errs)
	}

	event, err := s.resolveEvent(ctx, eventID)
	if err != nil {
		return err
	}
	gamer, err := resolveGamer(ctx, s.gamers, req.UID)
	if err != nil {
		return err
	}

	attendance, err := s.attendance.Get(ctx, event.ID, gamer.ID)
	if err != nil {
		return fmt.Errorf("failed to check attendance: %w", err)
	}
	if attendance == nil {
		return ErrAttendanceNotFound
	}

	if err := s.attendance.Delete(ctx, attendance.ID); err != nil {
		return fmt.Errorf("failed to leave event: %w", err)
	}
	return nil
}

// Attendees lists the gamers signed up for the event in signup order
func (s *EventService) Attendees(ctx context.Context, eventID string) ([]*model.Gamer, error) {
	event, err := s.resolveEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	gamers, err := s.attendance.ListGamers(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendees: %w", err)
	}
	return gamers, nil
}

func (s *EventService) resolveEvent(ctx context.Context, id string) (*model.Event, error) {
	event, err := s.events.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	return event, nil
}
