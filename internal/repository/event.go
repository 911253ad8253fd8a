package repository

import (
	"context"
	"errors"

	"github.com/scamp925/level-up-server/internal/database"
	"github.com/scamp925/level-up-server/internal/model"
)

// eventFetch hydrates the game (with its type and owner) and the organizer
const eventFetch = ` FETCH game, game.game_type, game.gamer, organizer`

// EventRepository handles event data access
type EventRepository struct {
	db database.Database
}

// NewEventRepository creates a new event repository
func NewEventRepository(db database.Database) *EventRepository {
	return &EventRepository{db: db}
}

// Create inserts an event. GameID and OrganizerID must reference existing records.
func (r *EventRepository) Create(ctx context.Context, event *model.Event) error {
	query := `
		CREATE event SET
			description = $description,
			date = $date,
			time = $time,
			game = type::record($game),
			organizer = type::record($organizer)
	`
	vars := map[string]interface{}{
		"description": event.Description,
		"date":        event.Date,
		"time":        event.Time,
		"game":        event.GameID,
		"organizer":   event.OrganizerID,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	created, err := firstRecord(result)
	if err != nil {
		return err
	}

	event.ID = convertSurrealID(created["id"])
	return nil
}

// Get retrieves a hydrated event by ID
func (r *EventRepository) Get(ctx context.Context, id string) (*model.Event, error) {
	if !isRecordOf(tableEvent, id) {
		return nil, nil
	}

	query := `SELECT * FROM type::record($id)` + eventFetch
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	data, err := asRecord(result)
	if err != nil {
		return nil, err
	}
	return parseEvent(data), nil
}

// List retrieves events, optionally narrowed to one game
func (r *EventRepository) List(ctx context.Context, filters model.EventFilters) ([]*model.Event, error) {
	query := `SELECT * FROM event`
	vars := map[string]interface{}{}

	if filters.GameID != nil {
		if !isRecordOf(tableGame, *filters.GameID) {
			return []*model.Event{}, nil
		}
		query += ` WHERE game = type::record($game)`
		vars["game"] = *filters.GameID
	}

	query += eventFetch

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	records := queryRecords(result)
	events := make([]*model.Event, 0, len(records))
	for _, data := range records {
		events = append(events, parseEvent(data))
	}
	return events, nil
}

// Update overwrites description, date, time and game. The organizer is kept.
func (r *EventRepository) Update(ctx context.Context, event *model.Event) error {
	query := `
		UPDATE type::record($id) SET
			description = $description,
			date = $date,
			time = $time,
			game = type::record($game)
	`
	vars := map[string]interface{}{
		"id":          event.ID,
		"description": event.Description,
		"date":        event.Date,
		"time":        event.Time,
		"game":        event.GameID,
	}

	return r.db.Execute(ctx, query, vars)
}

// Delete removes an event together with its attendance rows
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	vars := map[string]interface{}{"id": id}

	return database.NewAtomicBatch().
		Add(`DELETE event_gamer WHERE event = type::record($id)`, vars).
		Add(`DELETE type::record($id)`, vars).
		Execute(ctx, r.db)
}
