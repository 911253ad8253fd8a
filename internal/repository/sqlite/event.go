package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/scamp925/level-up-server/internal/database"
	"github.com/scamp925/level-up-server/internal/model"
)

// eventSelect hydrates an event with its game (type and owner included)
// and its organizer
const eventSelect = `
	SELECT e.id, e.description, e.date, e.time,
		g.id, g.title, g.maker, g.number_of_players, g.skill_level,
		gt.id, gt.label,
		owner.id, owner.uid, owner.bio, owner.created_on,
		org.id, org.uid, org.bio, org.created_on
	FROM events e
	JOIN games g ON g.id = e.game_id
	JOIN game_types gt ON gt.id = g.game_type_id
	JOIN gamers owner ON owner.id = g.gamer_id
	JOIN gamers org ON org.id = e.organizer_id`

// EventRepository handles event rows
type EventRepository struct {
	db *sql.DB
}

// Create inserts an event
func (r *EventRepository) Create(ctx context.Context, event *model.Event) error {
	id := newID()
	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO events (id, description, date, time, game_id, organizer_id)
		VALUES (?, ?, ?, ?, ?, ?)`,
		id, event.Description, event.Date, event.Time, event.GameID, event.OrganizerID,
	); err != nil {
		return wrapWriteError("create event", err)
	}
	event.ID = id
	return nil
}

// Get retrieves a hydrated event by ID
func (r *EventRepository) Get(ctx context.Context, id string) (*model.Event, error) {
	row := r.db.QueryRowContext(ctx, eventSelect+` WHERE e.id = ?`, id)
	event, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

// List retrieves events in insertion order, optionally filtered by game
func (r *EventRepository) List(ctx context.Context, filters model.EventFilters) ([]*model.Event, error) {
	query := eventSelect
	var args []any
	if filters.GameID != nil {
		query += ` WHERE e.game_id = ?`
		args = append(args, *filters.GameID)
	}
	query += ` ORDER BY e.rowid ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	events := make([]*model.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

// Update overwrites description, date, time and game. The organizer is kept.
func (r *EventRepository) Update(ctx context.Context, event *model.Event) error {
	if _, err := r.db.ExecContext(ctx, `
		UPDATE events SET description = ?, date = ?, time = ?, game_id = ?
		WHERE id = ?`,
		event.Description, event.Date, event.Time, event.GameID, event.ID,
	); err != nil {
		return wrapWriteError("update event", err)
	}
	return nil
}

// Delete removes an event together with its attendance rows
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin delete event: %v", database.ErrQuery, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM event_gamers WHERE event_id = ?`, id); err != nil {
		return fmt.Errorf("%w: delete event attendance: %v", database.ErrQuery, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id); err != nil {
		return fmt.Errorf("%w: delete event: %v", database.ErrQuery, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit delete event: %v", database.ErrQuery, err)
	}
	return nil
}

func scanEvent(row rowScanner) (*model.Event, error) {
	var (
		e                        model.Event
		g                        model.Game
		gt                       model.GameType
		owner, organizer         model.Gamer
		ownerCreated, orgCreated int64
	)
	if err := row.Scan(
		&e.ID, &e.Description, &e.Date, &e.Time,
		&g.ID, &g.Title, &g.Maker, &g.NumberOfPlayers, &g.SkillLevel,
		&gt.ID, &gt.Label,
		&owner.ID, &owner.UID, &owner.Bio, &ownerCreated,
		&organizer.ID, &organizer.UID, &organizer.Bio, &orgCreated,
	); err != nil {
		return nil, err
	}
	owner.CreatedOn = fromMillis(ownerCreated)
	organizer.CreatedOn = fromMillis(orgCreated)

	g.GameTypeID = gt.ID
	g.GamerID = owner.ID
	g.GameType = &gt
	g.Gamer = &owner

	e.GameID = g.ID
	e.OrganizerID = organizer.ID
	e.Game = &g
	e.Organizer = &organizer
	return &e, nil
}
