package repository

import (
	"context"
	"errors"

	"github.com/scamp925/level-up-server/internal/database"
	"github.com/scamp925/level-up-server/internal/model"
)

// AttendanceRepository handles event_gamer rows linking gamers to events
type AttendanceRepository struct {
	db database.Database
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db database.Database) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// Create adds a gamer to an event. Returns database.ErrDuplicate when the
// gamer already attends.
func (r *AttendanceRepository) Create(ctx context.Context, attendance *model.EventGamer) error {
	query := `
		CREATE event_gamer SET
			event = type::record($event),
			gamer = type::record($gamer),
			created_on = time::now()
	`
	vars := map[string]interface{}{
		"event": attendance.EventID,
		"gamer": attendance.GamerID,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	created, err := firstRecord(result)
	if err != nil {
		return err
	}

	attendance.ID = convertSurrealID(created["id"])
	attendance.CreatedOn = getTime(created, "created_on")
	return nil
}

// Get retrieves the attendance row for a gamer and event
func (r *AttendanceRepository) Get(ctx context.Context, eventID, gamerID string) (*model.EventGamer, error) {
	if !isRecordOf(tableEvent, eventID) || !isRecordOf(tableGamer, gamerID) {
		return nil, nil
	}

	query := `
		SELECT * FROM event_gamer
		WHERE event = type::record($event) AND gamer = type::record($gamer)
		LIMIT 1
	`
	vars := map[string]interface{}{
		"event": eventID,
		"gamer": gamerID,
	}

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
	return parseEventGamer(data), nil
}

// Delete removes an attendance row by ID. Ids of other tables are ignored.
func (r *AttendanceRepository) Delete(ctx context.Context, id string) error {
	if !isRecordOf(tableEventGamer, id) {
		return nil
	}

	query := `DELETE type::record($id)`
	vars := map[string]interface{}{"id": id}

	return r.db.Execute(ctx, query, vars)
}

// ListGamers returns the gamers attending an event in signup order
func (r *AttendanceRepository) ListGamers(ctx context.Context, eventID string) ([]*model.Gamer, error) {
	if !isRecordOf(tableEvent, eventID) {
		return []*model.Gamer{}, nil
	}

	query := `
		SELECT gamer, created_on FROM event_gamer
		WHERE event = type::record($event)
		ORDER BY created_on ASC
		FETCH gamer
	`
	vars := map[string]interface{}{"event": eventID}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	records := queryRecords(result)
	gamers := make([]*model.Gamer, 0, len(records))
	for _, data := range records {
		if g := getRecord(data, "gamer"); g != nil {
			gamers = append(gamers, parseGamer(g))
		}
	}
	return gamers, nil
}
