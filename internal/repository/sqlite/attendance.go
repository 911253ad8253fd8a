package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/scamp925/level-up-server/internal/model"
)

// AttendanceRepository handles event_gamers rows
type AttendanceRepository struct {
	db *sql.DB
}

// Create adds a gamer to an event. Returns database.ErrDuplicate when the
// gamer already attends.
func (r *AttendanceRepository) Create(ctx context.Context, attendance *model.EventGamer) error {
	id := newID()
	now := toMillis(time.Now())
	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO event_gamers (id, event_id, gamer_id, created_on)
		VALUES (?, ?, ?, ?)`,
		id, attendance.EventID, attendance.GamerID, now,
	); err != nil {
		return wrapWriteError("create attendance", err)
	}
	attendance.ID = id
	attendance.CreatedOn = fromMillis(now)
	return nil
}

// Get retrieves the attendance row for a gamer and event
func (r *AttendanceRepository) Get(ctx context.Context, eventID, gamerID string) (*model.EventGamer, error) {
	var (
		eg        model.EventGamer
		createdOn int64
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, event_id, gamer_id, created_on FROM event_gamers
		WHERE event_id = ? AND gamer_id = ?`,
		eventID, gamerID,
	).Scan(&eg.ID, &eg.EventID, &eg.GamerID, &createdOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get attendance: %w", err)
	}
	eg.CreatedOn = fromMillis(createdOn)
	return &eg, nil
}

// Delete removes an attendance row by ID
func (r *AttendanceRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM event_gamers WHERE id = ?`, id); err != nil {
		return wrapWriteError("delete attendance", err)
	}
	return nil
}

// ListGamers returns the gamers attending an event in signup order
func (r *AttendanceRepository) ListGamers(ctx context.Context, eventID string) ([]*model.Gamer, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT u.id, u.uid, u.bio, u.created_on
		FROM event_gamers eg
		JOIN gamers u ON u.id = eg.gamer_id
		WHERE eg.event_id = ?
		ORDER BY eg.created_on ASC, eg.rowid ASC`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}
	defer rows.Close()

	gamers := make([]*model.Gamer, 0)
	for rows.Next() {
		gamer, err := scanOptionalGamer(rows)
		if err != nil {
			return nil, err
		}
		gamers = append(gamers, gamer)
	}
	return gamers, rows.Err()
}
