package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/scamp925/level-up-server/internal/model"
)

const gamerColumns = `id, uid, bio, created_on`

// GamerRepository handles gamer rows
type GamerRepository struct {
	db *sql.DB
}

// Create registers a gamer. Returns database.ErrDuplicate when the uid is taken.
func (r *GamerRepository) Create(ctx context.Context, gamer *model.Gamer) error {
	id := newID()
	now := time.Now().UTC()
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO gamers (id, uid, bio, created_on) VALUES (?, ?, ?, ?)`,
		id, gamer.UID, gamer.Bio, toMillis(now),
	); err != nil {
		return wrapWriteError("create gamer", err)
	}
	gamer.ID = id
	gamer.CreatedOn = fromMillis(toMillis(now))
	return nil
}

// Get retrieves a gamer by ID
func (r *GamerRepository) Get(ctx context.Context, id string) (*model.Gamer, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+gamerColumns+` FROM gamers WHERE id = ?`, id)
	return scanOptionalGamer(row)
}

// GetByUID retrieves a gamer by external uid
func (r *GamerRepository) GetByUID(ctx context.Context, uid string) (*model.Gamer, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+gamerColumns+` FROM gamers WHERE uid = ?`, uid)
	return scanOptionalGamer(row)
}

func scanOptionalGamer(row rowScanner) (*model.Gamer, error) {
	var (
		g         model.Gamer
		createdOn int64
	)
	if err := row.Scan(&g.ID, &g.UID, &g.Bio, &createdOn); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get gamer: %w", err)
	}
	g.CreatedOn = fromMillis(createdOn)
	return &g, nil
}
