package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/scamp925/level-up-server/internal/model"
)

// GameTypeRepository handles game type rows
type GameTypeRepository struct {
	db *sql.DB
}

// Create inserts a game type. Labels are unique.
func (r *GameTypeRepository) Create(ctx context.Context, gameType *model.GameType) error {
	id := newID()
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO game_types (id, label) VALUES (?, ?)`,
		id, gameType.Label,
	); err != nil {
		return wrapWriteError("create game type", err)
	}
	gameType.ID = id
	return nil
}

// Get retrieves a game type by ID
func (r *GameTypeRepository) Get(ctx context.Context, id string) (*model.GameType, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, label FROM game_types WHERE id = ?`, id)
	return scanOptionalGameType(row)
}

// GetByLabel retrieves a game type by its label
func (r *GameTypeRepository) GetByLabel(ctx context.Context, label string) (*model.GameType, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, label FROM game_types WHERE label = ?`, label)
	return scanOptionalGameType(row)
}

// List retrieves all game types ordered by label
func (r *GameTypeRepository) List(ctx context.Context) ([]*model.GameType, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, label FROM game_types ORDER BY label ASC`)
	if err != nil {
		return nil, fmt.Errorf("list game types: %w", err)
	}
	defer rows.Close()

	types := make([]*model.GameType, 0)
	for rows.Next() {
		var gt model.GameType
		if err := rows.Scan(&gt.ID, &gt.Label); err != nil {
			return nil, fmt.Errorf("scan game type: %w", err)
		}
		types = append(types, &gt)
	}
	return types, rows.Err()
}

func scanOptionalGameType(row rowScanner) (*model.GameType, error) {
	var gt model.GameType
	if err := row.Scan(&gt.ID, &gt.Label); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get game type: %w", err)
	}
	return &gt, nil
}
