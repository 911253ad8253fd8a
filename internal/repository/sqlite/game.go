package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/scamp925/level-up-server/internal/model"
)

// gameSelect hydrates a game with its type and owning gamer
const gameSelect = `
	SELECT g.id, g.title, g.maker, g.number_of_players, g.skill_level,
		gt.id, gt.label,
		u.id, u.uid, u.bio, u.created_on
	FROM games g
	JOIN game_types gt ON gt.id = g.game_type_id
	JOIN gamers u ON u.id = g.gamer_id`

// GameRepository handles game rows
type GameRepository struct {
	db *sql.DB
}

// Create inserts a game. GameTypeID and GamerID must reference existing rows.
func (r *GameRepository) Create(ctx context.Context, game *model.Game) error {
	id := newID()
	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO games (id, title, maker, number_of_players, skill_level, game_type_id, gamer_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, game.Title, game.Maker, game.NumberOfPlayers, game.SkillLevel, game.GameTypeID, game.GamerID,
	); err != nil {
		return wrapWriteError("create game", err)
	}
	game.ID = id
	return nil
}

// Get retrieves a hydrated game by ID
func (r *GameRepository) Get(ctx context.Context, id string) (*model.Game, error) {
	row := r.db.QueryRowContext(ctx, gameSelect+` WHERE g.id = ?`, id)
	game, err := scanGame(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get game: %w", err)
	}
	return game, nil
}

// List retrieves games in insertion order, optionally filtered by type
func (r *GameRepository) List(ctx context.Context, filters model.GameFilters) ([]*model.Game, error) {
	query := gameSelect
	var args []any
	if filters.GameTypeID != nil {
		query += ` WHERE g.game_type_id = ?`
		args = append(args, *filters.GameTypeID)
	}
	query += ` ORDER BY g.rowid ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	defer rows.Close()

	games := make([]*model.Game, 0)
	for rows.Next() {
		game, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		games = append(games, game)
	}
	return games, rows.Err()
}

func scanGame(row rowScanner) (*model.Game, error) {
	var (
		g         model.Game
		gt        model.GameType
		owner     model.Gamer
		createdOn int64
	)
	if err := row.Scan(
		&g.ID, &g.Title, &g.Maker, &g.NumberOfPlayers, &g.SkillLevel,
		&gt.ID, &gt.Label,
		&owner.ID, &owner.UID, &owner.Bio, &createdOn,
	); err != nil {
		return nil, err
	}
	owner.CreatedOn = fromMillis(createdOn)
	g.GameTypeID = gt.ID
	g.GamerID = owner.ID
	g.GameType = &gt
	g.Gamer = &owner
	return &g, nil
}
