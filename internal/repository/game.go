package repository

import (
	"context"
	"errors"

	"github.com/scamp925/level-up-server/internal/database"
	"github.com/scamp925/level-up-server/internal/model"
)

// GameRepository handles game data access
type GameRepository struct {
	db database.Database
}

// NewGameRepository creates a new game repository
func NewGameRepository(db database.Database) *GameRepository {
	return &GameRepository{db: db}
}

// Create inserts a game. GameTypeID and GamerID must reference existing records.
func (r *GameRepository) Create(ctx context.Context, game *model.Game) error {
	query := `
		CREATE game SET
			title = $title,
			maker = $maker,
			number_of_players = $number_of_players,
			skill_level = $skill_level,
			game_type = type::record($game_type),
			gamer = type::record($gamer)
	`
	vars := map[string]interface{}{
		"title":             game.Title,
		"maker":             game.Maker,
		"number_of_players": game.NumberOfPlayers,
		"skill_level":       game.SkillLevel,
		"game_type":         game.GameTypeID,
		"gamer":             game.GamerID,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	created, err := firstRecord(result)
	if err != nil {
		return err
	}

	game.ID = convertSurrealID(created["id"])
	return nil
}

// Get retrieves a game by ID with its game type and owner
func (r *GameRepository) Get(ctx context.Context, id string) (*model.Game, error) {
	if !isRecordOf(tableGame, id) {
		return nil, nil
	}

	query := `SELECT * FROM type::record($id) FETCH game_type, gamer`
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
	return parseGame(data), nil
}

// List retrieves games, optionally narrowed to one game type
func (r *GameRepository) List(ctx context.Context, filters model.GameFilters) ([]*model.Game, error) {
	query := `SELECT * FROM game`
	vars := map[string]interface{}{}

	if filters.GameTypeID != nil {
		if !isRecordOf(tableGameType, *filters.GameTypeID) {
			return []*model.Game{}, nil
		}
		query += ` WHERE game_type = type::record($game_type)`
		vars["game_type"] = *filters.GameTypeID
	}

	query += ` FETCH game_type, gamer`

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	records := queryRecords(result)
	games := make([]*model.Game, 0, len(records))
	for _, data := range records {
		games = append(games, parseGame(data))
	}
	return games, nil
}
