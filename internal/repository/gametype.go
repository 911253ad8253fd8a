package repository

import (
	"context"
	"errors"

	"github.com/scamp925/level-up-server/internal/database"
	"github.com/scamp925/level-up-server/internal/model"
)

// GameTypeRepository handles game type data access
type GameTypeRepository struct {
	db database.Database
}

// NewGameTypeRepository creates a new game type repository
func NewGameTypeRepository(db database.Database) *GameTypeRepository {
	return &GameTypeRepository{db: db}
}

// Create inserts a game type. Labels are unique.
func (r *GameTypeRepository) Create(ctx context.Context, gameType *model.GameType) error {
	query := `CREATE game_type SET label = $label`
	vars := map[string]interface{}{"label": gameType.Label}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	created, err := firstRecord(result)
	if err != nil {
		return err
	}

	gameType.ID = convertSurrealID(created["id"])
	return nil
}

// Get retrieves a game type by ID
func (r *GameTypeRepository) Get(ctx context.Context, id string) (*model.GameType, error) {
	if !isRecordOf(tableGameType, id) {
		return nil, nil
	}

	query := `SELECT * FROM type::record($id)`
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
	return parseGameType(data), nil
}

// GetByLabel retrieves a game type by its label
func (r *GameTypeRepository) GetByLabel(ctx context.Context, label string) (*model.GameType, error) {
	query := `SELECT * FROM game_type WHERE label = $label LIMIT 1`
	vars := map[string]interface{}{"label": label}

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
	return parseGameType(data), nil
}

// List retrieves all game types
func (r *GameTypeRepository) List(ctx context.Context) ([]*model.GameType, error) {
	result, err := r.db.Query(ctx, `SELECT * FROM game_type ORDER BY label ASC`, nil)
	if err != nil {
		return nil, err
	}

	records := queryRecords(result)
	types := make([]*model.GameType, 0, len(records))
	for _, data := range records {
		types = append(types, parseGameType(data))
	}
	return types, nil
}
