package repository

import (
	"context"
	"errors"

	"github.com/scamp925/level-up-server/internal/database"
	"github.com/scamp925/level-up-server/internal/model"
)

// GamerRepository handles gamer data access
type GamerRepository struct {
	db database.Database
}

// NewGamerRepository creates a new gamer repository
func NewGamerRepository(db database.Database) *GamerRepository {
	return &GamerRepository{db: db}
}

// Create registers a gamer. Returns database.ErrDuplicate when the uid is taken.
func (r *GamerRepository) Create(ctx context.Context, gamer *model.Gamer) error {
	query := `CREATE gamer SET uid = $uid, bio = $bio, created_on = time::now()`
	vars := map[string]interface{}{
		"uid": gamer.UID,
		"bio": gamer.Bio,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	created, err := firstRecord(result)
	if err != nil {
		return err
	}

	gamer.ID = convertSurrealID(created["id"])
	gamer.CreatedOn = getTime(created, "created_on")
	return nil
}

// Get retrieves a gamer by ID
func (r *GamerRepository) Get(ctx context.Context, id string) (*model.Gamer, error) {
	if !isRecordOf(tableGamer, id) {
		return nil, nil
	}

	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	return r.queryGamer(ctx, query, vars)
}

// GetByUID retrieves a gamer by external uid
func (r *GamerRepository) GetByUID(ctx context.Context, uid string) (*model.Gamer, error) {
	query := `SELECT * FROM gamer WHERE uid = $uid LIMIT 1`
	vars := map[string]interface{}{"uid": uid}

	return r.queryGamer(ctx, query, vars)
}

func (r *GamerRepository) queryGamer(ctx context.Context, query string, vars map[string]interface{}) (*model.Gamer, error) {
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
	return parseGamer(data), nil
}
