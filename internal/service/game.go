package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/scamp925/level-up-server/internal/model"
)

// GameRepository defines the interface for game storage
type GameRepository interface {
	Create(ctx context.Context, game *model.Game) error
	Get(ctx context.Context, id string) (*model.Game, error)
	List(ctx context.Context, filters model.GameFilters) ([]*model.Game, error)
}

// GameService handles the game catalog
type GameService struct {
	games     GameRepository
	gameTypes GameTypeRepository
	gamers    GamerRepository
}

// GameServiceConfig holds the dependencies of the game service
type GameServiceConfig struct {
	GameRepo     GameRepository
	GameTypeRepo GameTypeRepository
	GamerRepo    GamerRepository
}

// NewGameService creates a new game service
func NewGameService(cfg GameServiceConfig) *GameService {
	return &GameService{
		games:     cfg.GameRepo,
		gameTypes: cfg.GameTypeRepo,
		gamers:    cfg.GamerRepo,
	}
}

// Get retrieves a game with its type and owner
func (s *GameService) Get(ctx context.Context, id string) (*model.Game, error) {
	return resolveGame(ctx, s.games, id)
}

// List returns all games, or only those of gameTypeID when it is set
func (s *GameService) List(ctx context.Context, gameTypeID string) ([]*model.Game, error) {
	var filters model.GameFilters
	if gameTypeID != "" {
		filters.GameTypeID = &gameTypeID
	}

	games, err := s.games.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	return games, nil
}

// Create adds a game owned by the gamer named in the request
func (s *GameService) Create(ctx context.Context, req *model.CreateGameRequest) (*model.Game, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, model.NewInvalidPayloadError(errs)
	}

	owner, err := resolveGamer(ctx, s.gamers, req.UserID)
	if err != nil {
		return nil, err
	}
	gameType, err := resolveGameType(ctx, s.gameTypes, req.GameType)
	if err != nil {
		return nil, err
	}

	game := &model.Game{
		Title:           strings.TrimSpace(req.Title),
		Maker:           strings.TrimSpace(req.Maker),
		NumberOfPlayers: *req.NumberOfPlayers,
		SkillLevel:      *req.SkillLevel,
		GameTypeID:      gameType.ID,
		GamerID:         owner.ID,
	}
	if err := s.games.Create(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	game.GameType = gameType
	game.Gamer = owner
	return game, nil
}

func resolveGame(ctx context.Context, repo GameRepository, id string) (*model.Game, error) {
	game, err := repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}
	if game == nil {
		return nil, ErrGameNotFound
	}
	return game, nil
}
