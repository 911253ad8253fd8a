package service

import (
	"context"
	"fmt"

	"github.com/scamp925/level-up-server/internal/model"
)

// GameTypeRepository defines the interface for game type storage
type GameTypeRepository interface {
	Get(ctx context.Context, id string) (*model.GameType, error)
	List(ctx context.Context) ([]*model.GameType, error)
}

// GameTypeService serves game type reference data
type GameTypeService struct {
	repo GameTypeRepository
}

// NewGameTypeService creates a new game type service
func NewGameTypeService(repo GameTypeRepository) *GameTypeService {
	return &GameTypeService{repo: repo}
}

// Get retrieves a game type by ID
func (s *GameTypeService) Get(ctx context.Context, id string) (*model.GameType, error) {
	return resolveGameType(ctx, s.repo, id)
}

// List returns all game types
func (s *GameTypeService) List(ctx context.Context) ([]*model.GameType, error) {
	types, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list game types: %w", err)
	}
	return types, nil
}

func resolveGameType(ctx context.Context, repo GameTypeRepository, id string) (*model.GameType, error) {
	gt, err := repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game type: %w", err)
	}
	if gt == nil {
		return nil, ErrGameTypeNotFound
	}
	return gt, nil
}
