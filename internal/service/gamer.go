package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/scamp925/level-up-server/internal/database"
	"github.com/scamp925/level-up-server/internal/model"
)

// GamerRepository defines the interface for gamer storage
type GamerRepository interface {
	Create(ctx context.Context, gamer *model.Gamer) error
	Get(ctx context.Context, id string) (*model.Gamer, error)
	GetByUID(ctx context.Context, uid string) (*model.Gamer, error)
}

// GamerService handles gamer registration and lookup
type GamerService struct {
	repo GamerRepository
}

// NewGamerService creates a new gamer service
func NewGamerService(repo GamerRepository) *GamerService {
	return &GamerService{repo: repo}
}

// Register creates a gamer for a new uid
func (s *GamerService) Register(ctx context.Context, req *model.RegisterGamerRequest) (*model.Gamer, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, model.NewInvalidPayloadError(errs)
	}

	existing, err := s.repo.GetByUID(ctx, req.UID)
	if err != nil {
		return nil, fmt.Errorf("failed to check uid: %w", err)
	}
	if existing != nil {
		return nil, ErrGamerExists
	}

	gamer := &model.Gamer{
		UID: req.UID,
		Bio: strings.TrimSpace(req.Bio),
	}
	if err := s.repo.Create(ctx, gamer); err != nil {
		// Lost a race with a concurrent registration
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrGamerExists
		}
		return nil, fmt.Errorf("failed to create gamer: %w", err)
	}
	return gamer, nil
}

// CheckUser looks up a gamer by uid. A missing gamer is not an error: it
// returns nil so callers can answer {valid: false}.
func (s *GamerService) CheckUser(ctx context.Context, req *model.GamerUIDRequest) (*model.Gamer, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, model.NewInvalidPayloadError(errs)
	}

	gamer, err := s.repo.GetByUID(ctx, req.UID)
	if err != nil {
		return nil, fmt.Errorf("failed to get gamer: %w", err)
	}
	return gamer, nil
}

func resolveGamer(ctx context.Context, repo GamerRepository, uid string) (*model.Gamer, error) {
	gamer, err := repo.GetByUID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to get gamer: %w", err)
	}
	if gamer == nil {
		return nil, ErrGamerNotFound
	}
	return gamer, nil
}
