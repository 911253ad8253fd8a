package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/scamp925/level-up-server/internal/database"
	"github.com/scamp925/level-up-server/internal/model"
)

// DefaultGameTypes is the reference data inserted by a fresh seed
var DefaultGameTypes = []string{
	"Board game",
	"Card game",
	"Tabletop role-playing game",
	"Miniatures game",
	"Party game",
}

// GameTypeSeedRepository defines what seeding needs from game type storage
type GameTypeSeedRepository interface {
	Create(ctx context.Context, gameType *model.GameType) error
	GetByLabel(ctx context.Context, label string) (*model.GameType, error)
}

// SeederService inserts reference data
type SeederService struct {
	gameTypes GameTypeSeedRepository
}

// NewSeederService creates a new seeder service
func NewSeederService(gameTypes GameTypeSeedRepository) *SeederService {
	return &SeederService{gameTypes: gameTypes}
}

// SeedResult contains the results of a seeding operation
type SeedResult struct {
	Created  int      `json:"created"`
	Skipped  int      `json:"skipped"`
	IDs      []string `json:"ids"`
	Duration int64    `json:"duration_ms"`
}

// SeedGameTypes creates a game type for each label not already present.
// Running it twice creates nothing the second time.
func (s *SeederService) SeedGameTypes(ctx context.Context, labels []string) (*SeedResult, error) {
	start := time.Now()
	result := &SeedResult{IDs: []string{}}

	for _, raw := range labels {
		label := strings.TrimSpace(raw)
		if label == "" {
			continue
		}
		if utf8.RuneCountInString(label) > model.MaxGameTypeLabelLength {
			return result, fmt.Errorf("label %q exceeds %d characters", label, model.MaxGameTypeLabelLength)
		}

		existing, err := s.gameTypes.GetByLabel(ctx, label)
		if err != nil {
			return result, fmt.Errorf("failed to look up %q: %w", label, err)
		}
		if existing != nil {
			result.Skipped++
			continue
		}

		gt := &model.GameType{Label: label}
		if err := s.gameTypes.Create(ctx, gt); err != nil {
			if errors.Is(err, database.ErrDuplicate) {
				result.Skipped++
				continue
			}
			return result, fmt.Errorf("failed to create %q: %w", label, err)
		}
		result.Created++
		result.IDs = append(result.IDs, gt.ID)
	}

	result.Duration = time.Since(start).Milliseconds()
	return result, nil
}
