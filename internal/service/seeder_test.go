package service

import (
	"context"
	"strings"
	"testing"

	"github.com/scamp925/level-up-server/internal/model"
)

func TestSeedGameTypes_SkipsExisting(t *testing.T) {
	t.Parallel()

	existing := map[string]bool{"Board game": true}
	var created []string
	svc := NewSeederService(&mockGameTypeRepo{
		getByLabelFunc: func(ctx context.Context, label string) (*model.GameType, error) {
			if existing[label] {
				return &model.GameType{ID: "game_type:x", Label: label}, nil
			}
			return nil, nil
		},
		createFunc: func(ctx context.Context, gameType *model.GameType) error {
			created = append(created, gameType.Label)
			existing[gameType.Label] = true
			gameType.ID = "game_type:" + gameType.Label
			return nil
		},
	})

	result, err := svc.SeedGameTypes(context.Background(), []string{"Board game", " Card game ", "", "Card game"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Created != 1 || result.Skipped != 2 {
		t.Errorf("expected 1 created and 2 skipped, got %d/%d", result.Created, result.Skipped)
	}
	if len(created) != 1 || created[0] != "Card game" {
		t.Errorf("unexpected created labels: %v", created)
	}
	if len(result.IDs) != 1 {
		t.Errorf("expected 1 id, got %v", result.IDs)
	}
}

func TestSeedGameTypes_LabelTooLong(t *testing.T) {
	t.Parallel()

	svc := NewSeederService(&mockGameTypeRepo{})
	_, err := svc.SeedGameTypes(context.Background(), []string{strings.Repeat("x", model.MaxGameTypeLabelLength+1)})
	if err == nil {
		t.Error("expected error for oversized label")
	}
}
