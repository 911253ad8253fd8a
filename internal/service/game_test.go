package service

import (
	"context"
	"errors"
	"testing"

	"github.com/scamp925/level-up-server/internal/model"
)

func newTestGameService(games *mockGameRepo) *GameService {
	return NewGameService(GameServiceConfig{
		GameRepo: games,
		GameTypeRepo: &mockGameTypeRepo{
			getFunc: func(ctx context.Context, id string) (*model.GameType, error) {
				if id == "game_type:board" {
					return &model.GameType{ID: id, Label: "Board game"}, nil
				}
				return nil, nil
			},
		},
		GamerRepo: gamersByUID(testGamer("owner")),
	})
}

func validCreateGame() *model.CreateGameRequest {
	return &model.CreateGameRequest{
		UserID:          "owner",
		GameType:        "game_type:board",
		Title:           "  Catan ",
		Maker:           "Kosmos",
		NumberOfPlayers: intPtr(4),
		SkillLevel:      intPtr(0),
	}
}

func TestGameCreate_Success(t *testing.T) {
	t.Parallel()

	var stored *model.Game
	svc := newTestGameService(&mockGameRepo{
		createFunc: func(ctx context.Context, game *model.Game) error {
			stored = game
			game.ID = "game:new"
			return nil
		},
	})

	game, err := svc.Create(context.Background(), validCreateGame())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Title != "Catan" {
		t.Errorf("expected trimmed title, got %q", stored.Title)
	}
	if stored.GamerID != "gamer:owner" || stored.GameTypeID != "game_type:board" {
		t.Errorf("unexpected references: gamer=%s type=%s", stored.GamerID, stored.GameTypeID)
	}
	if stored.SkillLevel != 0 {
		t.Errorf("expected skill level 0, got %d", stored.SkillLevel)
	}
	if game.GameType == nil || game.GameType.Label != "Board game" {
		t.Error("expected game type to be hydrated")
	}
	if game.Gamer == nil || game.Gamer.UID != "owner" {
		t.Error("expected owner to be hydrated")
	}
}

func TestGameCreate_DanglingReferences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*model.CreateGameRequest)
		wantErr error
	}{
		{"missing gamer", func(r *model.CreateGameRequest) { r.UserID = "stranger" }, ErrGamerNotFound},
		{"missing game type", func(r *model.CreateGameRequest) { r.GameType = "game_type:missing" }, ErrGameTypeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := newTestGameService(&mockGameRepo{
				createFunc: func(ctx context.Context, game *model.Game) error {
					t.Error("no game should be created")
					return nil
				},
			})

			req := validCreateGame()
			tt.mutate(req)
			if _, err := svc.Create(context.Background(), req); !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestGameCreate_MissingNumberOfPlayers(t *testing.T) {
	t.Parallel()

	req := validCreateGame()
	req.NumberOfPlayers = nil

	_, err := newTestGameService(&mockGameRepo{}).Create(context.Background(), req)
	var problem *model.ProblemDetails
	if !errors.As(err, &problem) {
		t.Fatalf("expected problem details, got %v", err)
	}
	if len(problem.Errors) != 1 || problem.Errors[0].Field != "number_of_players" {
		t.Errorf("unexpected field errors: %+v", problem.Errors)
	}
}

func TestGameGet(t *testing.T) {
	t.Parallel()

	svc := newTestGameService(&mockGameRepo{
		getFunc: func(ctx context.Context, id string) (*model.Game, error) {
			if id == "game:catan" {
				return testGame(id), nil
			}
			return nil, nil
		},
	})

	game, err := svc.Get(context.Background(), "game:catan")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if game.Title != "Catan" {
		t.Errorf("expected Catan, got %s", game.Title)
	}

	if _, err := svc.Get(context.Background(), "game:missing"); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("expected ErrGameNotFound, got %v", err)
	}
}

func TestGameList_TypeFilter(t *testing.T) {
	t.Parallel()

	var got model.GameFilters
	svc := newTestGameService(&mockGameRepo{
		listFunc: func(ctx context.Context, filters model.GameFilters) ([]*model.Game, error) {
			got = filters
			return []*model.Game{}, nil
		},
	})

	if _, err := svc.List(context.Background(), "game_type:board"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.GameTypeID == nil || *got.GameTypeID != "game_type:board" {
		t.Errorf("expected type filter, got %v", got.GameTypeID)
	}
}
