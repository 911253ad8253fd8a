package service

import (
	"context"

	"github.com/scamp925/level-up-server/internal/model"
)

// ============================================================================
// Mock Repositories
// ============================================================================

type mockGameTypeRepo struct {
	createFunc     func(ctx context.Context, gameType *model.GameType) error
	getFunc        func(ctx context.Context, id string) (*model.GameType, error)
	getByLabelFunc func(ctx context.Context, label string) (*model.GameType, error)
	listFunc       func(ctx context.Context) ([]*model.GameType, error)
}

func (m *mockGameTypeRepo) Create(ctx context.Context, gameType *model.GameType) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, gameType)
	}
	return nil
}

func (m *mockGameTypeRepo) Get(ctx context.Context, id string) (*model.GameType, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockGameTypeRepo) GetByLabel(ctx context.Context, label string) (*model.GameType, error) {
	if m.getByLabelFunc != nil {
		return m.getByLabelFunc(ctx, label)
	}
	return nil, nil
}

func (m *mockGameTypeRepo) List(ctx context.Context) ([]*model.GameType, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return []*model.GameType{}, nil
}

type mockGamerRepo struct {
	createFunc   func(ctx context.Context, gamer *model.Gamer) error
	getFunc      func(ctx context.Context, id string) (*model.Gamer, error)
	getByUIDFunc func(ctx context.Context, uid string) (*model.Gamer, error)
}

func (m *mockGamerRepo) Create(ctx context.Context, gamer *model.Gamer) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, gamer)
	}
	return nil
}

func (m *mockGamerRepo) Get(ctx context.Context, id string) (*model.Gamer, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockGamerRepo) GetByUID(ctx context.Context, uid string) (*model.Gamer, error) {
	if m.getByUIDFunc != nil {
		return m.getByUIDFunc(ctx, uid)
	}
	return nil, nil
}

type mockGameRepo struct {
	createFunc func(ctx context.Context, game *model.Game) error
	getFunc    func(ctx context.Context, id string) (*model.Game, error)
	listFunc   func(ctx context.Context, filters model.GameFilters) ([]*model.Game, error)
}

func (m *mockGameRepo) Create(ctx context.Context, game *model.Game) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, game)
	}
	return nil
}

func (m *mockGameRepo) Get(ctx context.Context, id string) (*model.Game, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockGameRepo) List(ctx context.Context, filters model.GameFilters) ([]*model.Game, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filters)
	}
	return []*model.Game{}, nil
}

type mockEventRepo struct {
	createFunc func(ctx context.Context, event *model.Event) error
	getFunc    func(ctx context.Context, id string) (*model.Event, error)
	listFunc   func(ctx context.Context, filters model.EventFilters) ([]*model.Event, error)
	updateFunc func(ctx context.Context, event *model.Event) error
	deleteFunc func(ctx context.Context, id string) error
}

func (m *mockEventRepo) Create(ctx context.Context, event *model.Event) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, event)
	}
	return nil
}

func (m *mockEventRepo) Get(ctx context.Context, id string) (*model.Event, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockEventRepo) List(ctx context.Context, filters model.EventFilters) ([]*model.Event, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filters)
	}
	return []*model.Event{}, nil
}

func (m *mockEventRepo) Update(ctx context.Context, event *model.Event) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, event)
	}
	return nil
}

func (m *mockEventRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

type mockAttendanceRepo struct {
	createFunc     func(ctx context.Context, attendance *model.EventGamer) error
	getFunc        func(ctx context.Context, eventID, gamerID string) (*model.EventGamer, error)
	deleteFunc     func(ctx context.Context, id string) error
	listGamersFunc func(ctx context.Context, eventID string) ([]*model.Gamer, error)
}

func (m *mockAttendanceRepo) Create(ctx context.Context, attendance *model.EventGamer) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, attendance)
	}
	return nil
}

func (m *mockAttendanceRepo) Get(ctx context.Context, eventID, gamerID string) (*model.EventGamer, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, eventID, gamerID)
	}
	return nil, nil
}

func (m *mockAttendanceRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockAttendanceRepo) ListGamers(ctx context.Context, eventID string) ([]*model.Gamer, error) {
	if m.listGamersFunc != nil {
		return m.listGamersFunc(ctx, eventID)
	}
	return []*model.Gamer{}, nil
}

// ============================================================================
// Test Data
// ============================================================================

func testGamer(uid string) *model.Gamer {
	return &model.Gamer{ID: "gamer:" + uid, UID: uid, Bio: "bio"}
}

func testGame(id string) *model.Game {
	return &model.Game{
		ID:              id,
		Title:           "Catan",
		Maker:           "Kosmos",
		NumberOfPlayers: 4,
		SkillLevel:      2,
		GameTypeID:      "game_type:board",
		GamerID:         "gamer:owner",
		GameType:        &model.GameType{ID: "game_type:board", Label: "Board game"},
		Gamer:           testGamer("owner"),
	}
}

func testEvent(id string) *model.Event {
	return &model.Event{
		ID:          id,
		Description: "Game night",
		Date:        "2026-11-06",
		Time:        "19:30:00",
		GameID:      "game:catan",
		OrganizerID: "gamer:organizer",
		Game:        testGame("game:catan"),
		Organizer:   testGamer("organizer"),
	}
}

func gamersByUID(gamers ...*model.Gamer) *mockGamerRepo {
	return &mockGamerRepo{
		getByUIDFunc: func(ctx context.Context, uid string) (*model.Gamer, error) {
			for _, g := range gamers {
				if g.UID == uid {
					return g, nil
				}
			}
			return nil, nil
		},
	}
}

func intPtr(v int) *int {
	return &v
}
