// Package fixtures provides test data factories for integration testing.
//
// Each factory method creates entities with sensible defaults while allowing
// customization via option functions. Factories insert through the store's
// own repositories and return fully populated models, so the same factory
// works against SurrealDB and SQLite.
//
// Usage:
//
//	f := fixtures.New(repos)
//	gamer := f.CreateGamer(t)
//	game := f.CreateGame(t, gamer)
//	event := f.CreateEvent(t, game, gamer)
package fixtures

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/scamp925/level-up-server/internal/model"
)

// Creators used by the factory. Both store implementations satisfy them.
type (
	GameTypeCreator interface {
		Create(ctx context.Context, gameType *model.GameType) error
	}
	GamerCreator interface {
		Create(ctx context.Context, gamer *model.Gamer) error
	}
	GameCreator interface {
		Create(ctx context.Context, game *model.Game) error
	}
	EventCreator interface {
		Create(ctx context.Context, event *model.Event) error
	}
	AttendanceCreator interface {
		Create(ctx context.Context, attendance *model.EventGamer) error
	}
)

// Repos bundles the repositories the factory writes through
type Repos struct {
	GameTypes  GameTypeCreator
	Gamers     GamerCreator
	Games      GameCreator
	Events     EventCreator
	Attendance AttendanceCreator
}

// Factory creates test entities in the database
type Factory struct {
	repos Repos
}

// New creates a new fixture factory
func New(repos Repos) *Factory {
	return &Factory{repos: repos}
}

// randomID generates a random hex ID
func randomID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func testCtx(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// ============================================================================
// GameType Fixtures
// ============================================================================

// CreateGameType creates a game type with a unique label
func (f *Factory) CreateGameType(t *testing.T, label ...string) *model.GameType {
	t.Helper()

	gt := &model.GameType{Label: fmt.Sprintf("type_%s", randomID())}
	if len(label) > 0 {
		gt.Label = label[0]
	}

	if err := f.repos.GameTypes.Create(testCtx(t), gt); err != nil {
		t.Fatalf("fixtures: failed to create game type: %v", err)
	}
	return gt
}

// ============================================================================
// Gamer Fixtures
// ============================================================================

// GamerOpts customizes gamer creation
type GamerOpts struct {
	UID string
	Bio string
}

// CreateGamer creates a gamer with optional customizations
func (f *Factory) CreateGamer(t *testing.T, opts ...func(*GamerOpts)) *model.Gamer {
	t.Helper()

	o := &GamerOpts{
		UID: fmt.Sprintf("uid_%s", randomID()),
		Bio: "Test gamer",
	}
	for _, fn := range opts {
		fn(o)
	}

	gamer := &model.Gamer{UID: o.UID, Bio: o.Bio}
	if err := f.repos.Gamers.Create(testCtx(t), gamer); err != nil {
		t.Fatalf("fixtures: failed to create gamer: %v", err)
	}
	return gamer
}

// ============================================================================
// Game Fixtures
// ============================================================================

// GameOpts customizes game creation
type GameOpts struct {
	Title           string
	Maker           string
	NumberOfPlayers int
	SkillLevel      int
	GameType        *model.GameType
}

// CreateGame creates a game owned by the gamer. A fresh game type is
// created unless one is supplied.
func (f *Factory) CreateGame(t *testing.T, owner *model.Gamer, opts ...func(*GameOpts)) *model.Game {
	t.Helper()

	o := &GameOpts{
		Title:           fmt.Sprintf("Game %s", randomID()),
		Maker:           "Test Maker",
		NumberOfPlayers: 4,
		SkillLevel:      3,
	}
	for _, fn := range opts {
		fn(o)
	}
	if o.GameType == nil {
		o.GameType = f.CreateGameType(t)
	}

	game := &model.Game{
		Title:           o.Title,
		Maker:           o.Maker,
		NumberOfPlayers: o.NumberOfPlayers,
		SkillLevel:      o.SkillLevel,
		GameTypeID:      o.GameType.ID,
		GamerID:         owner.ID,
		GameType:        o.GameType,
		Gamer:           owner,
	}
	if err := f.repos.Games.Create(testCtx(t), game); err != nil {
		t.Fatalf("fixtures: failed to create game: %v", err)
	}
	return game
}

// WithGameType sets the game type of a created game
func WithGameType(gt *model.GameType) func(*GameOpts) {
	return func(o *GameOpts) { o.GameType = gt }
}

// ============================================================================
// Event Fixtures
// ============================================================================

// EventOpts customizes event creation
type EventOpts struct {
	Description string
	Date        string
	Time        string
}

// CreateEvent creates an event for the game organized by the gamer
func (f *Factory) CreateEvent(t *testing.T, game *model.Game, organizer *model.Gamer, opts ...func(*EventOpts)) *model.Event {
	t.Helper()

	o := &EventOpts{
		Description: "Game night",
		Date:        "2026-11-06",
		Time:        "19:30:00",
	}
	for _, fn := range opts {
		fn(o)
	}

	event := &model.Event{
		Description: o.Description,
		Date:        o.Date,
		Time:        o.Time,
		GameID:      game.ID,
		OrganizerID: organizer.ID,
		Game:        game,
		Organizer:   organizer,
	}
	if err := f.repos.Events.Create(testCtx(t), event); err != nil {
		t.Fatalf("fixtures: failed to create event: %v", err)
	}
	return event
}

// SignUp adds the gamer to the event
func (f *Factory) SignUp(t *testing.T, event *model.Event, gamer *model.Gamer) *model.EventGamer {
	t.Helper()

	attendance := &model.EventGamer{EventID: event.ID, GamerID: gamer.ID}
	if err := f.repos.Attendance.Create(testCtx(t), attendance); err != nil {
		t.Fatalf("fixtures: failed to sign up gamer: %v", err)
	}
	return attendance
}
