package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scamp925/level-up-server/internal/database"
	"github.com/scamp925/level-up-server/internal/model"
	"github.com/scamp925/level-up-server/internal/repository"
	"github.com/scamp925/level-up-server/internal/testing/fixtures"
	"github.com/scamp925/level-up-server/internal/testing/testdb"
)

type repos struct {
	gameTypes  *repository.GameTypeRepository
	gamers     *repository.GamerRepository
	games      *repository.GameRepository
	events     *repository.EventRepository
	attendance *repository.AttendanceRepository
	f          *fixtures.Factory
}

func setup(t *testing.T) (*testdb.TestDB, *repos) {
	t.Helper()

	tdb := testdb.New(t)
	t.Cleanup(tdb.Close)

	r := &repos{
		gameTypes:  repository.NewGameTypeRepository(tdb.DB),
		gamers:     repository.NewGamerRepository(tdb.DB),
		games:      repository.NewGameRepository(tdb.DB),
		events:     repository.NewEventRepository(tdb.DB),
		attendance: repository.NewAttendanceRepository(tdb.DB),
	}
	r.f = fixtures.New(fixtures.Repos{
		GameTypes:  r.gameTypes,
		Gamers:     r.gamers,
		Games:      r.games,
		Events:     r.events,
		Attendance: r.attendance,
	})
	return tdb, r
}

func TestGamerRepository_UIDUnique(t *testing.T) {
	tdb, r := setup(t)
	ctx := tdb.Ctx()

	gamer := r.f.CreateGamer(t, func(o *fixtures.GamerOpts) { o.UID = "uid-dup" })

	got, err := r.gamers.GetByUID(ctx, "uid-dup")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, gamer.ID, got.ID)

	err = r.gamers.Create(ctx, &model.Gamer{UID: "uid-dup"})
	assert.ErrorIs(t, err, database.ErrDuplicate)

	missing, err := r.gamers.GetByUID(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestGameRepository_GetHydrates(t *testing.T) {
	tdb, r := setup(t)
	ctx := tdb.Ctx()

	owner := r.f.CreateGamer(t)
	board := r.f.CreateGameType(t, "Board game")
	game := r.f.CreateGame(t, owner, fixtures.WithGameType(board))

	got, err := r.games.Get(ctx, game.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.GameType)
	require.NotNil(t, got.Gamer)
	assert.Equal(t, "Board game", got.GameType.Label)
	assert.Equal(t, owner.UID, got.Gamer.UID)

	// An id of another table is not a game
	other, err := r.games.Get(ctx, owner.ID)
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestGameRepository_ListByType(t *testing.T) {
	tdb, r := setup(t)
	ctx := tdb.Ctx()

	owner := r.f.CreateGamer(t)
	board := r.f.CreateGameType(t)
	card := r.f.CreateGameType(t)
	r.f.CreateGame(t, owner, fixtures.WithGameType(board))
	r.f.CreateGame(t, owner, fixtures.WithGameType(board))
	r.f.CreateGame(t, owner, fixtures.WithGameType(card))

	all, err := r.games.List(ctx, model.GameFilters{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	boards, err := r.games.List(ctx, model.GameFilters{GameTypeID: &board.ID})
	require.NoError(t, err)
	assert.Len(t, boards, 2)
	for _, g := range boards {
		assert.Equal(t, board.ID, g.GameTypeID)
	}
}

func TestEventRepository_CRUD(t *testing.T) {
	tdb, r := setup(t)
	ctx := tdb.Ctx()

	organizer := r.f.CreateGamer(t)
	game := r.f.CreateGame(t, organizer)
	other := r.f.CreateGame(t, organizer)
	event := r.f.CreateEvent(t, game, organizer)

	got, err := r.events.Get(ctx, event.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.Game)
	require.NotNil(t, got.Game.GameType)
	require.NotNil(t, got.Organizer)
	assert.Equal(t, organizer.ID, got.Organizer.ID)

	got.Description = "Moved"
	got.Date = "2026-12-01"
	got.Time = "18:00:00"
	got.GameID = other.ID
	require.NoError(t, r.events.Update(ctx, got))

	updated, err := r.events.Get(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, "Moved", updated.Description)
	assert.Equal(t, other.ID, updated.GameID)
	assert.Equal(t, organizer.ID, updated.OrganizerID)

	byGame, err := r.events.List(ctx, model.EventFilters{GameID: &other.ID})
	require.NoError(t, err)
	assert.Len(t, byGame, 1)
}

func TestEventRepository_DeleteRemovesAttendance(t *testing.T) {
	tdb, r := setup(t)
	ctx := tdb.Ctx()

	organizer := r.f.CreateGamer(t)
	player := r.f.CreateGamer(t)
	event := r.f.CreateEvent(t, r.f.CreateGame(t, organizer), organizer)
	r.f.SignUp(t, event, player)

	require.NoError(t, r.events.Delete(ctx, event.ID))

	gone, err := r.events.Get(ctx, event.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	rows := tdb.MustQuery(`SELECT * FROM event_gamer WHERE gamer = type::record($gamer)`,
		map[string]interface{}{"gamer": player.ID})
	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].(map[string]interface{})["result"])
}

func TestAttendanceRepository_SignupLifecycle(t *testing.T) {
	tdb, r := setup(t)
	ctx := tdb.Ctx()

	organizer := r.f.CreateGamer(t)
	first := r.f.CreateGamer(t)
	second := r.f.CreateGamer(t)
	event := r.f.CreateEvent(t, r.f.CreateGame(t, organizer), organizer)

	r.f.SignUp(t, event, first)
	r.f.SignUp(t, event, second)

	err := r.attendance.Create(ctx, &model.EventGamer{EventID: event.ID, GamerID: first.ID})
	assert.ErrorIs(t, err, database.ErrDuplicate)

	gamers, err := r.attendance.ListGamers(ctx, event.ID)
	require.NoError(t, err)
	require.Len(t, gamers, 2)
	assert.Equal(t, first.ID, gamers[0].ID)

	row, err := r.attendance.Get(ctx, event.ID, first.ID)
	require.NoError(t, err)
	require.NotNil(t, row)
	require.NoError(t, r.attendance.Delete(ctx, row.ID))

	row, err = r.attendance.Get(ctx, event.ID, first.ID)
	require.NoError(t, err)
	assert.Nil(t, row)
}
