// Package fixtures provides test data factories for the Level Up API.
//
// # Factory Pattern
//
// Create a factory over a store's repositories:
//
//	f := fixtures.New(fixtures.Repos{
//	    GameTypes:  repository.NewGameTypeRepository(tdb.DB),
//	    Gamers:     repository.NewGamerRepository(tdb.DB),
//	    Games:      repository.NewGameRepository(tdb.DB),
//	    Events:     repository.NewEventRepository(tdb.DB),
//	    Attendance: repository.NewAttendanceRepository(tdb.DB),
//	})
//
// # Creating Test Data
//
//	gamer := f.CreateGamer(t)
//	game := f.CreateGame(t, gamer, fixtures.WithGameType(boardGames))
//	event := f.CreateEvent(t, game, gamer)
//	f.SignUp(t, event, otherGamer)
//
// # Random Data
//
// Unique uids and labels are generated automatically so fixtures never
// collide with unique indexes.
package fixtures
