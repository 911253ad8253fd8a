package model

// GameType is a category label for games (e.g. "Board game").
// Reference data created by administrators.
type GameType struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// MaxGameTypeLabelLength bounds labels accepted by the seeder
const MaxGameTypeLabelLength = 50
