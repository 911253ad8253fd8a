package model

import (
	"strings"
	"unicode/utf8"
)

// Game is a catalog entry for a playable game, owned by the gamer who
// submitted it and classified by a GameType.
//
// GameType and Gamer are hydrated by the repositories on every read.
type Game struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Maker           string    `json:"maker"`
	NumberOfPlayers int       `json:"number_of_players"`
	SkillLevel      int       `json:"skill_level"`
	GameTypeID      string    `json:"game_type_id"`
	GamerID         string    `json:"gamer_id"`
	GameType        *GameType `json:"-"`
	Gamer           *Gamer    `json:"-"`
}

const (
	MaxGameTitleLength = 100
	MaxGameMakerLength = 100
)

// CreateGameRequest is the payload for POST /games.
// UserID is the owner's uid.
type CreateGameRequest struct {
	UserID          string `json:"user_id"`
	GameType        string `json:"game_type"`
	Title           string `json:"title"`
	Maker           string `json:"maker"`
	NumberOfPlayers *int   `json:"number_of_players"`
	SkillLevel      *int   `json:"skill_level"`
}

// Validate checks if the create request is valid
func (r *CreateGameRequest) Validate() []FieldError {
	var errors []FieldError

	if fe := validateUID("user_id", r.UserID); fe != nil {
		errors = append(errors, *fe)
	}
	if strings.TrimSpace(r.GameType) == "" {
		errors = append(errors, FieldError{Field: "game_type", Message: "game_type is required"})
	}
	if strings.TrimSpace(r.Title) == "" {
		errors = append(errors, FieldError{Field: "title", Message: "title is required"})
	} else if utf8.RuneCountInString(r.Title) > MaxGameTitleLength {
		errors = append(errors, FieldError{Field: "title", Message: "title must be 100 characters or less"})
	}
	if strings.TrimSpace(r.Maker) == "" {
		errors = append(errors, FieldError{Field: "maker", Message: "maker is required"})
	} else if utf8.RuneCountInString(r.Maker) > MaxGameMakerLength {
		errors = append(errors, FieldError{Field: "maker", Message: "maker must be 100 characters or less"})
	}
	if r.NumberOfPlayers == nil {
		errors = append(errors, FieldError{Field: "number_of_players", Message: "number_of_players is required"})
	} else if *r.NumberOfPlayers <= 0 {
		errors = append(errors, FieldError{Field: "number_of_players", Message: "number_of_players must be positive"})
	}
	if r.SkillLevel == nil {
		errors = append(errors, FieldError{Field: "skill_level", Message: "skill_level is required"})
	} else if *r.SkillLevel < 0 {
		errors = append(errors, FieldError{Field: "skill_level", Message: "skill_level must not be negative"})
	}

	return errors
}

// GameFilters narrows a game listing
type GameFilters struct {
	GameTypeID *string
}
