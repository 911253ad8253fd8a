package model

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Event is a scheduled session tied to one game and created by an
// organizing gamer. Date and Time are stored in their canonical wire
// formats (DateLayout, TimeLayout).
//
// Game (with its own GameType and Gamer) and Organizer are hydrated by the
// repositories on every read.
type Event struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	GameID      string `json:"game_id"`
	OrganizerID string `json:"organizer_id"`
	Game        *Game  `json:"-"`
	Organizer   *Gamer `json:"-"`
}

// EventGamer records one gamer attending one event
type EventGamer struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	GamerID   string    `json:"gamer_id"`
	CreatedOn time.Time `json:"created_on"`
}

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"

	MaxEventDescriptionLength = 1000
)

// timeLayouts are accepted on input; output is always TimeLayout
var timeLayouts = []string{TimeLayout, "15:04"}

// CreateEventRequest is the payload for POST /events.
// Organizer is the organizing gamer's uid.
type CreateEventRequest struct {
	Game        string `json:"game"`
	Organizer   string `json:"organizer"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

// Validate checks the request and normalizes Date and Time in place
func (r *CreateEventRequest) Validate() []FieldError {
	var errors []FieldError

	if strings.TrimSpace(r.Game) == "" {
		errors = append(errors, FieldError{Field: "game", Message: "game is required"})
	}
	if fe := validateUID("organizer", r.Organizer); fe != nil {
		errors = append(errors, *fe)
	}
	errors = append(errors, validateSchedule(&r.Description, &r.Date, &r.Time)...)

	return errors
}

// UpdateEventRequest is the payload for PUT /events/{id}. All four fields
// are overwritten; the organizer cannot be reassigned.
type UpdateEventRequest struct {
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Game        string `json:"game"`
}

// Validate checks the request and normalizes Date and Time in place
func (r *UpdateEventRequest) Validate() []FieldError {
	var errors []FieldError

	errors = append(errors, validateSchedule(&r.Description, &r.Date, &r.Time)...)
	if strings.TrimSpace(r.Game) == "" {
		errors = append(errors, FieldError{Field: "game", Message: "game is required"})
	}

	return errors
}

func validateSchedule(description, date, clock *string) []FieldError {
	var errors []FieldError

	if strings.TrimSpace(*description) == "" {
		errors = append(errors, FieldError{Field: "description", Message: "description is required"})
	} else if utf8.RuneCountInString(*description) > MaxEventDescriptionLength {
		errors = append(errors, FieldError{Field: "description", Message: "description must be 1000 characters or less"})
	}

	if *date == "" {
		errors = append(errors, FieldError{Field: "date", Message: "date is required"})
	} else if d, ok := NormalizeDate(*date); !ok {
		errors = append(errors, FieldError{Field: "date", Message: "date must be formatted YYYY-MM-DD"})
	} else {
		*date = d
	}

	if *clock == "" {
		errors = append(errors, FieldError{Field: "time", Message: "time is required"})
	} else if t, ok := NormalizeTime(*clock); !ok {
		errors = append(errors, FieldError{Field: "time", Message: "time must be formatted HH:MM or HH:MM:SS"})
	} else {
		*clock = t
	}

	return errors
}

// NormalizeDate parses a calendar date and returns it in DateLayout
func NormalizeDate(value string) (string, bool) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return "", false
	}
	return d.Format(DateLayout), true
}

// NormalizeTime parses a time of day and returns it in TimeLayout
func NormalizeTime(value string) (string, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(TimeLayout), true
		}
	}
	return "", false
}

// EventFilters narrows an event listing
type EventFilters struct {
	GameID *string
}

// SignupMessage confirms a successful signup
const SignupMessage = "Gamer added to event"
