package model

import (
	"strings"
	"testing"
)

func intPtr(v int) *int { return &v }

func hasFieldError(errs []FieldError, field string) bool {
	for _, e := range errs {
		if e.Field == field {
			return true
		}
	}
	return false
}

// ============================================================================
// CreateEventRequest Tests
// ============================================================================

func TestCreateEventRequest_Validate_Valid(t *testing.T) {
	t.Parallel()

	req := &CreateEventRequest{
		Game:        "game:chess",
		Organizer:   "uid-123",
		Description: "Friday night chess",
		Date:        "2026-11-06",
		Time:        "19:30",
	}

	errs := req.Validate()
	if len(errs) > 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if req.Time != "19:30:00" {
		t.Errorf("expected time normalized to 19:30:00, got %q", req.Time)
	}
	if req.Date != "2026-11-06" {
		t.Errorf("expected date unchanged, got %q", req.Date)
	}
}

func TestCreateEventRequest_Validate_MissingFields(t *testing.T) {
	t.Parallel()

	req := &CreateEventRequest{}

	errs := req.Validate()
	for _, field := range []string{"game", "organizer", "description", "date", "time"} {
		if !hasFieldError(errs, field) {
			t.Errorf("expected %s error, got %v", field, errs)
		}
	}
}

func TestCreateEventRequest_Validate_BadDateAndTime(t *testing.T) {
	t.Parallel()

	req := &CreateEventRequest{
		Game:        "game:chess",
		Organizer:   "uid-123",
		Description: "Chess",
		Date:        "11/06/2026",
		Time:        "7pm",
	}

	errs := req.Validate()
	if len(errs) != 2 || !hasFieldError(errs, "date") || !hasFieldError(errs, "time") {
		t.Errorf("expected date and time errors, got %v", errs)
	}
}

func TestCreateEventRequest_Validate_DescriptionTooLong(t *testing.T) {
	t.Parallel()

	req := &CreateEventRequest{
		Game:        "game:chess",
		Organizer:   "uid-123",
		Description: strings.Repeat("a", MaxEventDescriptionLength+1),
		Date:        "2026-11-06",
		Time:        "19:30:00",
	}

	errs := req.Validate()
	if len(errs) != 1 || errs[0].Field != "description" {
		t.Errorf("expected description error, got %v", errs)
	}
}

// ============================================================================
// UpdateEventRequest Tests
// ============================================================================

func TestUpdateEventRequest_Validate_RequiresGame(t *testing.T) {
	t.Parallel()

	req := &UpdateEventRequest{
		Description: "Rescheduled",
		Date:        "2026-11-07",
		Time:        "18:00:00",
	}

	errs := req.Validate()
	if len(errs) != 1 || errs[0].Field != "game" {
		t.Errorf("expected game error, got %v", errs)
	}
}

// ============================================================================
// CreateGameRequest Tests
// ============================================================================

func TestCreateGameRequest_Validate_Valid(t *testing.T) {
	t.Parallel()

	req := &CreateGameRequest{
		UserID:          "uid-123",
		GameType:        "game_type:board",
		Title:           "Chess",
		Maker:           "Staunton",
		NumberOfPlayers: intPtr(2),
		SkillLevel:      intPtr(3),
	}

	if errs := req.Validate(); len(errs) > 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestCreateGameRequest_Validate_MissingNumbers(t *testing.T) {
	t.Parallel()

	req := &CreateGameRequest{
		UserID:   "uid-123",
		GameType: "game_type:board",
		Title:    "Chess",
		Maker:    "Staunton",
	}

	errs := req.Validate()
	if !hasFieldError(errs, "number_of_players") || !hasFieldError(errs, "skill_level") {
		t.Errorf("expected number_of_players and skill_level errors, got %v", errs)
	}
}

func TestCreateGameRequest_Validate_Ranges(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		players int
		skill   int
		field   string
	}{
		{"zero players", 0, 3, "number_of_players"},
		{"negative players", -2, 3, "number_of_players"},
		{"negative skill", 2, -1, "skill_level"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := &CreateGameRequest{
				UserID:          "uid-123",
				GameType:        "game_type:board",
				Title:           "Chess",
				Maker:           "Staunton",
				NumberOfPlayers: intPtr(tt.players),
				SkillLevel:      intPtr(tt.skill),
			}
			errs := req.Validate()
			if len(errs) != 1 || errs[0].Field != tt.field {
				t.Errorf("expected %s error, got %v", tt.field, errs)
			}
		})
	}
}

func TestCreateGameRequest_Validate_NoSkillCeiling(t *testing.T) {
	t.Parallel()

	req := &CreateGameRequest{
		UserID:          "uid-123",
		GameType:        "game_type:board",
		Title:           "Twilight Imperium",
		Maker:           "Fantasy Flight",
		NumberOfPlayers: intPtr(6),
		SkillLevel:      intPtr(11),
	}

	if errs := req.Validate(); len(errs) > 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestRequestLengths_CountCharacters(t *testing.T) {
	t.Parallel()

	game := &CreateGameRequest{
		UserID:          strings.Repeat("ü", MaxUIDLength),
		GameType:        "game_type:board",
		Title:           strings.Repeat("é", MaxGameTitleLength),
		Maker:           strings.Repeat("ö", MaxGameMakerLength),
		NumberOfPlayers: intPtr(2),
		SkillLevel:      intPtr(1),
	}
	if errs := game.Validate(); len(errs) > 0 {
		t.Errorf("expected no errors for multibyte game fields, got %v", errs)
	}

	gamer := &RegisterGamerRequest{UID: "uid-1", Bio: strings.Repeat("ß", MaxBioLength)}
	if errs := gamer.Validate(); len(errs) > 0 {
		t.Errorf("expected no errors for multibyte bio, got %v", errs)
	}

	event := &CreateEventRequest{
		Game:        "game:1",
		Organizer:   "uid-1",
		Description: strings.Repeat("é", 600),
		Date:        "2026-11-06",
		Time:        "19:30",
	}
	if errs := event.Validate(); len(errs) > 0 {
		t.Errorf("expected no errors for multibyte description, got %v", errs)
	}

	event.Description = strings.Repeat("é", MaxEventDescriptionLength+1)
	if errs := event.Validate(); !hasFieldError(errs, "description") {
		t.Errorf("expected description error, got %v", errs)
	}
}

// ============================================================================
// Gamer Request Tests
// ============================================================================

func TestRegisterGamerRequest_Validate(t *testing.T) {
	t.Parallel()

	if errs := (&RegisterGamerRequest{UID: "uid-1", Bio: "I like chess"}).Validate(); len(errs) > 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
	if errs := (&RegisterGamerRequest{UID: "  "}).Validate(); !hasFieldError(errs, "uid") {
		t.Errorf("expected uid error, got %v", errs)
	}
	long := &RegisterGamerRequest{UID: "uid-1", Bio: strings.Repeat("b", MaxBioLength+1)}
	if errs := long.Validate(); !hasFieldError(errs, "bio") {
		t.Errorf("expected bio error, got %v", errs)
	}
}

func TestGamerUIDRequest_Validate(t *testing.T) {
	t.Parallel()

	if errs := (&GamerUIDRequest{UID: "uid-1"}).Validate(); errs != nil {
		t.Errorf("expected no errors, got %v", errs)
	}
	if errs := (&GamerUIDRequest{}).Validate(); len(errs) != 1 || errs[0].Field != "uid" {
		t.Errorf("expected uid error, got %v", errs)
	}
}

// ============================================================================
// Normalization Tests
// ============================================================================

func TestNormalizeTime(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		want string
		ok   bool
	}{
		"19:30":    {"19:30:00", true},
		"07:05:09": {"07:05:09", true},
		" 08:00 ":  {"08:00:00", true},
		"25:00":    {"", false},
		"noon":     {"", false},
	}
	for in, tt := range tests {
		got, ok := NormalizeTime(in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("NormalizeTime(%q) = %q, %v; want %q, %v", in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestNormalizeDate(t *testing.T) {
	t.Parallel()

	if got, ok := NormalizeDate("2026-02-28"); !ok || got != "2026-02-28" {
		t.Errorf("unexpected result %q, %v", got, ok)
	}
	if _, ok := NormalizeDate("2026-02-30"); ok {
		t.Error("expected invalid calendar date to fail")
	}
}
