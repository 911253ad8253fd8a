package model

// Resource types are the fixed wire projections of each entity. Related
// entities are expanded inline: a game carries its game type and owner,
// and an event carries its game (expanded the same way) and organizer.
// Nothing is expanded further than that.

// GameTypeResource is the wire form of a GameType
type GameTypeResource struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// GamerResource is the wire form of a Gamer
type GamerResource struct {
	ID  string `json:"id"`
	UID string `json:"uid"`
	Bio string `json:"bio"`
}

// GameResource is the wire form of a Game
type GameResource struct {
	ID              string            `json:"id"`
	GameType        *GameTypeResource `json:"game_type"`
	Title           string            `json:"title"`
	Maker           string            `json:"maker"`
	Gamer           *GamerResource    `json:"gamer"`
	NumberOfPlayers int               `json:"number_of_players"`
	SkillLevel      int               `json:"skill_level"`
}

// EventResource is the wire form of an Event
type EventResource struct {
	ID          string         `json:"id"`
	Game        *GameResource  `json:"game"`
	Description string         `json:"description"`
	Date        string         `json:"date"`
	Time        string         `json:"time"`
	Organizer   *GamerResource `json:"organizer"`
}

// CheckUserResource answers POST /checkuser and POST /register
type CheckUserResource struct {
	Valid bool   `json:"valid"`
	ID    string `json:"id,omitempty"`
	UID   string `json:"uid,omitempty"`
	Bio   string `json:"bio,omitempty"`
}

// MessageResource carries a confirmation message
type MessageResource struct {
	Message string `json:"message"`
}

func NewGameTypeResource(gt *GameType) *GameTypeResource {
	if gt == nil {
		return nil
	}
	return &GameTypeResource{ID: gt.ID, Label: gt.Label}
}

func NewGamerResource(g *Gamer) *GamerResource {
	if g == nil {
		return nil
	}
	return &GamerResource{ID: g.ID, UID: g.UID, Bio: g.Bio}
}

func NewGameResource(g *Game) *GameResource {
	if g == nil {
		return nil
	}
	return &GameResource{
		ID:              g.ID,
		GameType:        NewGameTypeResource(g.GameType),
		Title:           g.Title,
		Maker:           g.Maker,
		Gamer:           NewGamerResource(g.Gamer),
		NumberOfPlayers: g.NumberOfPlayers,
		SkillLevel:      g.SkillLevel,
	}
}

func NewEventResource(e *Event) *EventResource {
	if e == nil {
		return nil
	}
	return &EventResource{
		ID:          e.ID,
		Game:        NewGameResource(e.Game),
		Description: e.Description,
		Date:        e.Date,
		Time:        e.Time,
		Organizer:   NewGamerResource(e.Organizer),
	}
}

func NewCheckUserResource(g *Gamer) *CheckUserResource {
	if g == nil {
		return &CheckUserResource{Valid: false}
	}
	return &CheckUserResource{Valid: true, ID: g.ID, UID: g.UID, Bio: g.Bio}
}

// Collection helpers always return a non-nil slice so empty lists encode as []

func NewGameTypeResources(types []*GameType) []*GameTypeResource {
	out := make([]*GameTypeResource, 0, len(types))
	for _, gt := range types {
		out = append(out, NewGameTypeResource(gt))
	}
	return out
}

func NewGamerResources(gamers []*Gamer) []*GamerResource {
	out := make([]*GamerResource, 0, len(gamers))
	for _, g := range gamers {
		out = append(out, NewGamerResource(g))
	}
	return out
}

func NewGameResources(games []*Game) []*GameResource {
	out := make([]*GameResource, 0, len(games))
	for _, g := range games {
		out = append(out, NewGameResource(g))
	}
	return out
}

func NewEventResources(events []*Event) []*EventResource {
	out := make([]*EventResource, 0, len(events))
	for _, e := range events {
		out = append(out, NewEventResource(e))
	}
	return out
}
