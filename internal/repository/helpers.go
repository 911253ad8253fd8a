package repository

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/scamp925/level-up-server/internal/model"
)

// Table names
const (
	tableGameType   = "game_type"
	tableGamer      = "gamer"
	tableGame       = "game"
	tableEvent      = "event"
	tableEventGamer = "event_gamer"
)

var errUnexpectedFormat = errors.New("unexpected result format")

// isRecordOf reports whether id is a record id of the given table.
// Lookups with an id of another table are treated as not found.
func isRecordOf(table, id string) bool {
	key, ok := strings.CutPrefix(id, table+":")
	return ok && key != "" && !strings.ContainsAny(key, " ;")
}

// convertSurrealID normalizes the forms SurrealDB returns for record ids
func convertSurrealID(id interface{}) string {
	switch v := id.(type) {
	case string:
		return v
	case models.RecordID:
		return fmt.Sprintf("%s:%v", v.Table, v.ID)
	case *models.RecordID:
		if v != nil {
			return fmt.Sprintf("%s:%v", v.Table, v.ID)
		}
	case map[string]interface{}:
		// Fetched record links arrive as the full record
		if inner, ok := v["id"]; ok {
			if _, nested := inner.(map[string]interface{}); !nested {
				return convertSurrealID(inner)
			}
		}
		tb, _ := v["tb"].(string)
		if key, ok := v["id"].(map[string]interface{}); ok {
			if s, ok := key["String"].(string); ok && tb != "" {
				return tb + ":" + s
			}
		}
	}
	return ""
}

// queryRecords returns the records of the first statement of a Query result
func queryRecords(result []interface{}) []map[string]interface{} {
	if len(result) == 0 {
		return nil
	}
	resp, ok := result[0].(map[string]interface{})
	if !ok {
		return nil
	}
	rows, ok := resp["result"].([]interface{})
	if !ok {
		return nil
	}
	records := make([]map[string]interface{}, 0, len(rows))
	for _, row := range rows {
		if m, ok := row.(map[string]interface{}); ok {
			records = append(records, m)
		}
	}
	return records
}

// firstRecord returns the first record of a CREATE result
func firstRecord(result []interface{}) (map[string]interface{}, error) {
	records := queryRecords(result)
	if len(records) == 0 {
		return nil, errors.New("no result returned")
	}
	return records[0], nil
}

func asRecord(result interface{}) (map[string]interface{}, error) {
	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errUnexpectedFormat
	}
	return data, nil
}

// getString extracts a string value from a map
func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// getInt extracts an int value from a map
func getInt(m map[string]interface{}, key string) int {
	switch v := m[key].(type) {
	case float64:
		return int(v)
	case float32:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	}
	return 0
}

// getTime extracts a time value from a map
func getTime(m map[string]interface{}, key string) time.Time {
	switch v := m[key].(type) {
	case time.Time:
		return v
	case string:
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return t
		}
	case models.CustomDateTime:
		return v.Time
	case *models.CustomDateTime:
		if v != nil {
			return v.Time
		}
	}
	return time.Time{}
}

// getRecord returns a fetched record link, or nil when the link was not fetched
func getRecord(m map[string]interface{}, key string) map[string]interface{} {
	if v, ok := m[key].(map[string]interface{}); ok {
		if _, hasID := v["id"]; hasID {
			return v
		}
	}
	return nil
}

func parseGameType(data map[string]interface{}) *model.GameType {
	return &model.GameType{
		ID:    convertSurrealID(data["id"]),
		Label: getString(data, "label"),
	}
}

func parseGamer(data map[string]interface{}) *model.Gamer {
	return &model.Gamer{
		ID:        convertSurrealID(data["id"]),
		UID:       getString(data, "uid"),
		Bio:       getString(data, "bio"),
		CreatedOn: getTime(data, "created_on"),
	}
}

// parseGame maps a game record. game_type and gamer are hydrated when
// the query fetched them.
func parseGame(data map[string]interface{}) *model.Game {
	game := &model.Game{
		ID:              convertSurrealID(data["id"]),
		Title:           getString(data, "title"),
		Maker:           getString(data, "maker"),
		NumberOfPlayers: getInt(data, "number_of_players"),
		SkillLevel:      getInt(data, "skill_level"),
		GameTypeID:      convertSurrealID(data["game_type"]),
		GamerID:         convertSurrealID(data["gamer"]),
	}
	if gt := getRecord(data, "game_type"); gt != nil {
		game.GameType = parseGameType(gt)
	}
	if g := getRecord(data, "gamer"); g != nil {
		game.Gamer = parseGamer(g)
	}
	return game
}

// parseEvent maps an event record, hydrating game and organizer when fetched
func parseEvent(data map[string]interface{}) *model.Event {
	event := &model.Event{
		ID:          convertSurrealID(data["id"]),
		Description: getString(data, "description"),
		Date:        getString(data, "date"),
		Time:        getString(data, "time"),
		GameID:      convertSurrealID(data["game"]),
		OrganizerID: convertSurrealID(data["organizer"]),
	}
	if g := getRecord(data, "game"); g != nil {
		event.Game = parseGame(g)
	}
	if o := getRecord(data, "organizer"); o != nil {
		event.Organizer = parseGamer(o)
	}
	return event
}

func parseEventGamer(data map[string]interface{}) *model.EventGamer {
	return &model.EventGamer{
		ID:        convertSurrealID(data["id"]),
		EventID:   convertSurrealID(data["event"]),
		GamerID:   convertSurrealID(data["gamer"]),
		CreatedOn: getTime(data, "created_on"),
	}
}
