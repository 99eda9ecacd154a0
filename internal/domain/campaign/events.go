package campaign

import "time"

// Event types recorded by the use case layer.
const (
	EventItemPlaced    = "item_placed"
	EventItemRemoved   = "item_removed"
	EventItemGrown     = "item_grown"
	EventBattleStarted = "battle_started"
	EventBattleEnded   = "battle_ended"
	EventDayAdvanced   = "day_advanced"
	EventRunEnded      = "run_ended"
)

// Event is one append-only record of something that happened to a
// profile. Payload keys are event-type specific.
type Event struct {
	Type       string         `json:"type"`
	ProfileID  string         `json:"profile_id"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}
