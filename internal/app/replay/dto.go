package replay

import (
	"cursedwarden/internal/app/ports"
	"cursedwarden/internal/domain/campaign"
)

type Request struct {
	ProfileID string
	Limit     int
	// Unix second bounds on event time; zero disables a bound.
	OccurredFrom int64
	OccurredTo   int64
}

// BattleView is one stored battle with its rendered log.
type BattleView struct {
	Day     int      `json:"day"`
	Outcome string   `json:"outcome"`
	Rounds  int      `json:"rounds"`
	Seed    int64    `json:"seed,omitempty"`
	Log     []string `json:"log"`
}

type Response struct {
	Events  []campaign.Event `json:"events"`
	Battles []BattleView     `json:"battles"`
}

func toBattleView(rec ports.BattleRecord) BattleView {
	view := BattleView{
		Day:     rec.Day,
		Outcome: string(rec.Result.Outcome),
		Rounds:  rec.Result.Rounds,
		Seed:    rec.Seed,
	}
	for _, e := range rec.Result.Events {
		view.Log = append(view.Log, e.Render())
	}
	return view
}
