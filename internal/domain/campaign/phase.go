// Package campaign tracks run progression: the day counter, the phase
// cycle, and the domain events emitted as the run advances.
package campaign

import "fmt"

// Phase is where the run currently sits in the daily cycle. Day is for
// arranging the inventory, Evening resolves the battle, Night applies
// item mutations, then the next Day begins.
type Phase string

const (
	PhaseDay      Phase = "day"
	PhaseEvening  Phase = "evening"
	PhaseNight    Phase = "night"
	PhaseGameOver Phase = "game_over"
)

// Progress is the campaign clock for one profile.
type Progress struct {
	Day   int   `json:"day"`
	Phase Phase `json:"phase"`
}

func NewProgress() Progress {
	return Progress{Day: 1, Phase: PhaseDay}
}

// Advance moves to the next phase. Leaving Night increments the day.
// A finished run stays in game over.
func (p Progress) Advance() Progress {
	switch p.Phase {
	case PhaseDay:
		p.Phase = PhaseEvening
	case PhaseEvening:
		p.Phase = PhaseNight
	case PhaseNight:
		p.Phase = PhaseDay
		p.Day++
	case PhaseGameOver:
	}
	return p
}

// Finish ends the run.
func (p Progress) Finish() Progress {
	p.Phase = PhaseGameOver
	return p
}

func (p Progress) Over() bool { return p.Phase == PhaseGameOver }

func (p Progress) String() string {
	return fmt.Sprintf("day %d (%s)", p.Day, p.Phase)
}
