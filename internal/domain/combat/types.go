// Package combat runs the automatic battle resolution. The engine is
// deterministic for a given set of units and targeting rule: no wall
// clock, no global randomness, integer arithmetic only.
package combat

import (
	"fmt"
	"sort"

	"cursedwarden/internal/domain/content"
	"cursedwarden/internal/domain/loadout"
)

type Side string

const (
	SidePlayer Side = "player"
	SideEnemy  Side = "enemy"
)

type Outcome string

const (
	OutcomeVictory Outcome = "victory"
	OutcomeDefeat  Outcome = "defeat"
	OutcomeDraw    Outcome = "draw"
)

// Unit is the immutable part of a combatant. Attack carries the flat
// attack value; player units additionally carry the per-material split
// so the modifier table applies per target kind.
type Unit struct {
	ID        string
	Name      string
	Side      Side
	Kind      content.UnitKind
	Material  content.Material
	MaxHP     int
	Attack    int
	Defense   int
	Speed     int
	Abilities []content.AbilityDefinition

	attackByMaterial map[content.Material]int
}

// PlayerUnit builds the player combatant from a resolved loadout.
// Health from the snapshot is the hit point pool.
func PlayerUnit(id, name string, snap loadout.PlayerSnapshot) Unit {
	return Unit{
		ID:               id,
		Name:             name,
		Side:             SidePlayer,
		Kind:             content.KindHuman,
		MaxHP:            snap.Stats.Health,
		Attack:           snap.Stats.Attack,
		Defense:          snap.Stats.Defense,
		Speed:            snap.Stats.Speed,
		attackByMaterial: snap.AttackByMaterial,
	}
}

// EnemyUnit instantiates one enemy from its definition. The id must be
// unique within the battle; callers suffix the definition id when the
// same enemy appears more than once.
func EnemyUnit(id string, def content.EnemyDefinition) Unit {
	return Unit{
		ID:        id,
		Name:      def.Name,
		Side:      SideEnemy,
		Kind:      def.Kind,
		Material:  def.Material,
		MaxHP:     def.MaxHP,
		Attack:    def.Attack,
		Defense:   def.Defense,
		Speed:     def.Speed,
		Abilities: def.Abilities,
	}
}

// AttackAgainst is the attack value after the material modifier table.
// Player units apply the table per material contribution; enemy units
// apply their single material to the whole value.
func (u Unit) AttackAgainst(kind content.UnitKind) int {
	if u.attackByMaterial != nil {
		mats := make([]content.Material, 0, len(u.attackByMaterial))
		for mat := range u.attackByMaterial {
			mats = append(mats, mat)
		}
		sort.Slice(mats, func(i, j int) bool { return mats[i] < mats[j] })
		total := 0
		for _, mat := range mats {
			total += u.attackByMaterial[mat] * mat.ModifierPercent(kind) / 100
		}
		return total
	}
	if u.Material == "" {
		return u.Attack
	}
	return u.Attack * u.Material.ModifierPercent(kind) / 100
}

// EventType enumerates everything the battle log records.
type EventType string

const (
	EventRoundStart  EventType = "round_start"
	EventAttack      EventType = "attack"
	EventAbility     EventType = "ability"
	EventStatusApply EventType = "status_applied"
	EventStatusTick  EventType = "status_tick"
	EventDeath       EventType = "death"
	EventFinish      EventType = "finish"
)

// Event is one battle log entry. Fields not meaningful for the type stay
// zero; Render produces the stable human-readable line used in replays.
type Event struct {
	Round  int       `json:"round"`
	Type   EventType `json:"type"`
	Actor  string    `json:"actor,omitempty"`
	Target string    `json:"target,omitempty"`
	Amount int       `json:"amount,omitempty"`
	Detail string    `json:"detail,omitempty"`
}

func (e Event) Render() string {
	switch e.Type {
	case EventRoundStart:
		return fmt.Sprintf("r%d: round start", e.Round)
	case EventAttack:
		return fmt.Sprintf("r%d: %s hits %s for %d", e.Round, e.Actor, e.Target, e.Amount)
	case EventAbility:
		return fmt.Sprintf("r%d: %s uses %s on %s for %d", e.Round, e.Actor, e.Detail, e.Target, e.Amount)
	case EventStatusApply:
		return fmt.Sprintf("r%d: %s afflicted by %s (%d)", e.Round, e.Target, e.Detail, e.Amount)
	case EventStatusTick:
		return fmt.Sprintf("r%d: %s suffers %s for %d", e.Round, e.Target, e.Detail, e.Amount)
	case EventDeath:
		return fmt.Sprintf("r%d: %s dies", e.Round, e.Target)
	case EventFinish:
		return fmt.Sprintf("r%d: battle over: %s", e.Round, e.Detail)
	}
	return fmt.Sprintf("r%d: %s", e.Round, e.Type)
}

// UnitState is the end-of-battle report for one combatant.
type UnitState struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Side  Side   `json:"side"`
	HP    int    `json:"hp"`
	MaxHP int    `json:"max_hp"`
}

// Result is the full battle outcome.
type Result struct {
	Outcome Outcome     `json:"outcome"`
	Rounds  int         `json:"rounds"`
	Units   []UnitState `json:"units"`
	Events  []Event     `json:"events"`
}
