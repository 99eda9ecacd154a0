package combat

import "sort"

// Status names understood by the tick step. Unknown names are carried
// but have no round effect, so content can define cosmetic statuses.
const (
	StatusPoison = "poison"
	StatusRegen  = "regen"
	StatusHaste  = "haste"
	StatusSlow   = "slow"
)

// Status is one active affliction. Poison stacks Amount when reapplied;
// every status refreshes Rounds to the larger of old and new.
type Status struct {
	Name   string
	Amount int
	Rounds int
}

// Runtime is the mutable battle state of one unit.
type Runtime struct {
	Unit
	HP       int
	statuses map[string]*Status

	// deathHandled marks that the death event and on-death abilities
	// have already been emitted for this unit.
	deathHandled bool
}

func newRuntime(u Unit) *Runtime {
	return &Runtime{Unit: u, HP: u.MaxHP, statuses: make(map[string]*Status)}
}

func (r *Runtime) Alive() bool { return r.HP > 0 }

// EffectiveSpeed folds haste and slow into the base speed.
func (r *Runtime) EffectiveSpeed() int {
	speed := r.Speed
	if st, ok := r.statuses[StatusHaste]; ok {
		speed += st.Amount
	}
	if st, ok := r.statuses[StatusSlow]; ok {
		speed -= st.Amount
	}
	return speed
}

// ApplyStatus merges a new application into the active set. Poison adds
// its amounts together; other statuses keep the stronger amount.
func (r *Runtime) ApplyStatus(name string, amount, rounds int) {
	cur, ok := r.statuses[name]
	if !ok {
		r.statuses[name] = &Status{Name: name, Amount: amount, Rounds: rounds}
		return
	}
	if name == StatusPoison {
		cur.Amount += amount
	} else if amount > cur.Amount {
		cur.Amount = amount
	}
	if rounds > cur.Rounds {
		cur.Rounds = rounds
	}
}

// Statuses returns the active set sorted by name, for reports.
func (r *Runtime) Statuses() []Status {
	out := make([]Status, 0, len(r.statuses))
	for _, st := range r.statuses {
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// tickStatuses applies end-of-round effects and expires counters. It
// returns the log events produced, in status name order.
func (r *Runtime) tickStatuses(round int) []Event {
	var events []Event
	for _, st := range r.Statuses() {
		live := r.statuses[st.Name]
		switch st.Name {
		case StatusPoison:
			dealt := live.Amount
			if dealt > r.HP {
				dealt = r.HP
			}
			r.HP -= dealt
			events = append(events, Event{
				Round: round, Type: EventStatusTick,
				Target: r.ID, Detail: StatusPoison, Amount: dealt,
			})
		case StatusRegen:
			healed := live.Amount
			if r.HP+healed > r.MaxHP {
				healed = r.MaxHP - r.HP
			}
			r.HP += healed
			events = append(events, Event{
				Round: round, Type: EventStatusTick,
				Target: r.ID, Detail: StatusRegen, Amount: healed,
			})
		}
		live.Rounds--
		if live.Rounds <= 0 {
			delete(r.statuses, st.Name)
		}
	}
	return events
}
