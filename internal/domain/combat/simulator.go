package combat

import (
	"context"
	"fmt"
	"log"
	"sort"

	"cursedwarden/internal/domain/content"
)

// DefaultMaxRounds caps a battle that neither side can end.
const DefaultMaxRounds = 30

// Config tunes one simulation run. Zero values fall back to the round
// cap default and the focus targeting rule.
type Config struct {
	MaxRounds int
	Rule      TargetRule
}

type battle struct {
	units  []*Runtime
	byID   map[string]*Runtime
	rule   TargetRule
	events []Event
}

// Simulate runs the battle to completion. The context is checked between
// rounds only; a cancelled battle returns the context error together
// with the state as of the last completed round. Internal consistency
// failures do not return an error: they are logged and the battle
// resolves as a draw.
func Simulate(ctx context.Context, player Unit, enemies []Unit, cfg Config) (Result, error) {
	if cfg.MaxRounds <= 0 {
		cfg.MaxRounds = DefaultMaxRounds
	}
	if cfg.Rule == nil {
		cfg.Rule = FocusRule{}
	}

	b := &battle{rule: cfg.Rule, byID: make(map[string]*Runtime)}
	for _, u := range append([]Unit{player}, enemies...) {
		if _, dup := b.byID[u.ID]; dup {
			return Result{}, fmt.Errorf("duplicate unit id %q", u.ID)
		}
		rt := newRuntime(u)
		b.byID[u.ID] = rt
		b.units = append(b.units, rt)
	}

	round := 0
	for {
		if err := ctx.Err(); err != nil {
			return b.snapshot(round), err
		}
		round++
		if round > cfg.MaxRounds {
			return b.finish(cfg.MaxRounds, OutcomeDraw, "round limit reached"), nil
		}
		b.events = append(b.events, Event{Round: round, Type: EventRoundStart})

		for _, actor := range turnOrder(b.units) {
			if !actor.Alive() {
				continue
			}
			foes := b.livingFoes(actor.Side)
			if len(foes) == 0 {
				break
			}
			target := b.rule.SelectTarget(actor, foes)
			if target == nil {
				continue
			}
			b.attack(round, actor, target)
			if out, done := b.outcome(); done {
				return b.finish(round, out, string(out)), nil
			}
		}

		b.tickRound(round)
		if out, done := b.outcome(); done {
			return b.finish(round, out, string(out)), nil
		}
		if err := b.audit(); err != nil {
			log.Printf("combat: state audit failed, resolving as draw: %v", err)
			return b.finish(round, OutcomeDraw, "state audit failed"), nil
		}
	}
}

func (b *battle) livingFoes(side Side) []*Runtime {
	var foes []*Runtime
	for _, u := range b.units {
		if u.Side != side && u.Alive() {
			foes = append(foes, u)
		}
	}
	sort.Slice(foes, func(i, j int) bool { return foes[i].ID < foes[j].ID })
	return foes
}

// attack performs one strike plus the attacker's on-attack abilities and
// the victim's on-death abilities.
func (b *battle) attack(round int, actor, target *Runtime) {
	raw := actor.AttackAgainst(target.Kind)
	dealt := clampDamage(finalDamage(raw, target.Defense), target.HP)
	target.HP -= dealt
	b.events = append(b.events, Event{
		Round: round, Type: EventAttack,
		Actor: actor.ID, Target: target.ID, Amount: dealt,
	})

	for _, ab := range actor.Abilities {
		if ab.Trigger != content.TriggerOnAttack {
			continue
		}
		b.applyAbility(round, actor, target, ab)
	}

	b.resolveDeath(round, target, actor)
}

// resolveDeath is the single exit path for a dying unit: one death
// event, then its on-death abilities, fired exactly once no matter what
// killed it. Tick deaths pass a nil source; the targeting rule picks a
// foe for any retaliation.
func (b *battle) resolveDeath(round int, victim, source *Runtime) {
	if victim.Alive() || victim.deathHandled {
		return
	}
	victim.deathHandled = true
	b.events = append(b.events, Event{Round: round, Type: EventDeath, Target: victim.ID})
	for _, ab := range victim.Abilities {
		if ab.Trigger != content.TriggerOnDeath {
			continue
		}
		target := source
		if target == nil || !target.Alive() {
			foes := b.livingFoes(victim.Side)
			if len(foes) == 0 {
				continue
			}
			target = b.rule.SelectTarget(victim, foes)
			if target == nil {
				continue
			}
		}
		b.applyAbility(round, victim, target, ab)
	}
}

func (b *battle) applyAbility(round int, actor, target *Runtime, ab content.AbilityDefinition) {
	switch ab.Effect {
	case content.AbilityDamage:
		if !target.Alive() {
			return
		}
		dealt := clampDamage(ab.Amount, target.HP)
		target.HP -= dealt
		b.events = append(b.events, Event{
			Round: round, Type: EventAbility,
			Actor: actor.ID, Target: target.ID, Amount: dealt, Detail: ab.ID,
		})
		b.resolveDeath(round, target, actor)
	case content.AbilityHeal:
		healed := ab.Amount
		if actor.HP+healed > actor.MaxHP {
			healed = actor.MaxHP - actor.HP
		}
		actor.HP += healed
		b.events = append(b.events, Event{
			Round: round, Type: EventAbility,
			Actor: actor.ID, Target: actor.ID, Amount: healed, Detail: ab.ID,
		})
	case content.AbilityStatus:
		if !target.Alive() {
			return
		}
		target.ApplyStatus(ab.Status, ab.Amount, ab.Rounds)
		b.events = append(b.events, Event{
			Round: round, Type: EventStatusApply,
			Actor: actor.ID, Target: target.ID, Amount: ab.Amount, Detail: ab.Status,
		})
	}
}

// tickRound applies end-of-round status effects, in unit id order.
func (b *battle) tickRound(round int) {
	ids := make([]string, 0, len(b.units))
	for _, u := range b.units {
		ids = append(ids, u.ID)
	}
	sort.Strings(ids)
	for _, id := range ids {
		u := b.byID[id]
		if !u.Alive() {
			continue
		}
		b.events = append(b.events, u.tickStatuses(round)...)
		b.resolveDeath(round, u, nil)
	}
}

func (b *battle) outcome() (Outcome, bool) {
	playerAlive, enemyAlive := false, false
	for _, u := range b.units {
		if !u.Alive() {
			continue
		}
		if u.Side == SidePlayer {
			playerAlive = true
		} else {
			enemyAlive = true
		}
	}
	switch {
	case !playerAlive && !enemyAlive:
		return OutcomeDraw, true
	case !playerAlive:
		return OutcomeDefeat, true
	case !enemyAlive:
		return OutcomeVictory, true
	}
	return "", false
}

func (b *battle) audit() error {
	for _, u := range b.units {
		if u.HP < 0 || u.HP > u.MaxHP {
			return fmt.Errorf("unit %s hp %d outside [0,%d]", u.ID, u.HP, u.MaxHP)
		}
	}
	return nil
}

func (b *battle) finish(round int, out Outcome, detail string) Result {
	b.events = append(b.events, Event{Round: round, Type: EventFinish, Detail: detail})
	res := b.snapshot(round)
	res.Outcome = out
	return res
}

// snapshot captures the battle as of the last completed round without
// declaring an outcome.
func (b *battle) snapshot(round int) Result {
	res := Result{Rounds: round, Events: b.events}
	units := make([]*Runtime, len(b.units))
	copy(units, b.units)
	sort.Slice(units, func(i, j int) bool { return units[i].ID < units[j].ID })
	for _, u := range units {
		res.Units = append(res.Units, UnitState{
			ID: u.ID, Name: u.Name, Side: u.Side, HP: u.HP, MaxHP: u.MaxHP,
		})
	}
	return res
}

// finalDamage is the armor curve: attacks at or above defense punch
// through at double rate minus armor, weaker attacks fall off
// quadratically. Integer division floors the weak branch.
func finalDamage(raw, defense int) int {
	if raw <= 0 {
		return 0
	}
	if raw >= defense {
		return 2*raw - defense
	}
	return raw * raw / defense
}

func clampDamage(dmg, hp int) int {
	if dmg < 0 {
		return 0
	}
	if dmg > hp {
		return hp
	}
	return dmg
}
