package combat

import "math/rand"

// TargetRule picks the victim for one attack. Foes arrive alive and
// sorted by unit id ascending, so rules stay deterministic.
type TargetRule interface {
	SelectTarget(attacker *Runtime, foes []*Runtime) *Runtime
}

// FocusRule targets the foe with the lowest current hit points, ties
// broken by unit id ascending. This is the default for both sides.
type FocusRule struct{}

func (FocusRule) SelectTarget(_ *Runtime, foes []*Runtime) *Runtime {
	var best *Runtime
	for _, f := range foes {
		if best == nil || f.HP < best.HP {
			best = f
		}
	}
	return best
}

// SeededRule targets uniformly at random from a fixed seed. The same
// seed replays the same battle, which keeps headless runs repeatable.
type SeededRule struct {
	rng *rand.Rand
}

func NewSeededRule(seed int64) *SeededRule {
	return &SeededRule{rng: rand.New(rand.NewSource(seed))}
}

func (r *SeededRule) SelectTarget(_ *Runtime, foes []*Runtime) *Runtime {
	if len(foes) == 0 {
		return nil
	}
	return foes[r.rng.Intn(len(foes))]
}
