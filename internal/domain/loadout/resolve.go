// Package loadout folds a placed inventory into the stat snapshot the
// combat engine consumes. Resolution is a pure function of the grid and
// the catalog: same layout, same snapshot.
package loadout

import (
	"errors"
	"fmt"
	"sort"

	"cursedwarden/internal/domain/content"
	"cursedwarden/internal/domain/inventory"
	"cursedwarden/internal/domain/shape"
)

// ErrInconsistentState means the inventory references content the
// catalog no longer knows. It signals data corruption, not user error.
var ErrInconsistentState = errors.New("inventory references unknown content")

// StatBlock is the additive stat bundle shared by items and units.
type StatBlock struct {
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
	Speed   int `json:"speed"`
	Health  int `json:"health"`
}

func (b StatBlock) Add(other StatBlock) StatBlock {
	return StatBlock{
		Attack:  b.Attack + other.Attack,
		Defense: b.Defense + other.Defense,
		Speed:   b.Speed + other.Speed,
		Health:  b.Health + other.Health,
	}
}

// Activation records one synergy bonus that fired, for battle logs and
// the status endpoint.
type Activation struct {
	SourceID inventory.PlacedID `json:"source_id"`
	TargetID inventory.PlacedID `json:"target_id,omitempty"`
	Stat     content.Stat       `json:"stat"`
	Value    int                `json:"value"`
	Group    string             `json:"group,omitempty"`
}

// PlayerSnapshot is the resolved loadout: final stats plus the attack
// contribution per material, which the damage step needs to apply the
// material modifier table per enemy kind.
type PlayerSnapshot struct {
	Stats            StatBlock                `json:"stats"`
	AttackByMaterial map[content.Material]int `json:"attack_by_material"`
	Activations      []Activation             `json:"activations,omitempty"`
}

// EffectiveAttack applies the material modifier table against kind,
// flooring each per-material contribution independently.
func (p PlayerSnapshot) EffectiveAttack(kind content.UnitKind) int {
	total := 0
	for _, mat := range sortedMaterials(p.AttackByMaterial) {
		atk := p.AttackByMaterial[mat]
		total += atk * mat.ModifierPercent(kind) / 100
	}
	return total
}

func sortedMaterials(m map[content.Material]int) []content.Material {
	out := make([]content.Material, 0, len(m))
	for mat := range m {
		out = append(out, mat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// candidate is an offset synergy whose trigger condition held, pending
// group exclusion.
type candidate struct {
	Activation
	priority int
}

// Resolve computes the player snapshot for the given inventory on top of
// base stats. Items contribute in ascending placement id order, so the
// snapshot is reproducible and activation logs are stable.
func Resolve(base StatBlock, st *inventory.State, cat content.Catalog) (PlayerSnapshot, error) {
	items := st.Items()
	defs := make(map[inventory.PlacedID]content.ItemDefinition, len(items))
	coverage := make(map[shape.Cell]inventory.PlacedID)
	for _, it := range items {
		def, ok := cat.Item(it.ItemID)
		if !ok {
			return PlayerSnapshot{}, fmt.Errorf("%w: item %q", ErrInconsistentState, it.ItemID)
		}
		defs[it.ID] = def
		for _, c := range st.Covered(it.ID) {
			coverage[c] = it.ID
		}
	}

	snap := PlayerSnapshot{
		Stats:            base,
		AttackByMaterial: make(map[content.Material]int),
	}
	// Unarmed attack counts as flesh for the modifier table.
	if base.Attack != 0 {
		snap.AttackByMaterial[content.MaterialFlesh] += base.Attack
	}
	for _, it := range items {
		def := defs[it.ID]
		snap.Stats = snap.Stats.Add(StatBlock{
			Attack:  def.Attack,
			Defense: def.Defense,
			Speed:   def.Speed,
			Health:  def.Health,
		})
		if def.Attack != 0 {
			snap.AttackByMaterial[def.Material] += def.Attack
		}
	}

	var candidates []candidate
	for _, it := range items {
		def := defs[it.ID]
		for _, syn := range def.Synergy {
			switch syn.Effect {
			case content.EffectBuffSelf, content.EffectBuffTarget:
				target, ok := resolveOffset(it, syn, coverage)
				if !ok || target == it.ID {
					continue
				}
				if !defs[target].HasAnyTag(syn.TargetTags) {
					continue
				}
				act := Activation{
					SourceID: it.ID,
					Stat:     syn.Stat,
					Value:    syn.Value,
					Group:    syn.Group,
				}
				if syn.Effect == content.EffectBuffTarget {
					act.TargetID = target
				} else {
					act.TargetID = it.ID
				}
				candidates = append(candidates, candidate{Activation: act, priority: syn.Priority})
			case content.EffectSetBonus:
				count := 0
				for _, other := range items {
					if defs[other.ID].HasAnyTag(syn.TargetTags) {
						count++
					}
				}
				for extra := 1; extra < count; extra++ {
					candidates = append(candidates, candidate{
						Activation: Activation{SourceID: it.ID, TargetID: it.ID, Stat: syn.Stat, Value: syn.Value},
					})
				}
			}
		}
	}

	for _, c := range pickWinners(candidates) {
		applyActivation(&snap, c, defs)
		snap.Activations = append(snap.Activations, c)
	}
	return snap, nil
}

// resolveOffset rotates the synergy offset with the item's orientation
// and looks up who covers the resulting cell.
func resolveOffset(it inventory.PlacedItem, syn content.SynergyDefinition, coverage map[shape.Cell]inventory.PlacedID) (inventory.PlacedID, bool) {
	off := syn.Offset
	if it.Orientation >= 4 {
		off.Col = -off.Col
	}
	off = shape.RotateOffset(off, it.Orientation%4)
	id, ok := coverage[it.Anchor.Add(off)]
	return id, ok
}

// pickWinners applies group exclusivity: within one source item, all
// candidates sharing a non-empty group collapse to one winner, highest
// priority first, then lowest target id.
func pickWinners(candidates []candidate) []Activation {
	type groupKey struct {
		source inventory.PlacedID
		group  string
	}
	best := make(map[groupKey]candidate)
	var order []groupKey
	var free []Activation
	for _, c := range candidates {
		if c.Group == "" {
			free = append(free, c.Activation)
			continue
		}
		key := groupKey{source: c.SourceID, group: c.Group}
		cur, seen := best[key]
		if !seen {
			best[key] = c
			order = append(order, key)
			continue
		}
		if c.priority > cur.priority || (c.priority == cur.priority && c.TargetID < cur.TargetID) {
			best[key] = c
		}
	}
	out := free
	for _, key := range order {
		out = append(out, best[key].Activation)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].SourceID != out[j].SourceID {
			return out[i].SourceID < out[j].SourceID
		}
		return out[i].TargetID < out[j].TargetID
	})
	return out
}

func applyActivation(snap *PlayerSnapshot, act Activation, defs map[inventory.PlacedID]content.ItemDefinition) {
	switch act.Stat {
	case content.StatAttack:
		snap.Stats.Attack += act.Value
		snap.AttackByMaterial[defs[act.TargetID].Material] += act.Value
	case content.StatDefense:
		snap.Stats.Defense += act.Value
	case content.StatSpeed:
		snap.Stats.Speed += act.Value
	case content.StatHealth:
		snap.Stats.Health += act.Value
	}
}
