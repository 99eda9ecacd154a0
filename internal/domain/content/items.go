package content

import "cursedwarden/internal/domain/shape"

// Material describes what an item is made of. It drives the damage
// modifier table against enemy kinds.
type Material string

const (
	MaterialSteel  Material = "steel"
	MaterialSilver Material = "silver"
	MaterialFlesh  Material = "flesh"
)

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
	RarityUnique    Rarity = "unique"
)

type Tag string

const (
	TagWeapon   Tag = "weapon"
	TagPotion   Tag = "potion"
	TagFood     Tag = "food"
	TagMagic    Tag = "magic"
	TagValuable Tag = "valuable"
)

type Stat string

const (
	StatAttack  Stat = "attack"
	StatDefense Stat = "defense"
	StatSpeed   Stat = "speed"
	StatHealth  Stat = "health"
)

// EffectKind selects how a triggered synergy contributes stats.
type EffectKind string

const (
	// EffectBuffSelf adds the bonus when the trigger condition holds.
	EffectBuffSelf EffectKind = "buff_self"
	// EffectBuffTarget adds the bonus for the item found at the offset.
	// The capability resolver folds all unit stats into one snapshot, so
	// self and target buffs differ only in which item's trigger fires.
	EffectBuffTarget EffectKind = "buff_target"
	// EffectSetBonus adds the bonus once per distinct placed item sharing
	// the tag, beyond the first.
	EffectSetBonus EffectKind = "set_bonus"
)

// SynergyDefinition is a layout-triggered conditional bonus. Offset-based
// synergies fire when the cell at Offset (rotated with the item) is covered
// by another item carrying any of TargetTags. Set bonuses ignore Offset and
// count distinct items with the tag anywhere on the grid.
//
// Synergies sharing a non-empty Group are mutually exclusive: the highest
// Priority fires, ties broken by owning item id ascending.
type SynergyDefinition struct {
	Offset     shape.Cell `json:"offset" yaml:"offset"`
	TargetTags []Tag      `json:"target_tags" yaml:"target_tags"`
	Effect     EffectKind `json:"effect" yaml:"effect"`
	Stat       Stat       `json:"stat" yaml:"stat"`
	Value      int        `json:"value" yaml:"value"`
	Group      string     `json:"group,omitempty" yaml:"group,omitempty"`
	Priority   int        `json:"priority,omitempty" yaml:"priority,omitempty"`
}

// ItemDefinition is immutable reference data, loaded once and shared by
// every placement of that item type.
type ItemDefinition struct {
	ID       string              `json:"id" yaml:"id"`
	Name     string              `json:"name" yaml:"name"`
	Width    int                 `json:"width" yaml:"width"`
	Height   int                 `json:"height" yaml:"height"`
	Cells    []shape.Cell        `json:"cells,omitempty" yaml:"cells,omitempty"`
	Mirrored bool                `json:"mirrored,omitempty" yaml:"mirrored,omitempty"`
	Material Material            `json:"material" yaml:"material"`
	Rarity   Rarity              `json:"rarity" yaml:"rarity"`
	Price    int                 `json:"price" yaml:"price"`
	Tags     []Tag               `json:"tags,omitempty" yaml:"tags,omitempty"`
	Synergy  []SynergyDefinition `json:"synergies,omitempty" yaml:"synergies,omitempty"`

	Attack  int `json:"attack,omitempty" yaml:"attack,omitempty"`
	Defense int `json:"defense,omitempty" yaml:"defense,omitempty"`
	Speed   int `json:"speed,omitempty" yaml:"speed,omitempty"`
	Health  int `json:"health,omitempty" yaml:"health,omitempty"`
}

// Footprint returns the item's base shape: explicit cells when declared,
// otherwise a solid Width x Height rectangle.
func (d ItemDefinition) Footprint() shape.Shape {
	if len(d.Cells) > 0 {
		return shape.New(d.Cells)
	}
	return shape.Rect(d.Width, d.Height)
}

// HasTag reports whether the definition carries the tag.
func (d ItemDefinition) HasTag(tag Tag) bool {
	for _, t := range d.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasAnyTag reports whether the definition carries any of the tags.
func (d ItemDefinition) HasAnyTag(tags []Tag) bool {
	for _, t := range tags {
		if d.HasTag(t) {
			return true
		}
	}
	return false
}
