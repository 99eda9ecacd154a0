package loadout

import (
	"errors"
	"testing"

	"cursedwarden/internal/domain/content"
	"cursedwarden/internal/domain/inventory"
	"cursedwarden/internal/domain/shape"
)

var testBase = StatBlock{Attack: 2, Defense: 1, Speed: 5, Health: 50}

func buildState(t *testing.T, placements ...struct {
	id     string
	anchor shape.Cell
	orient int
}) (*inventory.State, content.Catalog) {
	t.Helper()
	cat := content.DefaultCatalog()
	lib := cat.ShapeLibrary()
	st, err := inventory.NewState(6, 6, nil)
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	for _, p := range placements {
		def, ok := cat.Item(p.id)
		if !ok {
			t.Fatalf("catalog missing %q", p.id)
		}
		if _, err := st.Place(def, lib, p.anchor, p.orient); err != nil {
			t.Fatalf("place %s at %v: %v", p.id, p.anchor, err)
		}
	}
	return st, cat
}

type placement = struct {
	id     string
	anchor shape.Cell
	orient int
}

func TestResolveEmptyGridKeepsBase(t *testing.T) {
	st, cat := buildState(t)
	snap, err := Resolve(testBase, st, cat)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if snap.Stats != testBase {
		t.Fatalf("stats = %+v, want base %+v", snap.Stats, testBase)
	}
	if len(snap.Activations) != 0 {
		t.Fatalf("activations = %v, want none", snap.Activations)
	}
}

func TestResolveSumsItemStats(t *testing.T) {
	st, cat := buildState(t,
		placement{id: "steel_sword", anchor: shape.Cell{Row: 0, Col: 0}},
		placement{id: "epic_shield", anchor: shape.Cell{Row: 0, Col: 2}},
	)
	snap, err := Resolve(testBase, st, cat)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := testBase.Add(StatBlock{Attack: 12, Defense: 20, Speed: -2})
	if snap.Stats != want {
		t.Fatalf("stats = %+v, want %+v", snap.Stats, want)
	}
	if snap.AttackByMaterial[content.MaterialSteel] != 12 {
		t.Fatalf("steel attack = %d, want 12", snap.AttackByMaterial[content.MaterialSteel])
	}
}

func TestWhetstoneBuffsAdjacentWeapon(t *testing.T) {
	st, cat := buildState(t,
		placement{id: "steel_sword", anchor: shape.Cell{Row: 0, Col: 0}},
		placement{id: "whetstone", anchor: shape.Cell{Row: 0, Col: 1}},
	)
	snap, err := Resolve(testBase, st, cat)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got, want := snap.Stats.Attack, testBase.Attack+10+5; got != want {
		t.Fatalf("attack = %d, want %d", got, want)
	}
	if len(snap.Activations) != 1 {
		t.Fatalf("activations = %v, want exactly one", snap.Activations)
	}
	act := snap.Activations[0]
	if act.Stat != content.StatAttack || act.Value != 5 || act.Group != "whetstone_edge" {
		t.Fatalf("activation = %+v", act)
	}
	if snap.AttackByMaterial[content.MaterialSteel] != 15 {
		t.Fatalf("steel attack = %d, want 15", snap.AttackByMaterial[content.MaterialSteel])
	}
}

func TestWhetstoneGroupFiresOnce(t *testing.T) {
	// Two weapons flank the whetstone; the group collapses to one buff,
	// awarded to the item placed first.
	st, cat := buildState(t,
		placement{id: "steel_sword", anchor: shape.Cell{Row: 0, Col: 0}},
		placement{id: "silver_dagger", anchor: shape.Cell{Row: 0, Col: 2}},
		placement{id: "whetstone", anchor: shape.Cell{Row: 0, Col: 1}},
	)
	snap, err := Resolve(testBase, st, cat)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(snap.Activations) != 1 {
		t.Fatalf("activations = %v, want exactly one", snap.Activations)
	}
	if got, want := snap.Stats.Attack, testBase.Attack+10+8+5; got != want {
		t.Fatalf("attack = %d, want %d", got, want)
	}
	if snap.AttackByMaterial[content.MaterialSteel] != 15 {
		t.Fatalf("buff went to %v, want the sword", snap.AttackByMaterial)
	}
	if snap.AttackByMaterial[content.MaterialSilver] != 8 {
		t.Fatalf("silver attack = %d, want 8", snap.AttackByMaterial[content.MaterialSilver])
	}
}

func TestSetBonusCountsExtraTaggedItems(t *testing.T) {
	st, cat := buildState(t,
		placement{id: "unique_charm", anchor: shape.Cell{Row: 0, Col: 0}},
		placement{id: "ward_talisman", anchor: shape.Cell{Row: 0, Col: 2}},
	)
	snap, err := Resolve(testBase, st, cat)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	// Two magic items: the charm's speed bonus and the talisman's defense
	// bonus each fire once for the one extra set member.
	if got, want := snap.Stats.Speed, testBase.Speed+3; got != want {
		t.Fatalf("speed = %d, want %d", got, want)
	}
	if got, want := snap.Stats.Defense, testBase.Defense+3+2; got != want {
		t.Fatalf("defense = %d, want %d", got, want)
	}
	if len(snap.Activations) != 2 {
		t.Fatalf("activations = %v, want two", snap.Activations)
	}
}

func TestSetBonusNeedsTwoMembers(t *testing.T) {
	st, cat := buildState(t,
		placement{id: "unique_charm", anchor: shape.Cell{Row: 0, Col: 0}},
	)
	snap, err := Resolve(testBase, st, cat)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if snap.Stats.Speed != testBase.Speed {
		t.Fatalf("lone set member changed speed: %d", snap.Stats.Speed)
	}
}

func TestEffectiveAttackAppliesMaterialTable(t *testing.T) {
	st, cat := buildState(t,
		placement{id: "steel_sword", anchor: shape.Cell{Row: 0, Col: 0}},
		placement{id: "silver_dagger", anchor: shape.Cell{Row: 0, Col: 2}},
	)
	snap, err := Resolve(StatBlock{}, st, cat)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	cases := []struct {
		kind content.UnitKind
		want int
	}{
		// steel 10, silver 8 through the modifier table, floored per material
		{content.KindHuman, 15 + 5},    // 10*150% + 8*70%=5.6
		{content.KindMonster, 8 + 16},  // 10*80% + 8*200%
		{content.KindEthereal, 0 + 24}, // steel useless, silver 300%
	}
	for _, tc := range cases {
		if got := snap.EffectiveAttack(tc.kind); got != tc.want {
			t.Errorf("EffectiveAttack(%s) = %d, want %d", tc.kind, got, tc.want)
		}
	}
}

func TestResolveRejectsUnknownContent(t *testing.T) {
	st, _ := buildState(t,
		placement{id: "steel_sword", anchor: shape.Cell{Row: 0, Col: 0}},
	)
	// A catalog without the sword makes the inventory unreadable.
	bare, err := content.NewCatalog([]content.ItemDefinition{
		{ID: "health_potion", Width: 1, Height: 1, Material: content.MaterialFlesh},
	}, nil)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	if _, err := Resolve(testBase, st, bare); !errors.Is(err, ErrInconsistentState) {
		t.Fatalf("err = %v, want ErrInconsistentState", err)
	}
}
