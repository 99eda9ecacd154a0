package content

import (
	"errors"
	"testing"

	"cursedwarden/internal/domain/shape"
)

func TestDefaultCatalogLoads(t *testing.T) {
	cat := DefaultCatalog()

	if len(cat.ItemIDs()) == 0 || len(cat.EnemyIDs()) == 0 {
		t.Fatalf("expected built-in items and enemies")
	}

	sword, ok := cat.Item("steel_sword")
	if !ok {
		t.Fatalf("expected steel_sword in default catalog")
	}
	if sword.Attack != 10 || !sword.HasTag(TagWeapon) {
		t.Fatalf("unexpected steel_sword definition: %+v", sword)
	}
	if sword.Footprint().Size() != 2 {
		t.Fatalf("expected 1x2 footprint, got %d cells", sword.Footprint().Size())
	}

	cleaver, _ := cat.Item("warden_cleaver")
	if cleaver.Footprint().Size() != 4 {
		t.Fatalf("expected L-shaped footprint, got %d cells", cleaver.Footprint().Size())
	}
}

func TestCatalogIterationIsSorted(t *testing.T) {
	cat := DefaultCatalog()
	ids := cat.ItemIDs()
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Fatalf("item ids not strictly ascending: %v", ids)
		}
	}
}

func TestNewCatalogRejectsDuplicates(t *testing.T) {
	def := ItemDefinition{ID: "x", Width: 1, Height: 1}
	_, err := NewCatalog([]ItemDefinition{def, def}, nil)
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
}

func TestNewCatalogRejectsEmptyFootprint(t *testing.T) {
	_, err := NewCatalog([]ItemDefinition{{ID: "x"}}, nil)
	if !errors.Is(err, ErrInvalidItem) {
		t.Fatalf("expected ErrInvalidItem, got %v", err)
	}
}

func TestShapeLibraryCoversCatalog(t *testing.T) {
	cat := DefaultCatalog()
	lib := cat.ShapeLibrary()

	for _, id := range cat.ItemIDs() {
		if lib.OrientationCount(id) == 0 {
			t.Fatalf("item %s missing from shape library", id)
		}
	}
	if lib.OrientationCount("warden_cleaver") != 8 {
		t.Fatalf("expected mirrored item to register 8 orientations, got %d",
			lib.OrientationCount("warden_cleaver"))
	}

	v, ok := lib.Orientation("steel_sword", 1)
	if !ok {
		t.Fatalf("expected rotated sword variant")
	}
	if !v.Equal(shape.Rect(2, 1)) {
		t.Fatalf("expected 1x2 sword to rotate into 2x1, got %v", v.Cells())
	}
}

func TestMaterialModifierTable(t *testing.T) {
	cases := []struct {
		material Material
		target   UnitKind
		want     int
	}{
		{MaterialSteel, KindHuman, 150},
		{MaterialSteel, KindMonster, 80},
		{MaterialSteel, KindEthereal, 0},
		{MaterialSilver, KindHuman, 70},
		{MaterialSilver, KindMonster, 200},
		{MaterialSilver, KindEthereal, 300},
		{MaterialFlesh, KindHuman, 120},
		{MaterialFlesh, KindMonster, 120},
		{MaterialFlesh, KindEthereal, 50},
	}
	for _, tc := range cases {
		if got := tc.material.ModifierPercent(tc.target); got != tc.want {
			t.Fatalf("%s vs %s: expected %d, got %d", tc.material, tc.target, tc.want, got)
		}
	}
}
