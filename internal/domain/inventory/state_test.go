package inventory

import (
	"errors"
	"reflect"
	"testing"

	"cursedwarden/internal/domain/content"
	"cursedwarden/internal/domain/shape"
)

func testContent(t *testing.T) (content.Catalog, *shape.Library) {
	t.Helper()
	cat := content.DefaultCatalog()
	return cat, cat.ShapeLibrary()
}

func mustItem(t *testing.T, cat content.Catalog, id string) content.ItemDefinition {
	t.Helper()
	def, ok := cat.Item(id)
	if !ok {
		t.Fatalf("catalog missing item %q", id)
	}
	return def
}

func mustState(t *testing.T, w, h int) *State {
	t.Helper()
	st, err := NewState(w, h, nil)
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	return st
}

func TestPlaceCoversFootprint(t *testing.T) {
	cat, lib := testContent(t)
	st := mustState(t, 4, 4)

	placed, err := st.Place(mustItem(t, cat, "warden_cleaver"), lib, shape.Cell{}, 0)
	if err != nil {
		t.Fatalf("Place: %v", err)
	}

	want := []shape.Cell{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}, {Row: 2, Col: 1}}
	if got := st.Covered(placed.ID); !reflect.DeepEqual(got, want) {
		t.Fatalf("covered cells = %v, want %v", got, want)
	}
	if cell := st.At(shape.Cell{Row: 2, Col: 1}); !cell.Occupied || cell.Occupant != placed.ID {
		t.Fatalf("cell (2,1) = %+v, want occupied by %d", cell, placed.ID)
	}
	if cell := st.At(shape.Cell{Row: 0, Col: 1}); cell.Occupied {
		t.Fatalf("cell (0,1) should stay free, got %+v", cell)
	}
	if err := st.Audit(); err != nil {
		t.Fatalf("Audit: %v", err)
	}
}

func TestPlaceOutOfBoundsLeavesGridUntouched(t *testing.T) {
	cat, lib := testContent(t)
	st := mustState(t, 4, 4)
	before := st.grid.Occupancy()

	_, err := st.Place(mustItem(t, cat, "legendary_bow"), lib, shape.Cell{Row: 2, Col: 0}, 0)
	if !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("err = %v, want ErrOutOfBounds", err)
	}
	var oob *OutOfBoundsError
	if !errors.As(err, &oob) {
		t.Fatalf("err %v does not carry the offending cell", err)
	}
	if oob.Cell != (shape.Cell{Row: 4, Col: 0}) {
		t.Fatalf("offending cell = %v, want (4,0)", oob.Cell)
	}
	if !reflect.DeepEqual(st.grid.Occupancy(), before) {
		t.Fatal("failed placement mutated the grid")
	}
}

func TestPlaceOverLockedCell(t *testing.T) {
	cat, lib := testContent(t)
	st, err := NewState(3, 3, []shape.Cell{{Row: 1, Col: 0}})
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}

	_, err = st.Place(mustItem(t, cat, "steel_sword"), lib, shape.Cell{}, 0)
	if !errors.Is(err, ErrLockedCell) {
		t.Fatalf("err = %v, want ErrLockedCell", err)
	}
	var lc *LockedCellError
	if !errors.As(err, &lc) || lc.Cell != (shape.Cell{Row: 1, Col: 0}) {
		t.Fatalf("err %v, want locked cell (1,0)", err)
	}
}

func TestOverlapIsSymmetric(t *testing.T) {
	cat, lib := testContent(t)
	sword := mustItem(t, cat, "steel_sword")
	potion := mustItem(t, cat, "health_potion")

	// Sword first blocks potion, potion first blocks sword.
	st := mustState(t, 3, 3)
	if _, err := st.Place(sword, lib, shape.Cell{}, 0); err != nil {
		t.Fatalf("place sword: %v", err)
	}
	_, err := st.Place(potion, lib, shape.Cell{Row: 1, Col: 0}, 0)
	if !errors.Is(err, ErrOverlap) {
		t.Fatalf("potion over sword: err = %v, want ErrOverlap", err)
	}

	st = mustState(t, 3, 3)
	if _, err := st.Place(potion, lib, shape.Cell{Row: 1, Col: 0}, 0); err != nil {
		t.Fatalf("place potion: %v", err)
	}
	_, err = st.Place(sword, lib, shape.Cell{}, 0)
	if !errors.Is(err, ErrOverlap) {
		t.Fatalf("sword over potion: err = %v, want ErrOverlap", err)
	}
	var ov *OverlapError
	if !errors.As(err, &ov) || ov.Cell != (shape.Cell{Row: 1, Col: 0}) {
		t.Fatalf("err %v, want overlap at (1,0)", err)
	}
}

func TestRemoveThenReplaceSameSpot(t *testing.T) {
	cat, lib := testContent(t)
	st := mustState(t, 4, 4)
	cleaver := mustItem(t, cat, "warden_cleaver")

	first, err := st.Place(cleaver, lib, shape.Cell{Row: 0, Col: 1}, 1)
	if err != nil {
		t.Fatalf("first place: %v", err)
	}
	want := st.grid.Occupancy()
	if err := st.Remove(first.ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if len(st.grid.Occupancy()) != 0 {
		t.Fatal("remove left occupied cells behind")
	}

	second, err := st.Place(cleaver, lib, shape.Cell{Row: 0, Col: 1}, 1)
	if err != nil {
		t.Fatalf("second place: %v", err)
	}
	got := st.grid.Occupancy()
	if len(got) != len(want) {
		t.Fatalf("re-place covers %d cells, want %d", len(got), len(want))
	}
	for c := range want {
		if got[c] != second.ID {
			t.Fatalf("cell %v not recovered by re-placement", c)
		}
	}
}

func TestPlacementOrderDoesNotMatter(t *testing.T) {
	cat, lib := testContent(t)
	sword := mustItem(t, cat, "steel_sword")
	shield := mustItem(t, cat, "epic_shield")

	cells := func(order ...content.ItemDefinition) map[shape.Cell]string {
		st := mustState(t, 4, 4)
		anchors := map[string]shape.Cell{
			"steel_sword": {Row: 0, Col: 0},
			"epic_shield": {Row: 0, Col: 2},
		}
		for _, def := range order {
			if _, err := st.Place(def, lib, anchors[def.ID], 0); err != nil {
				t.Fatalf("place %s: %v", def.ID, err)
			}
		}
		out := make(map[shape.Cell]string)
		for _, it := range st.Items() {
			for _, c := range st.Covered(it.ID) {
				out[c] = it.ItemID
			}
		}
		return out
	}

	if a, b := cells(sword, shield), cells(shield, sword); !reflect.DeepEqual(a, b) {
		t.Fatalf("order changed coverage:\n%v\nvs\n%v", a, b)
	}
}

func TestRemoveUnknownItem(t *testing.T) {
	st := mustState(t, 2, 2)
	err := st.Remove(42)
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("err = %v, want ErrItemNotFound", err)
	}
}

func TestFindFreeSpotScanOrder(t *testing.T) {
	cat, lib := testContent(t)
	st := mustState(t, 3, 3)
	potion := mustItem(t, cat, "health_potion")
	sword := mustItem(t, cat, "steel_sword")

	if _, err := st.Place(potion, lib, shape.Cell{}, 0); err != nil {
		t.Fatalf("seed potion: %v", err)
	}

	anchor, orientation, ok := st.FindFreeSpot(sword, lib)
	if !ok {
		t.Fatal("expected a free spot")
	}
	// (0,1) is the first anchor in row-major order where the vertical
	// sword fits with orientation 0.
	if anchor != (shape.Cell{Row: 0, Col: 1}) || orientation != 0 {
		t.Fatalf("free spot = %v/%d, want (0,1)/0", anchor, orientation)
	}
}

func TestFindFreeSpotFullGrid(t *testing.T) {
	cat, lib := testContent(t)
	st := mustState(t, 2, 2)
	shield := mustItem(t, cat, "epic_shield")
	if _, err := st.Place(shield, lib, shape.Cell{}, 0); err != nil {
		t.Fatalf("fill grid: %v", err)
	}
	if _, _, ok := st.FindFreeSpot(mustItem(t, cat, "health_potion"), lib); ok {
		t.Fatal("found a spot on a full grid")
	}
}

func TestGrowItemClaimsColumnRight(t *testing.T) {
	cat, lib := testContent(t)
	st := mustState(t, 4, 4)

	placed, err := st.Place(mustItem(t, cat, "warden_cleaver"), lib, shape.Cell{}, 0)
	if err != nil {
		t.Fatalf("Place: %v", err)
	}

	grown, err := st.GrowItem(placed.ID)
	if err != nil {
		t.Fatalf("GrowItem: %v", err)
	}
	want := []shape.Cell{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 2}}
	if !reflect.DeepEqual(grown, want) {
		t.Fatalf("grown = %v, want %v", grown, want)
	}
	for _, c := range want {
		if cell := st.At(c); !cell.Occupied || cell.Occupant != placed.ID {
			t.Fatalf("grown cell %v not held by item", c)
		}
	}
	item, _ := st.Item(placed.ID)
	if !reflect.DeepEqual(item.Extra, want) {
		t.Fatalf("Extra = %v, want %v", item.Extra, want)
	}
	if err := st.Audit(); err != nil {
		t.Fatalf("Audit after growth: %v", err)
	}
}

func TestGrowItemBlockedIsAllOrNothing(t *testing.T) {
	cat, lib := testContent(t)
	st := mustState(t, 3, 3)

	sword, err := st.Place(mustItem(t, cat, "steel_sword"), lib, shape.Cell{}, 0)
	if err != nil {
		t.Fatalf("place sword: %v", err)
	}
	// Blocks the growth cell for the sword's second row.
	if _, err := st.Place(mustItem(t, cat, "health_potion"), lib, shape.Cell{Row: 1, Col: 1}, 0); err != nil {
		t.Fatalf("place potion: %v", err)
	}

	before := st.grid.Occupancy()
	if _, err := st.GrowItem(sword.ID); !errors.Is(err, ErrOverlap) {
		t.Fatalf("err = %v, want ErrOverlap", err)
	}
	if !reflect.DeepEqual(st.grid.Occupancy(), before) {
		t.Fatal("failed growth mutated the grid")
	}
}

func TestGrowItemAtGridEdge(t *testing.T) {
	cat, lib := testContent(t)
	st := mustState(t, 1, 2)
	sword, err := st.Place(mustItem(t, cat, "steel_sword"), lib, shape.Cell{}, 0)
	if err != nil {
		t.Fatalf("place sword: %v", err)
	}
	if _, err := st.GrowItem(sword.ID); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("err = %v, want ErrOutOfBounds", err)
	}
}
