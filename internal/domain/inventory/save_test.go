package inventory

import (
	"errors"
	"reflect"
	"testing"

	"cursedwarden/internal/domain/shape"
)

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	cat, lib := testContent(t)
	st, err := NewState(5, 5, []shape.Cell{{Row: 4, Col: 4}})
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}

	cleaver, err := st.Place(mustItem(t, cat, "warden_cleaver"), lib, shape.Cell{}, 5)
	if err != nil {
		t.Fatalf("place cleaver: %v", err)
	}
	if _, err := st.Place(mustItem(t, cat, "silver_dagger"), lib, shape.Cell{Row: 0, Col: 3}, 0); err != nil {
		t.Fatalf("place dagger: %v", err)
	}
	if _, err := st.GrowItem(cleaver.ID); err != nil {
		t.Fatalf("grow cleaver: %v", err)
	}
	st.Version = 3

	rec := Snapshot(st, "profile-1", 7)
	if rec.ProfileID != "profile-1" || rec.Day != 7 || rec.Version != 3 {
		t.Fatalf("snapshot header = %+v", rec)
	}
	if len(rec.Items) != 2 {
		t.Fatalf("snapshot holds %d items, want 2", len(rec.Items))
	}

	restored, err := Restore(rec, cat, lib)
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if restored.Version != 3 {
		t.Fatalf("restored version = %d, want 3", restored.Version)
	}
	wantOcc := st.grid.Occupancy()
	gotOcc := restored.grid.Occupancy()
	if len(gotOcc) != len(wantOcc) {
		t.Fatalf("restored occupancy %d cells, want %d", len(gotOcc), len(wantOcc))
	}
	// Cell-for-cell the same items cover the same ground, even though
	// placement ids may be reassigned on replay.
	byCell := func(s *State) map[shape.Cell]string {
		out := make(map[shape.Cell]string)
		for _, it := range s.Items() {
			for _, c := range s.Covered(it.ID) {
				out[c] = it.ItemID
			}
		}
		return out
	}
	if a, b := byCell(st), byCell(restored); !reflect.DeepEqual(a, b) {
		t.Fatalf("restored coverage differs:\n%v\nvs\n%v", a, b)
	}
	if err := restored.Audit(); err != nil {
		t.Fatalf("Audit: %v", err)
	}
}

func TestRestoreRejectsUnknownItem(t *testing.T) {
	cat, lib := testContent(t)
	rec := SaveRecord{
		Width: 3, Height: 3,
		Items: []SavedItem{{ItemID: "rusted_nothing"}},
	}
	if _, err := Restore(rec, cat, lib); !errors.Is(err, ErrCorruptSave) {
		t.Fatalf("err = %v, want ErrCorruptSave", err)
	}
}

func TestRestoreRejectsOverlappingRecord(t *testing.T) {
	cat, lib := testContent(t)
	rec := SaveRecord{
		Width: 3, Height: 3,
		Items: []SavedItem{
			{ItemID: "steel_sword"},
			{ItemID: "health_potion", Anchor: shape.Cell{Row: 1, Col: 0}},
		},
	}
	if _, err := Restore(rec, cat, lib); !errors.Is(err, ErrCorruptSave) {
		t.Fatalf("err = %v, want ErrCorruptSave", err)
	}
}

func TestRestoreRejectsBadDimensions(t *testing.T) {
	cat, lib := testContent(t)
	if _, err := Restore(SaveRecord{Width: 0, Height: 4}, cat, lib); !errors.Is(err, ErrCorruptSave) {
		t.Fatalf("err = %v, want ErrCorruptSave", err)
	}
}

func TestRestoreRejectsBlockedGrowthCells(t *testing.T) {
	cat, lib := testContent(t)
	rec := SaveRecord{
		Width: 3, Height: 3,
		Items: []SavedItem{
			{ItemID: "health_potion", Extra: []shape.Cell{{Row: 0, Col: 3}}},
		},
	}
	if _, err := Restore(rec, cat, lib); !errors.Is(err, ErrCorruptSave) {
		t.Fatalf("err = %v, want ErrCorruptSave", err)
	}
}
