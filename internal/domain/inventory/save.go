package inventory

import (
	"fmt"

	"cursedwarden/internal/domain/content"
	"cursedwarden/internal/domain/shape"
)

// SavedItem is the portable form of one placement: content id plus the
// coordinates needed to replay it, never the grid cells themselves.
type SavedItem struct {
	ItemID      string       `json:"item_id"`
	Anchor      shape.Cell   `json:"anchor"`
	Orientation int          `json:"orientation"`
	Extra       []shape.Cell `json:"extra,omitempty"`
}

// SaveRecord is a full inventory snapshot for one profile. Version is
// the optimistic concurrency counter managed by the repository layer.
type SaveRecord struct {
	ProfileID string       `json:"profile_id"`
	Width     int          `json:"width"`
	Height    int          `json:"height"`
	Locked    []shape.Cell `json:"locked,omitempty"`
	Items     []SavedItem  `json:"items"`
	Day       int          `json:"day"`
	Version   int64        `json:"version"`
}

// Snapshot captures the state as a replayable record. Items are emitted
// in ascending placement id order so two equal states snapshot equal.
func Snapshot(st *State, profileID string, day int) SaveRecord {
	rec := SaveRecord{
		ProfileID: profileID,
		Width:     st.Width(),
		Height:    st.Height(),
		Locked:    st.grid.LockedCells(),
		Items:     make([]SavedItem, 0, len(st.items)),
		Day:       day,
		Version:   st.Version,
	}
	for _, it := range st.Items() {
		saved := SavedItem{ItemID: it.ItemID, Anchor: it.Anchor, Orientation: it.Orientation}
		if len(it.Extra) > 0 {
			saved.Extra = append(saved.Extra, it.Extra...)
		}
		rec.Items = append(rec.Items, saved)
	}
	return rec
}

// Restore replays a record onto an empty grid. Any placement failure,
// unknown item id, or blocked growth cell marks the whole record as
// corrupt; the partially built state is discarded.
func Restore(rec SaveRecord, cat content.Catalog, lib *shape.Library) (*State, error) {
	if rec.Width <= 0 || rec.Height <= 0 {
		return nil, fmt.Errorf("%w: grid %dx%d", ErrCorruptSave, rec.Width, rec.Height)
	}
	st, err := NewState(rec.Width, rec.Height, rec.Locked)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSave, err)
	}
	for _, saved := range rec.Items {
		def, ok := cat.Item(saved.ItemID)
		if !ok {
			return nil, fmt.Errorf("%w: item %q not in catalog", ErrCorruptSave, saved.ItemID)
		}
		placed, err := st.Place(def, lib, saved.Anchor, saved.Orientation)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptSave, err)
		}
		if len(saved.Extra) > 0 {
			if err := st.grid.TryOccupy(placed.ID, saved.Extra); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrCorruptSave, err)
			}
			item := st.items[placed.ID]
			item.Extra = append(item.Extra, saved.Extra...)
			st.items[placed.ID] = item
		}
	}
	st.Version = rec.Version
	return st, nil
}
