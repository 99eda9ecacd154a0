package inventory

import (
	"fmt"
	"sort"

	"cursedwarden/internal/domain/content"
	"cursedwarden/internal/domain/shape"
)

// PlacedItem is one item instance resting on the grid. Extra holds cells
// gained through growth on top of the orientation footprint.
type PlacedItem struct {
	ID          PlacedID
	ItemID      string
	Anchor      shape.Cell
	Orientation int
	Extra       []shape.Cell
}

// State is the inventory aggregate: the grid plus every placed item,
// with a version counter for optimistic persistence. All methods are
// atomic with respect to validation failure.
type State struct {
	grid    *Grid
	items   map[PlacedID]PlacedItem
	nextID  PlacedID
	Version int64
}

// NewState builds an empty inventory, locking the given cells up front.
func NewState(width, height int, locked []shape.Cell) (*State, error) {
	st := &State{
		grid:   NewGrid(width, height),
		items:  make(map[PlacedID]PlacedItem),
		nextID: 1,
	}
	for _, c := range locked {
		if err := st.grid.Lock(c); err != nil {
			return nil, err
		}
	}
	return st, nil
}

func (s *State) Width() int  { return s.grid.Width() }
func (s *State) Height() int { return s.grid.Height() }

// Place puts a new instance of def on the grid at anchor with the given
// orientation index. Nothing changes on failure.
func (s *State) Place(def content.ItemDefinition, lib *shape.Library, anchor shape.Cell, orientation int) (PlacedItem, error) {
	variant, ok := lib.Orientation(def.ID, orientation)
	if !ok {
		return PlacedItem{}, fmt.Errorf("%w: %s/%d", ErrUnknownOrientation, def.ID, orientation)
	}
	id := s.nextID
	if err := s.grid.TryOccupy(id, CellsFor(variant, anchor)); err != nil {
		return PlacedItem{}, err
	}
	s.nextID++
	item := PlacedItem{ID: id, ItemID: def.ID, Anchor: anchor, Orientation: orientation}
	s.items[id] = item
	return item, nil
}

// Remove takes the item off the grid and frees every cell it covered,
// growth included.
func (s *State) Remove(id PlacedID) error {
	if _, ok := s.items[id]; !ok {
		return &NotFoundError{ID: id}
	}
	if err := s.grid.Release(id); err != nil {
		return err
	}
	delete(s.items, id)
	return nil
}

// Item returns the placed item record for id.
func (s *State) Item(id PlacedID) (PlacedItem, bool) {
	it, ok := s.items[id]
	return it, ok
}

// Items returns every placed item ordered by ascending id.
func (s *State) Items() []PlacedItem {
	out := make([]PlacedItem, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// At exposes the state of one grid cell.
func (s *State) At(c shape.Cell) CellState { return s.grid.At(c) }

// Covered returns the cells currently held by id, sorted row-major.
func (s *State) Covered(id PlacedID) []shape.Cell { return s.grid.Covered(id) }

// FindFreeSpot scans anchors row-major and orientations ascending and
// returns the first placement that fits def. The scan order makes the
// result deterministic for a given grid state.
func (s *State) FindFreeSpot(def content.ItemDefinition, lib *shape.Library) (shape.Cell, int, bool) {
	n := lib.OrientationCount(def.ID)
	for row := 0; row < s.grid.Height(); row++ {
		for col := 0; col < s.grid.Width(); col++ {
			anchor := shape.Cell{Row: row, Col: col}
			for o := 0; o < n; o++ {
				variant, _ := lib.Orientation(def.ID, o)
				if s.fits(CellsFor(variant, anchor)) {
					return anchor, o, true
				}
			}
		}
	}
	return shape.Cell{}, 0, false
}

func (s *State) fits(cells []shape.Cell) bool {
	for _, c := range cells {
		st := s.grid.At(c)
		if !s.grid.InBounds(c) || st.Locked || st.Occupied {
			return false
		}
	}
	return true
}

// GrowItem extends the item one column to the right: for every row the
// item covers, the cell right of its rightmost covered cell is claimed.
// Growth is all-or-nothing; any blocked cell fails the whole mutation.
func (s *State) GrowItem(id PlacedID) ([]shape.Cell, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	rightmost := make(map[int]int)
	for _, c := range s.grid.Covered(id) {
		if cur, seen := rightmost[c.Row]; !seen || c.Col > cur {
			rightmost[c.Row] = c.Col
		}
	}
	grown := make([]shape.Cell, 0, len(rightmost))
	for row, col := range rightmost {
		grown = append(grown, shape.Cell{Row: row, Col: col + 1})
	}
	sortCells(grown)
	if err := s.grid.TryOccupy(id, grown); err != nil {
		return nil, err
	}
	item.Extra = append(item.Extra, grown...)
	s.items[id] = item
	return grown, nil
}

// Audit verifies the cross-references between items and the occupancy
// map. A failure means in-memory state corruption, not user error.
func (s *State) Audit() error {
	occ := s.grid.Occupancy()
	total := 0
	for id := range s.items {
		cells := s.grid.Covered(id)
		if len(cells) == 0 {
			return fmt.Errorf("item %d covers no cells", id)
		}
		for _, c := range cells {
			if occ[c] != id {
				return fmt.Errorf("cell (%d,%d) not held by item %d", c.Row, c.Col, id)
			}
		}
		total += len(cells)
	}
	if total != len(occ) {
		return fmt.Errorf("occupancy count %d does not match item coverage %d", len(occ), total)
	}
	return nil
}
