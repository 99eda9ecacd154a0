package inventory

import (
	"sort"

	"cursedwarden/internal/domain/shape"
)

// PlacedID identifies one placed item within a single inventory state.
type PlacedID int64

// CellState is the observable state of one grid cell.
type CellState struct {
	Locked   bool
	Occupied bool
	Occupant PlacedID
}

// Grid owns the fixed-size occupancy map. It is the only structure that
// answers occupancy queries; all mutation goes through TryOccupy and
// Release, which validate fully before writing anything.
type Grid struct {
	width    int
	height   int
	occupied map[shape.Cell]PlacedID
	covered  map[PlacedID][]shape.Cell
	locked   map[shape.Cell]bool
}

func NewGrid(width, height int) *Grid {
	return &Grid{
		width:    width,
		height:   height,
		occupied: make(map[shape.Cell]PlacedID),
		covered:  make(map[PlacedID][]shape.Cell),
		locked:   make(map[shape.Cell]bool),
	}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Lock marks a cell permanently unusable for this run segment. Locking an
// out-of-bounds or occupied cell fails with the matching validation error.
func (g *Grid) Lock(c shape.Cell) error {
	if !g.InBounds(c) {
		return &OutOfBoundsError{Cell: c}
	}
	if id, busy := g.occupied[c]; busy {
		return &OverlapError{Cell: c, Occupant: id}
	}
	g.locked[c] = true
	return nil
}

func (g *Grid) InBounds(c shape.Cell) bool {
	return c.Row >= 0 && c.Col >= 0 && c.Row < g.height && c.Col < g.width
}

// CellsFor maps a shape variant onto the grid at anchor. Pure and total:
// it produces coordinates even when some lie outside bounds; validity is
// the caller's concern.
func CellsFor(s shape.Shape, anchor shape.Cell) []shape.Cell {
	offsets := s.Cells()
	out := make([]shape.Cell, len(offsets))
	for i, off := range offsets {
		out[i] = anchor.Add(off)
	}
	return out
}

// TryOccupy writes id into every cell, or fails without touching the grid.
// Checks run in contract order: bounds across all cells, then locks, then
// overlaps, reporting the first conflicting cell.
func (g *Grid) TryOccupy(id PlacedID, cells []shape.Cell) error {
	for _, c := range cells {
		if !g.InBounds(c) {
			return &OutOfBoundsError{Cell: c}
		}
	}
	for _, c := range cells {
		if g.locked[c] {
			return &LockedCellError{Cell: c}
		}
	}
	for _, c := range cells {
		if holder, busy := g.occupied[c]; busy && holder != id {
			return &OverlapError{Cell: c, Occupant: holder}
		}
	}
	for _, c := range cells {
		g.occupied[c] = id
	}
	g.covered[id] = append(g.covered[id], cells...)
	return nil
}

// Release clears every cell covered by id back to empty.
func (g *Grid) Release(id PlacedID) error {
	cells, ok := g.covered[id]
	if !ok {
		return &NotFoundError{ID: id}
	}
	for _, c := range cells {
		delete(g.occupied, c)
	}
	delete(g.covered, id)
	return nil
}

// At reports the state of a single cell.
func (g *Grid) At(c shape.Cell) CellState {
	st := CellState{Locked: g.locked[c]}
	if id, busy := g.occupied[c]; busy {
		st.Occupied = true
		st.Occupant = id
	}
	return st
}

// Covered returns the cells held by id, sorted row-major.
func (g *Grid) Covered(id PlacedID) []shape.Cell {
	cells, ok := g.covered[id]
	if !ok {
		return nil
	}
	out := make([]shape.Cell, len(cells))
	copy(out, cells)
	sortCells(out)
	return out
}

// Occupancy returns a copy of the full occupancy map, for bit-for-bit
// comparisons in tests and consistency audits.
func (g *Grid) Occupancy() map[shape.Cell]PlacedID {
	out := make(map[shape.Cell]PlacedID, len(g.occupied))
	for c, id := range g.occupied {
		out[c] = id
	}
	return out
}

// LockedCells returns the locked set, sorted row-major.
func (g *Grid) LockedCells() []shape.Cell {
	out := make([]shape.Cell, 0, len(g.locked))
	for c := range g.locked {
		out = append(out, c)
	}
	sortCells(out)
	return out
}

func sortCells(cells []shape.Cell) {
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})
}
