package shape

import "sort"

// Cell is a grid coordinate. Row grows downward, Col grows rightward,
// origin at the top-left (same convention as the inventory grid).
type Cell struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// Add returns the cell offset by another cell treated as a vector.
func (c Cell) Add(o Cell) Cell {
	return Cell{Row: c.Row + o.Row, Col: c.Col + o.Col}
}

// Neighbors returns the four edge-adjacent cells.
func (c Cell) Neighbors() [4]Cell {
	return [4]Cell{
		{Row: c.Row - 1, Col: c.Col},
		{Row: c.Row + 1, Col: c.Col},
		{Row: c.Row, Col: c.Col - 1},
		{Row: c.Row, Col: c.Col + 1},
	}
}

// Shape is a polyomino footprint: a set of cell offsets relative to an
// anchor, normalized so the minimum row and column are both zero and the
// cells are sorted row-major. Shapes are immutable once created.
type Shape struct {
	cells []Cell
}

// New builds a normalized shape from the given offsets. Duplicate cells
// are collapsed. An empty input yields an empty shape.
func New(cells []Cell) Shape {
	if len(cells) == 0 {
		return Shape{}
	}
	seen := make(map[Cell]struct{}, len(cells))
	out := make([]Cell, 0, len(cells))
	for _, c := range cells {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return Shape{cells: normalize(out)}
}

// Rect builds a solid w x h rectangle. The original content tables declare
// most items by width/height only, with the footprint generated.
func Rect(w, h int) Shape {
	if w <= 0 || h <= 0 {
		return Shape{}
	}
	cells := make([]Cell, 0, w*h)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			cells = append(cells, Cell{Row: r, Col: c})
		}
	}
	return Shape{cells: cells}
}

// Cells returns a copy of the shape's cell offsets in row-major order.
func (s Shape) Cells() []Cell {
	out := make([]Cell, len(s.cells))
	copy(out, s.cells)
	return out
}

// Size returns the number of cells in the footprint.
func (s Shape) Size() int { return len(s.cells) }

// Width returns the bounding-box width of the normalized shape.
func (s Shape) Width() int {
	max := 0
	for _, c := range s.cells {
		if c.Col > max {
			max = c.Col
		}
	}
	if len(s.cells) == 0 {
		return 0
	}
	return max + 1
}

// Height returns the bounding-box height of the normalized shape.
func (s Shape) Height() int {
	max := 0
	for _, c := range s.cells {
		if c.Row > max {
			max = c.Row
		}
	}
	if len(s.cells) == 0 {
		return 0
	}
	return max + 1
}

// Contains reports whether the offset is part of the footprint.
func (s Shape) Contains(c Cell) bool {
	for _, own := range s.cells {
		if own == c {
			return true
		}
	}
	return false
}

// Equal reports whether two shapes cover the same normalized cells.
func (s Shape) Equal(o Shape) bool {
	if len(s.cells) != len(o.cells) {
		return false
	}
	for i := range s.cells {
		if s.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Rotate returns the shape turned a quarter turn clockwise, re-normalized.
func (s Shape) Rotate() Shape {
	if len(s.cells) == 0 {
		return Shape{}
	}
	maxRow := s.Height() - 1
	out := make([]Cell, len(s.cells))
	for i, c := range s.cells {
		out[i] = Cell{Row: c.Col, Col: maxRow - c.Row}
	}
	return Shape{cells: normalize(out)}
}

// Mirror returns the shape flipped horizontally, re-normalized.
func (s Shape) Mirror() Shape {
	if len(s.cells) == 0 {
		return Shape{}
	}
	maxCol := s.Width() - 1
	out := make([]Cell, len(s.cells))
	for i, c := range s.cells {
		out[i] = Cell{Row: c.Row, Col: maxCol - c.Col}
	}
	return Shape{cells: normalize(out)}
}

// RotateOffset turns a single offset vector a quarter turn clockwise,
// `turns` times. Synergy target offsets rotate with their item.
func RotateOffset(v Cell, turns int) Cell {
	turns = ((turns % 4) + 4) % 4
	for i := 0; i < turns; i++ {
		v = Cell{Row: v.Col, Col: -v.Row}
	}
	return v
}

func normalize(cells []Cell) []Cell {
	minRow, minCol := cells[0].Row, cells[0].Col
	for _, c := range cells[1:] {
		if c.Row < minRow {
			minRow = c.Row
		}
		if c.Col < minCol {
			minCol = c.Col
		}
	}
	for i := range cells {
		cells[i].Row -= minRow
		cells[i].Col -= minCol
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})
	return cells
}
