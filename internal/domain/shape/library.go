package shape

// Library caches the orientation variants of every registered shape so
// placement attempts never recompute rotations. Orientation indexes 0-3
// are the clockwise rotations of the base shape; when a shape registers
// with mirroring, indexes 4-7 are the rotations of the mirrored shape.
type Library struct {
	variants map[string][]Shape
}

func NewLibrary() *Library {
	return &Library{variants: make(map[string][]Shape)}
}

// Register precomputes and stores the orientation variants for id.
// Registering the same id again replaces the previous variants.
func (l *Library) Register(id string, base Shape, mirrored bool) {
	n := 4
	if mirrored {
		n = 8
	}
	out := make([]Shape, 0, n)
	cur := base
	for i := 0; i < 4; i++ {
		out = append(out, cur)
		cur = cur.Rotate()
	}
	if mirrored {
		cur = base.Mirror()
		for i := 0; i < 4; i++ {
			out = append(out, cur)
			cur = cur.Rotate()
		}
	}
	l.variants[id] = out
}

// Orientation returns the precomputed variant for (id, index).
func (l *Library) Orientation(id string, index int) (Shape, bool) {
	vs, ok := l.variants[id]
	if !ok || index < 0 || index >= len(vs) {
		return Shape{}, false
	}
	return vs[index], true
}

// OrientationCount returns how many variants id was registered with,
// or zero for unknown shapes.
func (l *Library) OrientationCount(id string) int {
	return len(l.variants[id])
}
