package content

import (
	"errors"
	"fmt"
	"sort"

	"cursedwarden/internal/domain/shape"
)

var (
	ErrDuplicateID  = errors.New("duplicate content id")
	ErrInvalidItem  = errors.New("invalid item definition")
	ErrInvalidEnemy = errors.New("invalid enemy definition")
	ErrUnknownItem  = errors.New("unknown item id")
	ErrUnknownEnemy = errors.New("unknown enemy id")
)

// Catalog is the immutable reference collection handed to the core at
// startup: item and enemy definitions keyed by stable identifier.
// Iteration order is always ascending id so derived data is reproducible.
type Catalog struct {
	items   map[string]ItemDefinition
	enemies map[string]EnemyDefinition
}

func NewCatalog(items []ItemDefinition, enemies []EnemyDefinition) (Catalog, error) {
	c := Catalog{
		items:   make(map[string]ItemDefinition, len(items)),
		enemies: make(map[string]EnemyDefinition, len(enemies)),
	}
	for _, it := range items {
		if it.ID == "" || it.Footprint().Size() == 0 {
			return Catalog{}, fmt.Errorf("%w: %q", ErrInvalidItem, it.ID)
		}
		if _, dup := c.items[it.ID]; dup {
			return Catalog{}, fmt.Errorf("%w: item %q", ErrDuplicateID, it.ID)
		}
		c.items[it.ID] = it
	}
	for _, en := range enemies {
		if en.ID == "" || en.MaxHP <= 0 {
			return Catalog{}, fmt.Errorf("%w: %q", ErrInvalidEnemy, en.ID)
		}
		if _, dup := c.enemies[en.ID]; dup {
			return Catalog{}, fmt.Errorf("%w: enemy %q", ErrDuplicateID, en.ID)
		}
		c.enemies[en.ID] = en
	}
	return c, nil
}

func (c Catalog) Item(id string) (ItemDefinition, bool) {
	it, ok := c.items[id]
	return it, ok
}

func (c Catalog) Enemy(id string) (EnemyDefinition, bool) {
	en, ok := c.enemies[id]
	return en, ok
}

// ItemIDs returns every item id in ascending order.
func (c Catalog) ItemIDs() []string {
	out := make([]string, 0, len(c.items))
	for id := range c.items {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// EnemyIDs returns every enemy id in ascending order.
func (c Catalog) EnemyIDs() []string {
	out := make([]string, 0, len(c.enemies))
	for id := range c.enemies {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// ShapeLibrary precomputes orientation variants for every item, keyed by
// item id. Built once at content load.
func (c Catalog) ShapeLibrary() *shape.Library {
	lib := shape.NewLibrary()
	for _, id := range c.ItemIDs() {
		it := c.items[id]
		lib.Register(id, it.Footprint(), it.Mirrored)
	}
	return lib
}
