package static

import (
	"context"
	"errors"

	"cursedwarden/internal/domain/content"
)

var ErrNoEnemies = errors.New("catalog has no enemies")

// Roster deals enemies out of the catalog by day: the pack grows by one
// every other day up to maxPack, cycling through the enemy list in id
// order. Purely a function of the day number.
type Roster struct {
	catalog content.Catalog
	maxPack int
}

func NewRoster(catalog content.Catalog) Roster {
	return Roster{catalog: catalog, maxPack: 3}
}

func (r Roster) ForDay(_ context.Context, day int) ([]content.EnemyDefinition, error) {
	ids := r.catalog.EnemyIDs()
	if len(ids) == 0 {
		return nil, ErrNoEnemies
	}
	if day < 1 {
		day = 1
	}
	count := 1 + (day-1)/2
	if count > r.maxPack {
		count = r.maxPack
	}
	out := make([]content.EnemyDefinition, 0, count)
	for i := 0; i < count; i++ {
		def, _ := r.catalog.Enemy(ids[(day-1+i)%len(ids)])
		out = append(out, def)
	}
	return out, nil
}
