package memory

import (
	"context"

	"cursedwarden/internal/app/ports"
)

type BattleRepo struct {
	store *Store
}

func NewBattleRepo(store *Store) BattleRepo {
	return BattleRepo{store: store}
}

func (r BattleRepo) Save(_ context.Context, record ports.BattleRecord) error {
	r.store.battles[record.ProfileID] = append(r.store.battles[record.ProfileID], record)
	return nil
}

// ListByProfileID returns the most recent battles first.
func (r BattleRepo) ListByProfileID(_ context.Context, profileID string, limit int) ([]ports.BattleRecord, error) {
	all := r.store.battles[profileID]
	out := make([]ports.BattleRecord, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, all[i])
	}
	return out, nil
}
