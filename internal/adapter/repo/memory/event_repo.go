package memory

import (
	"context"

	"cursedwarden/internal/domain/campaign"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(_ context.Context, profileID string, events []campaign.Event) error {
	r.store.events[profileID] = append(r.store.events[profileID], events...)
	return nil
}

// ListByProfileID returns events oldest first, capped at limit when
// positive.
func (r EventRepo) ListByProfileID(_ context.Context, profileID string, limit int) ([]campaign.Event, error) {
	all := r.store.events[profileID]
	if limit > 0 && len(all) > limit {
		all = all[len(all)-limit:]
	}
	out := make([]campaign.Event, len(all))
	copy(out, all)
	return out, nil
}
