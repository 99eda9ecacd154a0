package memory

import (
	"context"

	"cursedwarden/internal/app/ports"
)

type ProfileRepo struct {
	store *Store
}

func NewProfileRepo(store *Store) ProfileRepo {
	return ProfileRepo{store: store}
}

func (r ProfileRepo) GetByProfileID(_ context.Context, profileID string) (ports.ProfileState, error) {
	state, ok := r.store.profiles[profileID]
	if !ok {
		return ports.ProfileState{}, ports.ErrNotFound
	}
	return state, nil
}

func (r ProfileRepo) SaveWithVersion(_ context.Context, state ports.ProfileState, expectedVersion int64) error {
	current, ok := r.store.profiles[state.ProfileID]
	if !ok {
		if expectedVersion != 0 {
			return ports.ErrConflict
		}
		state.Version = 1
		r.store.profiles[state.ProfileID] = state
		return nil
	}
	if current.Version != expectedVersion {
		return ports.ErrConflict
	}
	state.Version = expectedVersion + 1
	r.store.profiles[state.ProfileID] = state
	return nil
}
