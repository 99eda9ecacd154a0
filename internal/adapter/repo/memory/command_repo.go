package memory

import (
	"context"

	"cursedwarden/internal/app/ports"
)

type CommandRepo struct {
	store *Store
}

func NewCommandRepo(store *Store) CommandRepo {
	return CommandRepo{store: store}
}

func (r CommandRepo) GetByIdempotencyKey(_ context.Context, profileID, key string) (*ports.CommandRecord, error) {
	rec, ok := r.store.commands[commandKey(profileID, key)]
	if !ok {
		return nil, ports.ErrNotFound
	}
	copy := rec
	return &copy, nil
}

func (r CommandRepo) Save(_ context.Context, record ports.CommandRecord) error {
	k := commandKey(record.ProfileID, record.IdempotencyKey)
	if _, exists := r.store.commands[k]; exists {
		return ports.ErrConflict
	}
	r.store.commands[k] = record
	return nil
}
