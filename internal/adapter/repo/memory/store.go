// Package memory backs the repositories with in-process maps. Used by
// the headless runner and by use case tests; the lock lives on the
// store so the transaction manager can serialize whole use cases.
package memory

import (
	"sync"

	"cursedwarden/internal/app/ports"
	"cursedwarden/internal/domain/campaign"
)

type Store struct {
	mu       sync.RWMutex
	profiles map[string]ports.ProfileState
	battles  map[string][]ports.BattleRecord
	commands map[string]ports.CommandRecord
	events   map[string][]campaign.Event
}

func NewStore() *Store {
	return &Store{
		profiles: make(map[string]ports.ProfileState),
		battles:  make(map[string][]ports.BattleRecord),
		commands: make(map[string]ports.CommandRecord),
		events:   make(map[string][]campaign.Event),
	}
}

func commandKey(profileID, key string) string {
	return profileID + "::" + key
}

// SeedProfile installs a profile directly, bypassing version checks.
func (s *Store) SeedProfile(state ports.ProfileState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[state.ProfileID] = state
}
