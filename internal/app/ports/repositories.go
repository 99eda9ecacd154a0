package ports

import (
	"context"
	"time"

	"cursedwarden/internal/domain/campaign"
	"cursedwarden/internal/domain/combat"
	"cursedwarden/internal/domain/inventory"
)

// ProfileState is the persisted aggregate for one run: the inventory
// snapshot plus campaign progress, under one optimistic version.
type ProfileState struct {
	ProfileID string
	Save      inventory.SaveRecord
	Progress  campaign.Progress
	Version   int64
	UpdatedAt time.Time
}

type ProfileRepository interface {
	GetByProfileID(ctx context.Context, profileID string) (ProfileState, error)
	// SaveWithVersion persists state when the stored version still equals
	// expectedVersion, bumping it by one. ErrConflict otherwise.
	SaveWithVersion(ctx context.Context, state ProfileState, expectedVersion int64) error
}

// BattleRecord is one resolved evening battle.
type BattleRecord struct {
	ProfileID string
	Day       int
	Seed      int64
	Result    combat.Result
	FoughtAt  time.Time
}

type BattleRepository interface {
	Save(ctx context.Context, record BattleRecord) error
	ListByProfileID(ctx context.Context, profileID string, limit int) ([]BattleRecord, error)
}

type EventRepository interface {
	Append(ctx context.Context, profileID string, events []campaign.Event) error
	ListByProfileID(ctx context.Context, profileID string, limit int) ([]campaign.Event, error)
}

// CommandRecord captures the response of an already-applied mutation so
// a retried request replays the stored answer instead of re-running.
type CommandRecord struct {
	ProfileID      string
	IdempotencyKey string
	Kind           string
	Response       []byte
	AppliedAt      time.Time
}

type CommandRepository interface {
	GetByIdempotencyKey(ctx context.Context, profileID, key string) (*CommandRecord, error)
	Save(ctx context.Context, record CommandRecord) error
}
