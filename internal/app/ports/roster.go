package ports

import (
	"context"

	"cursedwarden/internal/domain/content"
)

// RosterProvider decides which enemies show up for a given day. The
// roster must be deterministic per day so replays stay reproducible.
type RosterProvider interface {
	ForDay(ctx context.Context, day int) ([]content.EnemyDefinition, error)
}
