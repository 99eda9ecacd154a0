package battle

import (
	"cursedwarden/internal/domain/campaign"
	"cursedwarden/internal/domain/combat"
	"cursedwarden/internal/domain/loadout"
	"cursedwarden/internal/domain/shape"
)

type Request struct {
	ProfileID      string
	IdempotencyKey string
	// Seed switches targeting to the seeded random rule; zero keeps the
	// deterministic focus rule.
	Seed int64
}

type Response struct {
	ProfileID string                 `json:"profile_id"`
	Day       int                    `json:"day"`
	Loadout   loadout.PlayerSnapshot `json:"loadout"`
	Result    combat.Result          `json:"result"`
	Grown     []shape.Cell           `json:"grown,omitempty"`
	Progress  campaign.Progress      `json:"progress"`
	Events    []campaign.Event       `json:"events"`
}
