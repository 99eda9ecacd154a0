package status

import (
	"cursedwarden/internal/domain/campaign"
	"cursedwarden/internal/domain/inventory"
	"cursedwarden/internal/domain/loadout"
	"cursedwarden/internal/domain/shape"
)

type Request struct {
	ProfileID string
}

// ItemView is one placed item with its resolved grid coverage.
type ItemView struct {
	ID          inventory.PlacedID `json:"id"`
	ItemID      string             `json:"item_id"`
	Name        string             `json:"name"`
	Anchor      shape.Cell         `json:"anchor"`
	Orientation int                `json:"orientation"`
	Cells       []shape.Cell       `json:"cells"`
}

type Response struct {
	ProfileID string                 `json:"profile_id"`
	Width     int                    `json:"width"`
	Height    int                    `json:"height"`
	Locked    []shape.Cell           `json:"locked,omitempty"`
	Items     []ItemView             `json:"items"`
	Loadout   loadout.PlayerSnapshot `json:"loadout"`
	Progress  campaign.Progress      `json:"progress"`
	Version   int64                  `json:"version"`
}
