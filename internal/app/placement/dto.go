package placement

import (
	"cursedwarden/internal/domain/campaign"
	"cursedwarden/internal/domain/inventory"
	"cursedwarden/internal/domain/shape"
)

type Kind string

const (
	KindPlace     Kind = "place"
	KindAutoPlace Kind = "auto_place"
	KindRemove    Kind = "remove"
	KindGrow      Kind = "grow"
)

type Request struct {
	ProfileID      string
	IdempotencyKey string
	Kind           Kind

	// Place and auto place.
	ItemID      string
	Anchor      shape.Cell
	Orientation int

	// Remove and grow.
	TargetID inventory.PlacedID
}

// ItemView is one placed item with its resolved grid coverage.
type ItemView struct {
	ID          inventory.PlacedID `json:"id"`
	ItemID      string             `json:"item_id"`
	Anchor      shape.Cell         `json:"anchor"`
	Orientation int                `json:"orientation"`
	Cells       []shape.Cell       `json:"cells"`
}

type Response struct {
	ProfileID string             `json:"profile_id"`
	Applied   Kind               `json:"applied"`
	Target    inventory.PlacedID `json:"target,omitempty"`
	Grown     []shape.Cell       `json:"grown,omitempty"`
	Items     []ItemView         `json:"items"`
	Progress  campaign.Progress  `json:"progress"`
	Version   int64              `json:"version"`
	Events    []campaign.Event   `json:"events"`
}
