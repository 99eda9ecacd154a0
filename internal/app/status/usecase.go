package status

import (
	"context"
	"errors"
	"strings"

	"cursedwarden/internal/app/ports"
	"cursedwarden/internal/domain/inventory"
	"cursedwarden/internal/domain/loadout"
)

var ErrInvalidRequest = errors.New("invalid status request")

// UseCase reads the current run state: grid, placed items, resolved
// loadout, and campaign progress. It never mutates anything.
type UseCase struct {
	ProfileRepo ports.ProfileRepository
	Content     ports.ContentProvider

	BaseStats loadout.StatBlock
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.ProfileID) == "" {
		return Response{}, ErrInvalidRequest
	}
	profile, err := u.ProfileRepo.GetByProfileID(ctx, req.ProfileID)
	if err != nil {
		return Response{}, err
	}
	cat, err := u.Content.Catalog(ctx)
	if err != nil {
		return Response{}, err
	}
	lib := cat.ShapeLibrary()
	state, err := inventory.Restore(profile.Save, cat, lib)
	if err != nil {
		return Response{}, err
	}
	snap, err := loadout.Resolve(u.BaseStats, state, cat)
	if err != nil {
		return Response{}, err
	}

	resp := Response{
		ProfileID: req.ProfileID,
		Width:     state.Width(),
		Height:    state.Height(),
		Locked:    profile.Save.Locked,
		Loadout:   snap,
		Progress:  profile.Progress,
		Version:   profile.Version,
	}
	for _, it := range state.Items() {
		def, _ := cat.Item(it.ItemID)
		resp.Items = append(resp.Items, ItemView{
			ID:          it.ID,
			ItemID:      it.ItemID,
			Name:        def.Name,
			Anchor:      it.Anchor,
			Orientation: it.Orientation,
			Cells:       state.Covered(it.ID),
		})
	}
	return resp, nil
}
