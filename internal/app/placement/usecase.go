package placement

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"cursedwarden/internal/app/ports"
	"cursedwarden/internal/domain/campaign"
	"cursedwarden/internal/domain/content"
	"cursedwarden/internal/domain/inventory"
)

var (
	ErrInvalidRequest = errors.New("invalid placement request")
	ErrWrongPhase     = errors.New("inventory can only change during the day")
	ErrRunOver        = errors.New("run already over")
	ErrNoSpace        = errors.New("no free spot for item")
)

// UseCase applies one inventory mutation for a profile. Every request is
// idempotent under its key and atomic under the transaction manager.
type UseCase struct {
	TxManager   ports.TxManager
	ProfileRepo ports.ProfileRepository
	CommandRepo ports.CommandRepository
	EventRepo   ports.EventRepository
	Content     ports.ContentProvider
	Metrics     ports.ActionMetrics
	Now         func() time.Time

	// Grid dimensions for profiles created on first touch.
	GridWidth  int
	GridHeight int
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.ProfileID = strings.TrimSpace(req.ProfileID)
	req.IdempotencyKey = strings.TrimSpace(req.IdempotencyKey)
	if req.ProfileID == "" || req.IdempotencyKey == "" || !supportedKind(req.Kind) {
		return Response{}, ErrInvalidRequest
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		stored, err := u.CommandRepo.GetByIdempotencyKey(txCtx, req.ProfileID, req.IdempotencyKey)
		if err == nil && stored != nil {
			return json.Unmarshal(stored.Response, &out)
		}
		if err != nil && !errors.Is(err, ports.ErrNotFound) {
			return err
		}

		profile, err := u.loadOrCreate(txCtx, req.ProfileID)
		if err != nil {
			return err
		}
		if profile.Progress.Over() {
			return ErrRunOver
		}
		if profile.Progress.Phase != campaign.PhaseDay && req.Kind != KindGrow {
			return ErrWrongPhase
		}

		cat, err := u.Content.Catalog(txCtx)
		if err != nil {
			return err
		}
		lib := cat.ShapeLibrary()
		state, err := inventory.Restore(profile.Save, cat, lib)
		if err != nil {
			return err
		}

		out = Response{ProfileID: req.ProfileID, Applied: req.Kind}
		var event campaign.Event
		switch req.Kind {
		case KindPlace, KindAutoPlace:
			def, ok := cat.Item(req.ItemID)
			if !ok {
				return content.ErrUnknownItem
			}
			anchor, orientation := req.Anchor, req.Orientation
			if req.Kind == KindAutoPlace {
				var found bool
				anchor, orientation, found = state.FindFreeSpot(def, lib)
				if !found {
					return ErrNoSpace
				}
			}
			placed, err := state.Place(def, lib, anchor, orientation)
			if err != nil {
				return err
			}
			out.Target = placed.ID
			event = campaign.Event{
				Type: campaign.EventItemPlaced,
				Payload: map[string]any{
					"item_id":     placed.ItemID,
					"placed_id":   int64(placed.ID),
					"anchor_row":  anchor.Row,
					"anchor_col":  anchor.Col,
					"orientation": orientation,
				},
			}
		case KindRemove:
			item, ok := state.Item(req.TargetID)
			if !ok {
				return &inventory.NotFoundError{ID: req.TargetID}
			}
			if err := state.Remove(req.TargetID); err != nil {
				return err
			}
			out.Target = req.TargetID
			event = campaign.Event{
				Type: campaign.EventItemRemoved,
				Payload: map[string]any{
					"item_id":   item.ItemID,
					"placed_id": int64(req.TargetID),
				},
			}
		case KindGrow:
			grown, err := state.GrowItem(req.TargetID)
			if err != nil {
				return err
			}
			out.Target = req.TargetID
			out.Grown = grown
			event = campaign.Event{
				Type: campaign.EventItemGrown,
				Payload: map[string]any{
					"placed_id": int64(req.TargetID),
					"cells":     len(grown),
				},
			}
		}

		profile.Save = inventory.Snapshot(state, req.ProfileID, profile.Progress.Day)
		profile.UpdatedAt = nowFn()
		if err := u.ProfileRepo.SaveWithVersion(txCtx, profile, profile.Version); err != nil {
			return err
		}

		event.ProfileID = req.ProfileID
		event.OccurredAt = nowFn()
		if err := u.EventRepo.Append(txCtx, req.ProfileID, []campaign.Event{event}); err != nil {
			return err
		}

		out.Items = itemViews(state)
		out.Progress = profile.Progress
		out.Version = profile.Version + 1
		out.Events = []campaign.Event{event}

		payload, err := json.Marshal(out)
		if err != nil {
			return err
		}
		return u.CommandRepo.Save(txCtx, ports.CommandRecord{
			ProfileID:      req.ProfileID,
			IdempotencyKey: req.IdempotencyKey,
			Kind:           string(req.Kind),
			Response:       payload,
			AppliedAt:      nowFn(),
		})
	})
	if err != nil {
		if u.Metrics != nil {
			if errors.Is(err, ports.ErrConflict) {
				u.Metrics.RecordConflict()
			} else {
				u.Metrics.RecordFailure()
			}
		}
		return Response{}, err
	}
	if u.Metrics != nil {
		u.Metrics.RecordSuccess(string(req.Kind))
	}
	return out, nil
}

// loadOrCreate returns the stored profile or a fresh day-one profile
// with an empty grid when none exists yet.
func (u UseCase) loadOrCreate(ctx context.Context, profileID string) (ports.ProfileState, error) {
	profile, err := u.ProfileRepo.GetByProfileID(ctx, profileID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, ports.ErrNotFound) {
		return ports.ProfileState{}, err
	}
	return ports.ProfileState{
		ProfileID: profileID,
		Save: inventory.SaveRecord{
			ProfileID: profileID,
			Width:     u.GridWidth,
			Height:    u.GridHeight,
			Day:       1,
		},
		Progress: campaign.NewProgress(),
	}, nil
}

func itemViews(state *inventory.State) []ItemView {
	items := state.Items()
	out := make([]ItemView, 0, len(items))
	for _, it := range items {
		out = append(out, ItemView{
			ID:          it.ID,
			ItemID:      it.ItemID,
			Anchor:      it.Anchor,
			Orientation: it.Orientation,
			Cells:       state.Covered(it.ID),
		})
	}
	return out
}

func supportedKind(k Kind) bool {
	switch k {
	case KindPlace, KindAutoPlace, KindRemove, KindGrow:
		return true
	}
	return false
}
