package replay

import (
	"context"
	"errors"
	"strings"

	"cursedwarden/internal/app/ports"
	"cursedwarden/internal/domain/campaign"
)

var ErrInvalidRequest = errors.New("invalid replay request")

// UseCase reads back a profile's history: the event stream plus every
// stored battle with its rendered log.
type UseCase struct {
	Events  ports.EventRepository
	Battles ports.BattleRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.ProfileID) == "" {
		return Response{}, ErrInvalidRequest
	}
	events, err := u.Events.ListByProfileID(ctx, req.ProfileID, req.Limit)
	if err != nil {
		return Response{}, err
	}
	events = filterByTimeWindow(events, req.OccurredFrom, req.OccurredTo)

	records, err := u.Battles.ListByProfileID(ctx, req.ProfileID, req.Limit)
	if err != nil {
		return Response{}, err
	}
	resp := Response{Events: events}
	for _, rec := range records {
		resp.Battles = append(resp.Battles, toBattleView(rec))
	}
	return resp, nil
}

func filterByTimeWindow(events []campaign.Event, from, to int64) []campaign.Event {
	if from <= 0 && to <= 0 {
		return events
	}
	out := make([]campaign.Event, 0, len(events))
	for _, evt := range events {
		ts := evt.OccurredAt.Unix()
		if from > 0 && ts < from {
			continue
		}
		if to > 0 && ts > to {
			continue
		}
		out = append(out, evt)
	}
	return out
}
