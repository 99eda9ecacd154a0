package battle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"cursedwarden/internal/app/ports"
	"cursedwarden/internal/domain/campaign"
	"cursedwarden/internal/domain/combat"
	"cursedwarden/internal/domain/inventory"
	"cursedwarden/internal/domain/loadout"
	"cursedwarden/internal/domain/shape"
)

var (
	ErrInvalidRequest = errors.New("invalid battle request")
	ErrWrongPhase     = errors.New("battle can only start during the day")
	ErrRunOver        = errors.New("run already over")
)

// UseCase resolves one full evening: loadout resolution, the battle
// itself, the night mutation, and the advance to the next day. A defeat
// ends the run instead.
type UseCase struct {
	TxManager   ports.TxManager
	ProfileRepo ports.ProfileRepository
	BattleRepo  ports.BattleRepository
	CommandRepo ports.CommandRepository
	EventRepo   ports.EventRepository
	Content     ports.ContentProvider
	Roster      ports.RosterProvider
	Metrics     ports.ActionMetrics
	Now         func() time.Time

	BaseStats loadout.StatBlock
	MaxRounds int
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.ProfileID = strings.TrimSpace(req.ProfileID)
	req.IdempotencyKey = strings.TrimSpace(req.IdempotencyKey)
	if req.ProfileID == "" || req.IdempotencyKey == "" {
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

		profile, err := u.ProfileRepo.GetByProfileID(txCtx, req.ProfileID)
		if err != nil {
			return err
		}
		if profile.Progress.Over() {
			return ErrRunOver
		}
		if profile.Progress.Phase != campaign.PhaseDay {
			return ErrWrongPhase
		}
		day := profile.Progress.Day

		cat, err := u.Content.Catalog(txCtx)
		if err != nil {
			return err
		}
		lib := cat.ShapeLibrary()
		state, err := inventory.Restore(profile.Save, cat, lib)
		if err != nil {
			return err
		}

		snap, err := loadout.Resolve(u.BaseStats, state, cat)
		if err != nil {
			return err
		}

		defs, err := u.Roster.ForDay(txCtx, day)
		if err != nil {
			return err
		}
		enemies := make([]combat.Unit, 0, len(defs))
		seen := make(map[string]int, len(defs))
		for _, def := range defs {
			seen[def.ID]++
			id := def.ID
			if n := seen[def.ID]; n > 1 {
				id = fmt.Sprintf("%s#%d", def.ID, n)
			}
			enemies = append(enemies, combat.EnemyUnit(id, def))
		}

		var rule combat.TargetRule
		if req.Seed != 0 {
			rule = combat.NewSeededRule(req.Seed)
		}
		player := combat.PlayerUnit("player", req.ProfileID, snap)
		result, err := combat.Simulate(txCtx, player, enemies, combat.Config{
			MaxRounds: u.MaxRounds,
			Rule:      rule,
		})
		if err != nil {
			return err
		}

		if err := u.BattleRepo.Save(txCtx, ports.BattleRecord{
			ProfileID: req.ProfileID,
			Day:       day,
			Seed:      req.Seed,
			Result:    result,
			FoughtAt:  nowFn(),
		}); err != nil {
			return err
		}

		events := []campaign.Event{{
			Type:       campaign.EventBattleStarted,
			ProfileID:  req.ProfileID,
			OccurredAt: nowFn(),
			Payload: map[string]any{
				"day":     day,
				"seed":    req.Seed,
				"enemies": len(enemies),
			},
		}, {
			Type:       campaign.EventBattleEnded,
			ProfileID:  req.ProfileID,
			OccurredAt: nowFn(),
			Payload: map[string]any{
				"day":     day,
				"outcome": string(result.Outcome),
				"rounds":  result.Rounds,
			},
		}}

		var grown []shape.Cell
		if result.Outcome == combat.OutcomeDefeat {
			profile.Progress = profile.Progress.Finish()
			events = append(events, campaign.Event{
				Type:       campaign.EventRunEnded,
				ProfileID:  req.ProfileID,
				OccurredAt: nowFn(),
				Payload:    map[string]any{"day": day},
			})
		} else {
			// Evening resolved, night mutates an item, next day begins.
			profile.Progress = profile.Progress.Advance().Advance()
			grown = nightGrowth(state, day)
			if grown != nil {
				events = append(events, campaign.Event{
					Type:       campaign.EventItemGrown,
					ProfileID:  req.ProfileID,
					OccurredAt: nowFn(),
					Payload:    map[string]any{"day": day, "cells": len(grown)},
				})
			}
			profile.Progress = profile.Progress.Advance()
			events = append(events, campaign.Event{
				Type:       campaign.EventDayAdvanced,
				ProfileID:  req.ProfileID,
				OccurredAt: nowFn(),
				Payload:    map[string]any{"day": profile.Progress.Day},
			})
		}

		profile.Save = inventory.Snapshot(state, req.ProfileID, profile.Progress.Day)
		profile.UpdatedAt = nowFn()
		if err := u.ProfileRepo.SaveWithVersion(txCtx, profile, profile.Version); err != nil {
			return err
		}
		if err := u.EventRepo.Append(txCtx, req.ProfileID, events); err != nil {
			return err
		}

		out = Response{
			ProfileID: req.ProfileID,
			Day:       day,
			Loadout:   snap,
			Result:    result,
			Grown:     grown,
			Progress:  profile.Progress,
			Events:    events,
		}
		payload, err := json.Marshal(out)
		if err != nil {
			return err
		}
		return u.CommandRepo.Save(txCtx, ports.CommandRecord{
			ProfileID:      req.ProfileID,
			IdempotencyKey: req.IdempotencyKey,
			Kind:           "battle",
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
		u.Metrics.RecordSuccess("battle")
	}
	return out, nil
}

// nightGrowth mutates one item: a day-seeded pick from the placed set,
// trying each item from the chosen index until one has room to grow.
// Nil when nothing grew.
func nightGrowth(state *inventory.State, day int) []shape.Cell {
	items := state.Items()
	if len(items) == 0 {
		return nil
	}
	start := rand.New(rand.NewSource(int64(day))).Intn(len(items))
	for i := 0; i < len(items); i++ {
		it := items[(start+i)%len(items)]
		grown, err := state.GrowItem(it.ID)
		if err == nil {
			return grown
		}
	}
	return nil
}
