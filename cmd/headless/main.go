package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	contentstatic "cursedwarden/internal/adapter/content/static"
	metricsinmem "cursedwarden/internal/adapter/metrics/inmemory"
	"cursedwarden/internal/adapter/repo/memory"
	"cursedwarden/internal/app/battle"
	"cursedwarden/internal/app/placement"
	"cursedwarden/internal/app/status"
	"cursedwarden/internal/config"
	"cursedwarden/internal/domain/content"
)

// headless runs a short campaign against the in-memory store and prints
// the rendered battle logs. Useful for balancing content without a
// database or an HTTP client.
func main() {
	days := flag.Int("days", 3, "number of battles to attempt")
	seed := flag.Int64("seed", 0, "targeting seed; zero keeps deterministic focus targeting")
	contentDir := flag.String("content", "", "directory with items.yaml and enemies.yaml; empty uses the built-in catalog")
	items := flag.String("items", "steel_sword,whetstone,epic_shield", "comma separated item ids to auto place before the first battle")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	catalog := content.DefaultCatalog()
	if *contentDir != "" {
		catalog, err = contentstatic.LoadDir(*contentDir)
		if err != nil {
			log.Fatalf("load content from %s: %v", *contentDir, err)
		}
	}

	store := memory.NewStore()
	provider := contentstatic.NewProvider(catalog)
	roster := contentstatic.NewRoster(catalog)
	recorder := metricsinmem.NewRecorder()

	placementUC := placement.UseCase{
		TxManager:   memory.NewTxManager(store),
		ProfileRepo: memory.NewProfileRepo(store),
		CommandRepo: memory.NewCommandRepo(store),
		EventRepo:   memory.NewEventRepo(store),
		Content:     provider,
		Metrics:     recorder,
		Now:         time.Now,
		GridWidth:   cfg.GridWidth,
		GridHeight:  cfg.GridHeight,
	}
	battleUC := battle.UseCase{
		TxManager:   memory.NewTxManager(store),
		ProfileRepo: memory.NewProfileRepo(store),
		BattleRepo:  memory.NewBattleRepo(store),
		CommandRepo: memory.NewCommandRepo(store),
		EventRepo:   memory.NewEventRepo(store),
		Content:     provider,
		Roster:      roster,
		Metrics:     recorder,
		Now:         time.Now,
		BaseStats:   cfg.BaseStats(),
		MaxRounds:   cfg.MaxRounds,
	}
	statusUC := status.UseCase{
		ProfileRepo: memory.NewProfileRepo(store),
		Content:     provider,
		BaseStats:   cfg.BaseStats(),
	}

	ctx := context.Background()
	const profileID = "headless"

	for i, itemID := range splitItems(*items) {
		resp, err := placementUC.Execute(ctx, placement.Request{
			ProfileID:      profileID,
			IdempotencyKey: fmt.Sprintf("place-%d", i),
			Kind:           placement.KindAutoPlace,
			ItemID:         itemID,
		})
		if err != nil {
			log.Fatalf("auto place %s: %v", itemID, err)
		}
		placed := resp.Items[len(resp.Items)-1]
		fmt.Printf("placed %s at (%d,%d) orientation %d\n", itemID, placed.Anchor.Row, placed.Anchor.Col, placed.Orientation)
	}

	for attempt := 1; attempt <= *days; attempt++ {
		resp, err := battleUC.Execute(ctx, battle.Request{
			ProfileID:      profileID,
			IdempotencyKey: fmt.Sprintf("battle-%d", attempt),
			Seed:           *seed,
		})
		if errors.Is(err, battle.ErrRunOver) {
			fmt.Println("run is over")
			break
		}
		if err != nil {
			log.Fatalf("battle on attempt %d: %v", attempt, err)
		}

		fmt.Printf("\n== day %d ==\n", resp.Day)
		fmt.Printf("warden: atk=%d def=%d spd=%d hp=%d\n",
			resp.Loadout.Stats.Attack, resp.Loadout.Stats.Defense,
			resp.Loadout.Stats.Speed, resp.Loadout.Stats.Health)
		for _, e := range resp.Result.Events {
			fmt.Println(e.Render())
		}
		fmt.Printf("outcome: %s after %d rounds, now at %s\n", resp.Result.Outcome, resp.Result.Rounds, resp.Progress)
		if len(resp.Grown) > 0 {
			fmt.Printf("overnight growth: %d new cells\n", len(resp.Grown))
		}
		if resp.Progress.Over() {
			break
		}
	}

	final, err := statusUC.Execute(ctx, status.Request{ProfileID: profileID})
	if err != nil {
		log.Fatalf("final status: %v", err)
	}
	fmt.Printf("\nfinal: %s, %d items on a %dx%d grid\n",
		final.Progress, len(final.Items), final.Width, final.Height)
}

func splitItems(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
