package main

import (
	"context"
	"log"
	"time"

	contentstatic "cursedwarden/internal/adapter/content/static"
	httpadapter "cursedwarden/internal/adapter/http"
	metricsinmem "cursedwarden/internal/adapter/metrics/inmemory"
	gormrepo "cursedwarden/internal/adapter/repo/gorm"
	"cursedwarden/internal/app/battle"
	"cursedwarden/internal/app/placement"
	"cursedwarden/internal/app/replay"
	"cursedwarden/internal/app/status"
	"cursedwarden/internal/config"
	"cursedwarden/internal/domain/content"

	"github.com/cloudwego/hertz/pkg/app/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.DBDSN == "" {
		log.Fatal("CURSEDWARDEN_DB_DSN is required")
	}

	db, err := gormrepo.OpenPostgres(cfg.DBDSN)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	if err := gormrepo.ApplyMigrations(context.Background(), db, cfg.MigrationsDir); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}

	catalog := mustLoadCatalog(cfg.ContentDir)
	provider := contentstatic.NewProvider(catalog)
	roster := contentstatic.NewRoster(catalog)
	kpiRecorder := metricsinmem.NewRecorder()

	profileRepo := gormrepo.NewProfileRepo(db)
	battleRepo := gormrepo.NewBattleRepo(db)
	commandRepo := gormrepo.NewCommandRepo(db)
	eventRepo := gormrepo.NewEventRepo(db)
	txManager := gormrepo.NewTxManager(db)

	h := httpadapter.Handler{
		PlacementUC: placement.UseCase{
			TxManager:   txManager,
			ProfileRepo: profileRepo,
			CommandRepo: commandRepo,
			EventRepo:   eventRepo,
			Content:     provider,
			Metrics:     kpiRecorder,
			Now:         time.Now,
			GridWidth:   cfg.GridWidth,
			GridHeight:  cfg.GridHeight,
		},
		BattleUC: battle.UseCase{
			TxManager:   txManager,
			ProfileRepo: profileRepo,
			BattleRepo:  battleRepo,
			CommandRepo: commandRepo,
			EventRepo:   eventRepo,
			Content:     provider,
			Roster:      roster,
			Metrics:     kpiRecorder,
			Now:         time.Now,
			BaseStats:   cfg.BaseStats(),
			MaxRounds:   cfg.MaxRounds,
		},
		StatusUC: status.UseCase{
			ProfileRepo: profileRepo,
			Content:     provider,
			BaseStats:   cfg.BaseStats(),
		},
		ReplayUC: replay.UseCase{
			Events:  eventRepo,
			Battles: battleRepo,
		},
		KPI: kpiRecorder,
	}

	s := server.Default(server.WithHostPorts(cfg.Addr))
	h.RegisterRoutes(s)

	log.Printf("cursedwarden server listening on %s", cfg.Addr)
	s.Spin()
}

func mustLoadCatalog(dir string) content.Catalog {
	if dir == "" {
		return content.DefaultCatalog()
	}
	catalog, err := contentstatic.LoadDir(dir)
	if err != nil {
		log.Fatalf("load content from %s: %v", dir, err)
	}
	return catalog
}
