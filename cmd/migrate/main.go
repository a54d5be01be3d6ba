package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/nasafacts/community-service/internal/config"
	"github.com/nasafacts/community-service/internal/repository/postgres"
	"github.com/nasafacts/community-service/migrations"
)

func main() {
	down := flag.Bool("down", false, "roll back the most recent migration")
	flag.Parse()

	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	dbRepo := postgres.New(cfg)
	defer dbRepo.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, dbRepo.DB(), migrations.FS)
	if err != nil {
		log.Fatalf("failed to create migration provider: %v", err)
	}

	ctx := context.Background()

	if *down {
		result, err := provider.Down(ctx)
		if err != nil {
			log.Fatalf("failed to roll back migration: %v", err)
		}
		logger.Info(fmt.Sprintf("rolled back %s in %s", result.Source.Path, result.Duration))
		return
	}

	results, err := provider.Up(ctx)
	if err != nil {
		log.Fatalf("failed to apply migrations: %v", err)
	}
	for _, result := range results {
		logger.Info(fmt.Sprintf("applied %s in %s", result.Source.Path, result.Duration))
	}

	version, err := provider.GetDBVersion(ctx)
	if err != nil {
		log.Fatalf("failed to read schema version: %v", err)
	}
	logger.Info(fmt.Sprintf("schema is at version %d", version))
}
