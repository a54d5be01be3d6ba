// Package testhelper starts a throwaway PostgreSQL for repository tests.
package testhelper

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/nasafacts/community-service/internal/config"
	"github.com/nasafacts/community-service/migrations"
)

var (
	once      sync.Once
	sharedCfg *config.Config
	initErr   error
)

// SetupTestDB starts one container per test binary, applies the migrations and
// returns a fresh connection plus a config pointing at the container.
// Tests are skipped under -short.
func SetupTestDB(t *testing.T) (*sqlx.DB, *config.Config) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}

	once.Do(func() {
		sharedCfg, initErr = startContainerAndMigrate()
	})
	if initErr != nil {
		t.Fatalf("testhelper: failed to setup test DB: %v", initErr)
	}

	db, err := sqlx.Connect("postgres", connString(sharedCfg))
	if err != nil {
		t.Fatalf("testhelper: failed to connect: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})

	cfg := *sharedCfg
	return db, &cfg
}

func startContainerAndMigrate() (*config.Config, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, fmt.Errorf("get mapped port: %w", err)
	}

	cfg := &config.Config{
		Postgres: config.ReadEnvPostgres{
			User:     "testuser",
			Password: "testpass",
			Database: "testdb",
			Host:     host,
			Port:     port.Port(),
		},
		Realtime: config.Realtime{
			NotifyChannel:        "topic_messages",
			MinReconnectInterval: 100 * time.Millisecond,
			MaxReconnectInterval: time.Second,
			HeartbeatInterval:    time.Second,
			SubscriberBuffer:     16,
		},
	}

	db, err := sqlx.Open("postgres", connString(cfg))
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("db ping: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db.DB, migrations.FS)
	if err != nil {
		return nil, fmt.Errorf("goose new provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return nil, fmt.Errorf("goose up: %w", err)
	}

	return cfg, nil
}

func connString(cfg *config.Config) string {
	return fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)
}
