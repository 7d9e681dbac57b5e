//go:build integration

// Package testinfra starts throwaway PostgreSQL and Redis containers for
// integration tests. Tests skip unless TEST_INTEGRATION is set.
package testinfra

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis"
	"github.com/jmoiron/sqlx"
	"github.com/moviematch/core/internal/config"
	infra_pg_init "github.com/moviematch/core/internal/infra/postgres/init"
	infra_redis_init "github.com/moviematch/core/internal/infra/redis/init"
	"github.com/moviematch/core/internal/logging"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const startupTimeout = 60 * time.Second

func SkipUnlessEnabled(t *testing.T) {
	t.Helper()

	if os.Getenv("TEST_INTEGRATION") == "" {
		t.Skip("skipping integration test: TEST_INTEGRATION is not set")
	}
}

// StartPostgres runs a migrated PostgreSQL and returns a connection to it.
func StartPostgres(t *testing.T) (*sqlx.DB, config.Postgres) {
	t.Helper()
	SkipUnlessEnabled(t)

	ctx := context.Background()
	container, err := postgres.Run(ctx,
		"docker.io/postgres:17-alpine",
		postgres.WithDatabase("moviematch_test"),
		postgres.WithUsername("moviematch"),
		postgres.WithPassword("test-password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(startupTimeout),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate postgres container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("failed to resolve postgres host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("failed to resolve postgres port: %v", err)
	}

	cfg := config.Postgres{
		Host:     host,
		Port:     port.Port(),
		User:     "moviematch",
		Password: "test-password",
		DBName:   "moviematch_test",
		SSLMode:  "disable",
		PoolSize: 10,
	}

	if err := infra_pg_init.Migrate(cfg, logging.New(*logging.Logger())); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	db, err := infra_pg_init.Connect(cfg)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return db, cfg
}

func StartRedis(t *testing.T) *redis.Client {
	t.Helper()
	SkipUnlessEnabled(t)

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "docker.io/redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor: wait.ForLog("Ready to accept connections").
				WithStartupTimeout(startupTimeout),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("failed to start redis container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate redis container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("failed to resolve redis host: %v", err)
	}
	port, err := container.MappedPort(ctx, "6379/tcp")
	if err != nil {
		t.Fatalf("failed to resolve redis port: %v", err)
	}

	client, err := infra_redis_init.Connect(ctx, config.RedisCache{Host: host, Port: port.Port()})
	if err != nil {
		t.Fatalf("redis unavailable: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	return client
}
