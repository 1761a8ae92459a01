//go:build integration

package gormstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestStore_Postgres(t *testing.T) {
	ctx := context.Background()
	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("coordinator_test"),
		postgres.WithUsername("coordinator_test"),
		postgres.WithPassword("coordinator_test"),
		testcontainers.WithWaitStrategyAndDeadline(2*time.Minute,
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			wait.ForListeningPort("5432/tcp"),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	store, err := New(&Config{
		Type:     DatabaseTypePostgres,
		Postgres: PostgresConfig{DSN: dsn},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	runRepositoryTests(t, func(t *testing.T) *Store {
		require.NoError(t, store.db.Exec("TRUNCATE service_dependencies, service_instances").Error)
		return store
	})
}
