package main

import (
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"

	"mycoordinator/adapters/gormstore"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

func TestNewRepository(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		repo, closeStore, err := newRepository(&Config{Storage: StorageMemory}, log.NewNopLogger())
		require.NoError(t, err)
		require.NoError(t, repo.Ping(context.Background()))
		assert.NoError(t, closeStore())
	})

	t.Run("sqlite", func(t *testing.T) {
		cfg := &Config{
			Storage: StorageSQLite,
			Database: gormstore.Config{
				Type:   gormstore.DatabaseTypeSQLite,
				SQLite: gormstore.SQLiteConfig{Path: filepath.Join(t.TempDir(), "registry.db")},
			},
		}
		repo, closeStore, err := newRepository(cfg, log.NewNopLogger())
		require.NoError(t, err)
		require.NoError(t, repo.Ping(context.Background()))
		assert.NoError(t, closeStore())
	})

	t.Run("redis unreachable", func(t *testing.T) {
		cfg := &Config{Storage: StorageRedis, RedisAddr: "redis://127.0.0.1:1"}
		_, _, err := newRepository(cfg, log.NewNopLogger())
		assert.ErrorContains(t, err, "connect to redis")
	})
}

func TestHealthCheck(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	go func() {
		_ = grpcServer.Serve(lis)
	}()
	defer grpcServer.GracefulStop()

	conn, err := grpc.NewClient(lis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	client := grpc_health_v1.NewHealthClient(conn)

	resp, err := client.Check(ctx, &grpc_health_v1.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, resp.Status)

	healthServer.Shutdown()
	resp, err = client.Check(ctx, &grpc_health_v1.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING, resp.Status)
}
