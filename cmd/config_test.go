package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"mycoordinator/adapters/gormstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv(envHTTPPort, "8080")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Zero(t, cfg.GRPCPort)
	assert.False(t, cfg.Production)
	assert.Equal(t, StorageMemory, cfg.Storage)
	assert.True(t, cfg.MetricsEnabled)
	assert.Empty(t, cfg.SupervisorURL)

	c := cfg.Coordinator
	assert.Equal(t, 30*time.Second, c.Registry.LeaseTTL)
	assert.Equal(t, 5*time.Second, c.Registry.RenewalBuffer)
	assert.Equal(t, 30*time.Second, c.Registry.RegistrationGrace)
	assert.Equal(t, time.Minute, c.CleanupGrace)
	assert.Equal(t, time.Minute, c.CleanupInterval)
	assert.Equal(t, 30*time.Second, c.HealthCheckInterval)
	assert.Equal(t, 2*time.Second, c.Sequencer.InterWaveDelay)
	assert.Equal(t, 15, c.Sequencer.HealthCheckRetries)
	assert.Equal(t, time.Second, c.Sequencer.HealthCheckInterval)
	assert.True(t, c.Sequencer.OptimizationEnabled)
	assert.Equal(t, 30*time.Second, c.Orchestrator.DefaultWaitTimeout)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv(envHTTPPort, "8080")
	t.Setenv(envGRPCPort, "50051")
	t.Setenv(envAppEnv, "production")
	t.Setenv(envLeaseTTLMs, "10000")
	t.Setenv(envCleanupIntervalMs, "15000")
	t.Setenv(envSupervisorURL, "http://supervisor:9000/")
	t.Setenv(envMetricsEnabled, "false")
	t.Setenv(envStorageBackend, "redis")
	t.Setenv(envRedisAddr, "redis://localhost:6379")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 50051, cfg.GRPCPort)
	assert.True(t, cfg.Production)
	assert.Equal(t, 500*time.Millisecond, cfg.Coordinator.Sequencer.InterWaveDelay)
	assert.Equal(t, 10*time.Second, cfg.Coordinator.Registry.LeaseTTL)
	assert.Equal(t, 15*time.Second, cfg.Coordinator.CleanupInterval)
	assert.Equal(t, "http://supervisor:9000", cfg.SupervisorURL)
	assert.False(t, cfg.MetricsEnabled)
	assert.Equal(t, StorageRedis, cfg.Storage)
	assert.Equal(t, "redis://localhost:6379", cfg.RedisAddr)
}

func TestLoadConfig_Storage(t *testing.T) {
	t.Setenv(envHTTPPort, "8080")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	t.Run("sqlite default path", func(t *testing.T) {
		t.Setenv(envStorageBackend, "sqlite")
		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, gormstore.DatabaseTypeSQLite, cfg.Database.Type)
		assert.Equal(t, "/tmp/xdg/mycoordinator/registry.db", cfg.Database.SQLite.Path)
	})

	t.Run("postgres", func(t *testing.T) {
		t.Setenv(envStorageBackend, "postgres")
		t.Setenv(envPostgresDSN, "postgres://u:p@db:5432/coordinator")
		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, gormstore.DatabaseTypePostgres, cfg.Database.Type)
		assert.Equal(t, 25, cfg.Database.Postgres.MaxOpenConns)
	})
}

func TestLoadConfig_YAML(t *testing.T) {
	t.Setenv(envHTTPPort, "8080")
	cfgPath := filepath.Join(t.TempDir(), "coordinator.yaml")
	content := `
startup:
  inter_wave_delay_ms: 0
  health_check_retries: 5
  health_check_interval_ms: 200
  ready_wait_timeout_ms: 10000
  max_parallel: 4
  optimization_enabled: false
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o644))
	t.Setenv(envConfigPath, cfgPath)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	seq := cfg.Coordinator.Sequencer
	assert.Zero(t, seq.InterWaveDelay)
	assert.Equal(t, 5, seq.HealthCheckRetries)
	assert.Equal(t, 200*time.Millisecond, seq.HealthCheckInterval)
	assert.Equal(t, 4, seq.MaxParallel)
	assert.False(t, seq.OptimizationEnabled)
	assert.Equal(t, 10*time.Second, cfg.Coordinator.Orchestrator.DefaultWaitTimeout)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		yaml        string
		expectedErr string
	}{
		{name: "missing http port", env: map[string]string{}, expectedErr: "SERVICE_PORT_HTTP is required"},
		{name: "port out of range", env: map[string]string{envHTTPPort: "70000"}, expectedErr: "SERVICE_PORT_HTTP must be 1-65535"},
		{name: "invalid grpc port", env: map[string]string{envHTTPPort: "8080", envGRPCPort: "abc"}, expectedErr: "invalid SERVICE_PORT_GRPC"},
		{name: "unknown app env", env: map[string]string{envHTTPPort: "8080", envAppEnv: "staging"}, expectedErr: "APP_ENV must be"},
		{name: "unknown backend", env: map[string]string{envHTTPPort: "8080", envStorageBackend: "etcd"}, expectedErr: "STORAGE_BACKEND must be"},
		{name: "redis without addr", env: map[string]string{envHTTPPort: "8080", envStorageBackend: "redis"}, expectedErr: "REDIS_ADDR is required"},
		{name: "postgres without dsn", env: map[string]string{envHTTPPort: "8080", envStorageBackend: "postgres"}, expectedErr: "postgres dsn is required"},
		{name: "zero lease ttl", env: map[string]string{envHTTPPort: "8080", envLeaseTTLMs: "0"}, expectedErr: "LEASE_TTL_MS must be positive"},
		{name: "negative duration", env: map[string]string{envHTTPPort: "8080", envCleanupGraceMs: "-1"}, expectedErr: "CLEANUP_GRACE_MS must not be negative"},
		{name: "invalid metrics flag", env: map[string]string{envHTTPPort: "8080", envMetricsEnabled: "maybe"}, expectedErr: "invalid METRICS_ENABLED"},
		{name: "bad yaml value", env: map[string]string{envHTTPPort: "8080"}, yaml: "startup:\n  health_check_retries: 0\n", expectedErr: "health_check_retries must be positive"},
		{name: "malformed yaml", env: map[string]string{envHTTPPort: "8080"}, yaml: "startup: [", expectedErr: "load config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(envHTTPPort, "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if tt.yaml != "" {
				cfgPath := filepath.Join(t.TempDir(), "coordinator.yaml")
				require.NoError(t, os.WriteFile(cfgPath, []byte(tt.yaml), 0o644))
				t.Setenv(envConfigPath, cfgPath)
			}

			_, err := LoadConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedErr)
		})
	}
}
