package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"mycoordinator/adapters/gormstore"
	"mycoordinator/service"

	"gopkg.in/yaml.v3"
)

// Env variable names.
const (
	envHTTPPort            = "SERVICE_PORT_HTTP"
	envGRPCPort            = "SERVICE_PORT_GRPC"
	envAppEnv              = "APP_ENV"
	envConfigPath          = "CONFIG_PATH"
	envStorageBackend      = "STORAGE_BACKEND"
	envRedisAddr           = "REDIS_ADDR"
	envSQLitePath          = "SQLITE_PATH"
	envPostgresDSN         = "POSTGRES_DSN"
	envLeaseTTLMs          = "LEASE_TTL_MS"
	envRenewalBufferMs     = "LEASE_RENEWAL_BUFFER_MS"
	envRegistrationGraceMs = "REGISTRATION_GRACE_MS"
	envCleanupGraceMs      = "CLEANUP_GRACE_MS"
	envCleanupIntervalMs   = "CLEANUP_INTERVAL_MS"
	envHealthCheckMs       = "HEALTH_CHECK_INTERVAL_MS"
	envSupervisorURL       = "SUPERVISOR_URL"
	envMetricsEnabled      = "METRICS_ENABLED"
)

// StorageBackend selects the InstanceRepository implementation.
type StorageBackend string

const (
	StorageMemory   StorageBackend = "memory"
	StorageRedis    StorageBackend = "redis"
	StorageSQLite   StorageBackend = "sqlite"
	StoragePostgres StorageBackend = "postgres"
)

// Config holds the coordinator configuration loaded by LoadConfig.
type Config struct {
	HTTPPort       int
	GRPCPort       int // 0 disables the gRPC health server
	Production     bool
	Storage        StorageBackend
	RedisAddr      string
	Database       gormstore.Config
	SupervisorURL  string
	MetricsEnabled bool
	Coordinator    service.CoordinatorConfig
}

// yamlConfig is the root of the optional file at CONFIG_PATH.
type yamlConfig struct {
	Startup yamlStartup `yaml:"startup"`
}

// yamlStartup tunes the startup sequencer. Pointers tell "absent" from zero.
type yamlStartup struct {
	InterWaveDelayMs      *int  `yaml:"inter_wave_delay_ms"`
	HealthCheckRetries    *int  `yaml:"health_check_retries"`
	HealthCheckIntervalMs *int  `yaml:"health_check_interval_ms"`
	ReadyWaitTimeoutMs    *int  `yaml:"ready_wait_timeout_ms"`
	MaxParallel           *int  `yaml:"max_parallel"`
	OptimizationEnabled   *bool `yaml:"optimization_enabled"`
}

func loadYAMLConfig(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out yamlConfig
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LoadConfig builds the configuration from environment variables and, when CONFIG_PATH is set, the YAML file.
// SERVICE_PORT_HTTP is required; everything else has a default.
//
// Returns (nil, error) on an invalid port or duration, an unknown storage backend, a backend without its
// address/DSN, or a YAML read/parse error.
//
// Called only from main at startup.
func LoadConfig() (*Config, error) {
	httpPort, err := portFromEnv(envHTTPPort, true)
	if err != nil {
		return nil, err
	}
	grpcPort, err := portFromEnv(envGRPCPort, false)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPPort:       httpPort,
		GRPCPort:       grpcPort,
		SupervisorURL:  strings.TrimRight(strings.TrimSpace(os.Getenv(envSupervisorURL)), "/"),
		MetricsEnabled: true,
	}

	switch appEnv := strings.TrimSpace(os.Getenv(envAppEnv)); appEnv {
	case "", "development":
	case "production":
		cfg.Production = true
	default:
		return nil, fmt.Errorf("%s must be production or development, got %q", envAppEnv, appEnv)
	}

	if v := strings.TrimSpace(os.Getenv(envMetricsEnabled)); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", envMetricsEnabled, err)
		}
		cfg.MetricsEnabled = enabled
	}

	if err := loadStorage(cfg); err != nil {
		return nil, err
	}

	durations := []struct {
		env  string
		def  time.Duration
		dest *time.Duration
	}{
		{envLeaseTTLMs, 30 * time.Second, &cfg.Coordinator.Registry.LeaseTTL},
		{envRenewalBufferMs, 5 * time.Second, &cfg.Coordinator.Registry.RenewalBuffer},
		{envRegistrationGraceMs, 30 * time.Second, &cfg.Coordinator.Registry.RegistrationGrace},
		{envCleanupGraceMs, time.Minute, &cfg.Coordinator.CleanupGrace},
		{envCleanupIntervalMs, time.Minute, &cfg.Coordinator.CleanupInterval},
		{envHealthCheckMs, 30 * time.Second, &cfg.Coordinator.HealthCheckInterval},
	}
	for _, d := range durations {
		v, err := durationFromEnv(d.env, d.def)
		if err != nil {
			return nil, err
		}
		*d.dest = v
	}
	if cfg.Coordinator.Registry.LeaseTTL <= 0 {
		return nil, fmt.Errorf("%s must be positive", envLeaseTTLMs)
	}
	if cfg.Coordinator.CleanupInterval <= 0 || cfg.Coordinator.HealthCheckInterval <= 0 {
		return nil, fmt.Errorf("%s and %s must be positive", envCleanupIntervalMs, envHealthCheckMs)
	}
	cfg.Coordinator.ProbeTimeout = 5 * time.Second

	interWaveDelay := 2 * time.Second
	if cfg.Production {
		interWaveDelay = 500 * time.Millisecond
	}
	cfg.Coordinator.Sequencer = service.SequencerConfig{
		InterWaveDelay:      interWaveDelay,
		HealthCheckRetries:  15,
		HealthCheckInterval: time.Second,
		OptimizationEnabled: true,
	}
	cfg.Coordinator.Orchestrator = service.OrchestratorConfig{
		PollInterval:       250 * time.Millisecond,
		DefaultWaitTimeout: 30 * time.Second,
	}

	configPath := strings.TrimSpace(os.Getenv(envConfigPath))
	if configPath == "" {
		return cfg, nil
	}
	if !filepath.IsAbs(configPath) {
		abs, absErr := filepath.Abs(configPath)
		if absErr != nil {
			return nil, absErr
		}
		configPath = abs
	}
	raw, err := loadYAMLConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", configPath, err)
	}
	if err := applyStartup(cfg, raw.Startup); err != nil {
		return nil, fmt.Errorf("config %s: %w", configPath, err)
	}
	return cfg, nil
}

func loadStorage(cfg *Config) error {
	backend := StorageBackend(strings.TrimSpace(os.Getenv(envStorageBackend)))
	if backend == "" {
		backend = StorageMemory
	}
	cfg.Storage = backend

	switch backend {
	case StorageMemory:
	case StorageRedis:
		cfg.RedisAddr = strings.TrimSpace(os.Getenv(envRedisAddr))
		if cfg.RedisAddr == "" {
			return fmt.Errorf("%s is required for %s=%s", envRedisAddr, envStorageBackend, backend)
		}
	case StorageSQLite:
		cfg.Database = gormstore.Config{
			Type:   gormstore.DatabaseTypeSQLite,
			SQLite: gormstore.SQLiteConfig{Path: strings.TrimSpace(os.Getenv(envSQLitePath))},
		}
	case StoragePostgres:
		cfg.Database = gormstore.Config{
			Type:     gormstore.DatabaseTypePostgres,
			Postgres: gormstore.PostgresConfig{DSN: strings.TrimSpace(os.Getenv(envPostgresDSN))},
		}
	default:
		return fmt.Errorf("%s must be memory, redis, sqlite or postgres, got %q", envStorageBackend, backend)
	}

	if cfg.Storage == StorageSQLite || cfg.Storage == StoragePostgres {
		cfg.Database.ApplyDefaults()
		if err := cfg.Database.Validate(); err != nil {
			return fmt.Errorf("%s=%s: %w", envStorageBackend, backend, err)
		}
	}
	return nil
}

func applyStartup(cfg *Config, s yamlStartup) error {
	seq := &cfg.Coordinator.Sequencer
	if s.InterWaveDelayMs != nil {
		if *s.InterWaveDelayMs < 0 {
			return fmt.Errorf("startup.inter_wave_delay_ms must not be negative")
		}
		seq.InterWaveDelay = time.Duration(*s.InterWaveDelayMs) * time.Millisecond
	}
	if s.HealthCheckRetries != nil {
		if *s.HealthCheckRetries <= 0 {
			return fmt.Errorf("startup.health_check_retries must be positive")
		}
		seq.HealthCheckRetries = *s.HealthCheckRetries
	}
	if s.HealthCheckIntervalMs != nil {
		if *s.HealthCheckIntervalMs <= 0 {
			return fmt.Errorf("startup.health_check_interval_ms must be positive")
		}
		seq.HealthCheckInterval = time.Duration(*s.HealthCheckIntervalMs) * time.Millisecond
	}
	if s.MaxParallel != nil {
		if *s.MaxParallel < 0 {
			return fmt.Errorf("startup.max_parallel must not be negative")
		}
		seq.MaxParallel = *s.MaxParallel
	}
	if s.OptimizationEnabled != nil {
		seq.OptimizationEnabled = *s.OptimizationEnabled
	}
	if s.ReadyWaitTimeoutMs != nil {
		if *s.ReadyWaitTimeoutMs <= 0 {
			return fmt.Errorf("startup.ready_wait_timeout_ms must be positive")
		}
		cfg.Coordinator.Orchestrator.DefaultWaitTimeout = time.Duration(*s.ReadyWaitTimeoutMs) * time.Millisecond
	}
	return nil
}

func portFromEnv(env string, required bool) (int, error) {
	portStr := strings.TrimSpace(os.Getenv(env))
	if portStr == "" {
		if required {
			return 0, fmt.Errorf("%s is required", env)
		}
		return 0, nil
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", env, err)
	}
	if port <= 0 || port > 65535 {
		return 0, fmt.Errorf("%s must be 1-65535, got %d", env, port)
	}
	return port, nil
}

func durationFromEnv(env string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(env))
	if v == "" {
		return def, nil
	}
	ms, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", env, err)
	}
	if ms < 0 {
		return 0, fmt.Errorf("%s must not be negative", env)
	}
	return time.Duration(ms) * time.Millisecond, nil
}
