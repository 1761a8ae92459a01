// Package gormstore is the relational InstanceRepository used when STORAGE_BACKEND is sqlite or postgres.
// Both backends share one GORM codebase; the schema is created via AutoMigrate.
package gormstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"mycoordinator/domain"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Store implements interfaces.InstanceRepository using GORM.
type Store struct {
	db     *gorm.DB
	config *Config
}

// New opens the database described by config and migrates the schema.
func New(config *Config) (*Store, error) {
	if config == nil {
		config = &Config{}
	}
	config.ApplyDefaults()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	var dialector gorm.Dialector
	switch config.Type {
	case DatabaseTypeSQLite:
		if err := os.MkdirAll(filepath.Dir(config.SQLite.Path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		// WAL for concurrent readers, busy_timeout so heartbeats wait for the cleanup writer.
		dsn := config.SQLite.Path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
		dialector = sqlite.Open(dsn)
	case DatabaseTypePostgres:
		dialector = postgres.Open(config.Postgres.DSN)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", config.Type)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying database: %w", err)
	}
	switch config.Type {
	case DatabaseTypePostgres:
		sqlDB.SetMaxOpenConns(config.Postgres.MaxOpenConns)
		sqlDB.SetMaxIdleConns(config.Postgres.MaxIdleConns)
	case DatabaseTypeSQLite:
		// single writer; concurrent transactions would otherwise race for the write lock
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(allModels()...); err != nil {
		return nil, fmt.Errorf("failed to run database migration: %w", err)
	}

	return &Store{db: db, config: config}, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// convertNotFoundError converts gorm.ErrRecordNotFound to domain.ErrInstanceNotFound.
func convertNotFoundError(err error, op, id string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %s: %w", op, id, domain.ErrInstanceNotFound)
	}
	return err
}

func (s *Store) Create(ctx context.Context, instance domain.ServiceInstance) error {
	m := fromDomain(instance)
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxSeq int64
		if err := tx.Model(&instanceModel{}).Select("COALESCE(MAX(seq), 0)").Scan(&maxSeq).Error; err != nil {
			return err
		}
		m.Seq = maxSeq + 1
		if err := tx.Omit(clause.Associations).Create(&m).Error; err != nil {
			return fmt.Errorf("create instance %s: %w", m.ID, err)
		}
		return insertDependencies(tx, m.Dependencies)
	})
}

func (s *Store) Update(ctx context.Context, instance domain.ServiceInstance) error {
	m := fromDomain(instance)
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var prev instanceModel
		if err := tx.Select("id", "seq").Where("id = ?", m.ID).First(&prev).Error; err != nil {
			return convertNotFoundError(err, "update", m.ID)
		}
		m.Seq = prev.Seq
		if err := tx.Omit(clause.Associations).Save(&m).Error; err != nil {
			return err
		}
		if err := tx.Where("instance_id = ?", m.ID).Delete(&dependencyModel{}).Error; err != nil {
			return err
		}
		return insertDependencies(tx, m.Dependencies)
	})
}

func insertDependencies(tx *gorm.DB, deps []dependencyModel) error {
	if len(deps) == 0 {
		return nil
	}
	return tx.Create(&deps).Error
}

func (s *Store) preloaded(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Preload("Dependencies", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}

func (s *Store) Get(ctx context.Context, id string) (domain.ServiceInstance, error) {
	var m instanceModel
	if err := s.preloaded(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return domain.ServiceInstance{}, convertNotFoundError(err, "get", id)
	}
	return m.toDomain(), nil
}

func (s *Store) FindByAddress(ctx context.Context, name, host string, port int) ([]domain.ServiceInstance, error) {
	return s.find(s.preloaded(ctx).Where("name = ? AND host = ? AND port = ?", name, host, port))
}

func (s *Store) List(ctx context.Context, activeOnly bool) ([]domain.ServiceInstance, error) {
	q := s.preloaded(ctx)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	return s.find(q)
}

func (s *Store) ListStale(ctx context.Context, cutoff time.Time) ([]domain.ServiceInstance, error) {
	return s.find(s.preloaded(ctx).Where("is_active = ? AND lease_expiry_at < ?", true, cutoff.UTC()))
}

func (s *Store) find(q *gorm.DB) ([]domain.ServiceInstance, error) {
	var models []instanceModel
	if err := q.Order("seq").Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]domain.ServiceInstance, 0, len(models))
	for _, m := range models {
		out = append(out, m.toDomain())
	}
	return out, nil
}

// RenewLeases applies the batch in one transaction: either every renewal lands or none does.
func (s *Store) RenewLeases(ctx context.Context, renewals []domain.LeaseRenewal) ([]string, error) {
	renewed := make([]string, 0, len(renewals))
	if len(renewals) == 0 {
		return renewed, nil
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, rn := range renewals {
			res := tx.Model(&instanceModel{}).
				Where("id = ? AND is_active = ?", rn.InstanceID, true).
				Updates(map[string]any{
					"status":          string(domain.HealthStatusHealthy),
					"last_heartbeat":  rn.At.UTC(),
					"lease_expiry_at": rn.ExpiresAt.UTC(),
					"updated_at":      rn.At.UTC(),
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected > 0 {
				renewed = append(renewed, rn.InstanceID)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("renew leases: %w", err)
	}
	return renewed, nil
}

func (s *Store) Deactivate(ctx context.Context, id string, at time.Time) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m instanceModel
		if err := tx.Select("id").Where("id = ?", id).First(&m).Error; err != nil {
			return convertNotFoundError(err, "deactivate", id)
		}
		if err := tx.Model(&instanceModel{}).Where("id = ?", id).Updates(map[string]any{
			"is_active":  false,
			"updated_at": at.UTC(),
		}).Error; err != nil {
			return err
		}
		return tx.Where("instance_id = ?", id).Delete(&dependencyModel{}).Error
	})
}

func (s *Store) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("instance_id = ?", id).Delete(&dependencyModel{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&instanceModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("delete %s: %w", id, domain.ErrInstanceNotFound)
		}
		return nil
	})
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
