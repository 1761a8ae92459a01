package gormstore

import (
	"time"

	"mycoordinator/domain"
)

type instanceModel struct {
	ID             string            `gorm:"primaryKey;size:64"`
	Seq            int64             `gorm:"not null;index"`
	Name           string            `gorm:"not null;size:255;index:idx_instance_address,priority:1"`
	Host           string            `gorm:"not null;size:255;index:idx_instance_address,priority:2"`
	Port           int               `gorm:"not null;index:idx_instance_address,priority:3"`
	HealthEndpoint string            `gorm:"size:1024"`
	Status         string            `gorm:"not null;size:16"`
	IsActive       bool              `gorm:"not null;index"`
	LeaseTTLMs     int64             `gorm:"not null"`
	LeaseExpiryAt  time.Time         `gorm:"not null;index"`
	LastHeartbeat  time.Time         `gorm:"not null"`
	RegisteredAt   time.Time         `gorm:"not null"`
	UpdatedAt      time.Time         `gorm:"not null;autoUpdateTime:false"`
	Metadata       map[string]any    `gorm:"serializer:json"`
	Dependencies   []dependencyModel `gorm:"foreignKey:InstanceID;constraint:OnDelete:CASCADE"`
}

func (instanceModel) TableName() string { return "service_instances" }

type dependencyModel struct {
	ID              uint   `gorm:"primaryKey"`
	InstanceID      string `gorm:"not null;size:64;index"`
	Position        int    `gorm:"not null"`
	Name            string `gorm:"not null;size:255;index"`
	Kind            string `gorm:"not null;size:8"`
	TimeoutMs       *int
	HealthCheckPath string `gorm:"size:1024"`
	Required        bool   `gorm:"not null"`
}

func (dependencyModel) TableName() string { return "service_dependencies" }

func allModels() []any {
	return []any{&instanceModel{}, &dependencyModel{}}
}

func fromDomain(s domain.ServiceInstance) instanceModel {
	m := instanceModel{
		ID:             s.ID,
		Name:           s.Name,
		Host:           s.Host,
		Port:           s.Port,
		HealthEndpoint: s.HealthEndpoint,
		Status:         string(s.Status),
		IsActive:       s.IsActive,
		LeaseTTLMs:     s.LeaseTTL.Milliseconds(),
		LeaseExpiryAt:  s.LeaseExpiryAt.UTC(),
		LastHeartbeat:  s.LastHeartbeat.UTC(),
		RegisteredAt:   s.RegisteredAt.UTC(),
		UpdatedAt:      s.UpdatedAt.UTC(),
		Metadata:       s.Metadata,
	}
	for i, d := range s.Dependencies {
		m.Dependencies = append(m.Dependencies, dependencyModel{
			InstanceID:      s.ID,
			Position:        i,
			Name:            d.Name,
			Kind:            string(d.Kind),
			TimeoutMs:       d.TimeoutMs,
			HealthCheckPath: d.HealthCheckPath,
			Required:        d.Required,
		})
	}
	return m
}

func (m instanceModel) toDomain() domain.ServiceInstance {
	s := domain.ServiceInstance{
		ID:             m.ID,
		Name:           m.Name,
		Host:           m.Host,
		Port:           m.Port,
		HealthEndpoint: m.HealthEndpoint,
		Status:         domain.HealthStatus(m.Status),
		IsActive:       m.IsActive,
		LeaseTTL:       time.Duration(m.LeaseTTLMs) * time.Millisecond,
		LeaseExpiryAt:  m.LeaseExpiryAt.UTC(),
		LastHeartbeat:  m.LastHeartbeat.UTC(),
		RegisteredAt:   m.RegisteredAt.UTC(),
		UpdatedAt:      m.UpdatedAt.UTC(),
		Metadata:       m.Metadata,
	}
	for _, d := range m.Dependencies {
		s.Dependencies = append(s.Dependencies, domain.DependencyRef{
			Name:            d.Name,
			Kind:            domain.DependencyKind(d.Kind),
			TimeoutMs:       d.TimeoutMs,
			HealthCheckPath: d.HealthCheckPath,
			Required:        d.Required,
		})
	}
	return s
}
