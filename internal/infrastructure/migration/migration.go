package migration

import (
	"fmt"
	"path/filepath"

	"gorm.io/gorm"

	"workdesk/internal/shared/constants"
	"workdesk/internal/shared/logger"
)

// Manager handles database migrations using the configured strategy
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager creates a migration manager with the strategy appropriate
// for the given environment.
func NewManager(environment string) (*Manager, error) {
	log := logger.NewLogger().With("component", "migration.manager")

	var strategy Strategy
	switch environment {
	case constants.EnvDevelopment:
		strategy = NewGormAutoMigrateStrategy()
	case constants.EnvTest, constants.EnvProduction:
		scriptsPath, err := filepath.Abs("./internal/infrastructure/migration/scripts")
		if err != nil {
			return nil, fmt.Errorf("failed to resolve scripts path: %w", err)
		}
		strategy = NewGooseStrategy(scriptsPath)
	default:
		strategy = NewGormAutoMigrateStrategy()
	}

	log.Infow("migration manager initialized",
		"environment", environment,
		"strategy", strategy.GetName())

	return &Manager{
		strategy: strategy,
		logger:   log,
	}, nil
}

// NewManagerWithStrategy creates a migration manager with an explicit strategy
func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().With("component", "migration.manager"),
	}
}

// Migrate runs the migration using the configured strategy
func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Infow("running migration", "strategy", m.strategy.GetName())
	return m.strategy.Migrate(db, AutoMigrateModels()...)
}

// MigrateWithGormAutoMigrate runs GORM auto migration regardless of environment.
// Integration tests use this against sqlite.
func MigrateWithGormAutoMigrate(db *gorm.DB) error {
	strategy := NewGormAutoMigrateStrategy()
	return strategy.Migrate(db, AutoMigrateModels()...)
}
