package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/cotracker/cotracker/internal/shared/config"
	"github.com/cotracker/cotracker/internal/shared/logger"
)

// Manager handles database migrations with different strategies
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks versioned goose scripts for MySQL and gorm AutoMigrate
// for SQLite.
func NewManager(driver string) *Manager {
	var strategy Strategy
	switch driver {
	case config.DriverMySQL:
		strategy = NewGooseStrategy("mysql")
	default:
		strategy = NewGormAutoMigrateStrategy()
	}
	return NewManagerWithStrategy(strategy)
}

func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.WithComponent("migration.manager"),
	}
}

// Migrate brings the schema up to date.
func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db); err != nil {
		m.logger.Errorw("migration failed",
			"strategy", m.strategy.GetName(),
			"error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

func (m *Manager) Down(db *gorm.DB, steps int) error {
	vs, err := m.versioned()
	if err != nil {
		return err
	}
	return vs.MigrateDown(db, steps)
}

func (m *Manager) Version(db *gorm.DB) (int64, error) {
	vs, err := m.versioned()
	if err != nil {
		return 0, err
	}
	return vs.GetVersion(db)
}

func (m *Manager) Status(db *gorm.DB) error {
	vs, err := m.versioned()
	if err != nil {
		return err
	}
	return vs.Status(db)
}

func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}

func (m *Manager) versioned() (VersionedStrategy, error) {
	vs, ok := m.strategy.(VersionedStrategy)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotVersioned, m.strategy.GetName())
	}
	return vs, nil
}
