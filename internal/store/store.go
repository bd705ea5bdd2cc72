// Package store provides the on-device persistent store for JobFlow.
// It is GORM-based, uses the pure-Go SQLite driver, and owns default-data
// bootstrap, streak maintenance, and achievement evaluation.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ethantsaox/jobflow/internal/models"
)

// SchemaVersion is the current local schema version. Bootstrap reseeds only
// when the stored version marker is absent or older.
const SchemaVersion = "1"

// Store wraps the GORM database connection with JobFlow-specific operations.
type Store struct {
	*gorm.DB
	path string
}

// Config holds database configuration options.
type Config struct {
	Path        string
	Debug       bool
	MaxIdleConn int
	MaxOpenConn int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig(path string) Config {
	return Config{
		Path:        path,
		Debug:       false,
		MaxIdleConn: 1,
		MaxOpenConn: 1,
	}
}

// New opens the database, runs migrations, and bootstraps default data.
func New(cfg Config) (*Store, error) {
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	logLevel := logger.Silent
	if cfg.Debug {
		logLevel = logger.Info
	}

	// DELETE journal mode for simpler transaction handling
	// (WAL mode has visibility issues with the pure-Go SQLite driver)
	dsn := fmt.Sprintf("%s?_pragma=journal_mode(DELETE)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)", cfg.Path)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 logger.Default.LogMode(logLevel),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConn)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConn)
	sqlDB.SetConnMaxLifetime(time.Hour)

	wrapped := &Store{DB: db, path: cfg.Path}

	if err := wrapped.migrate(); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	if err := wrapped.Bootstrap(); err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}

	return wrapped, nil
}

// migrate runs GORM auto-migrations for all models.
func (s *Store) migrate() error {
	return s.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.JobApplication{},
		&models.Streak{},
		&models.Achievement{},
		&models.Meta{},
	)
}

// Bootstrap seeds the default user and achievement catalog on first run.
// It is idempotent: the stored schema-version marker guards reseeding.
func (s *Store) Bootstrap() error {
	version, err := s.GetMeta(models.MetaSchemaVersion)
	if err != nil {
		return err
	}
	if version == SchemaVersion {
		return nil
	}

	return s.Transaction(func(tx *Store) error {
		if err := tx.seedUser(); err != nil {
			return fmt.Errorf("seed user: %w", err)
		}
		if err := tx.seedAchievements(); err != nil {
			return fmt.Errorf("seed achievements: %w", err)
		}
		return tx.SetMeta(models.MetaSchemaVersion, SchemaVersion)
	})
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *Store) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Transaction executes a function within a database transaction.
// The callback receives a *Store wrapper that uses the transaction.
func (s *Store) Transaction(fc func(tx *Store) error) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		wrappedTx := &Store{DB: tx, path: s.path}
		return fc(wrappedTx)
	})
}

// dateOf truncates t to its device-local calendar date.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Local().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}
