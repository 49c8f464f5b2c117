// Package db provides a GORM-based database layer for Zelenko.
// It uses the pure-Go SQLite driver and serves as the default snapshot store.
package db

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/asteroid-belt/zelenko/internal/models"
)

// MemoryPath opens a database that lives only as long as the connection.
const MemoryPath = ":memory:"

// DB wraps the GORM database connection with Zelenko-specific operations.
type DB struct {
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

// New creates a new database connection and runs migrations.
func New(cfg Config) (*DB, error) {
	dsn := cfg.Path
	if cfg.Path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
		// DELETE journal mode: WAL has visibility issues with the pure-Go driver
		dsn = fmt.Sprintf("%s?_pragma=journal_mode(DELETE)&_pragma=busy_timeout(5000)", cfg.Path)
	}

	logLevel := logger.Silent
	if cfg.Debug {
		logLevel = logger.Info
	}

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
	// An in-memory database vanishes with its connection, so keep exactly one.
	if cfg.Path == MemoryPath {
		cfg.MaxIdleConn, cfg.MaxOpenConn = 1, 1
	} else {
		sqlDB.SetConnMaxLifetime(time.Hour)
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConn)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConn)

	wrapped := &DB{DB: db, path: cfg.Path}

	if err := wrapped.migrate(); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	if err := wrapped.seedMeta(); err != nil {
		return nil, fmt.Errorf("seed app meta: %w", err)
	}

	return wrapped, nil
}

// migrate runs GORM auto-migrations for all models.
func (db *DB) migrate() error {
	return db.AutoMigrate(
		&models.KVEntry{},
		&models.AppMeta{},
	)
}

// SchemaVersion is the database layout version recorded in app_meta.
const SchemaVersion = "1"

// seedMeta inserts default metadata if not present.
func (db *DB) seedMeta() error {
	meta := models.AppMeta{Key: models.AppMetaSchemaVersion, Value: SchemaVersion}
	return db.Where("key = ?", meta.Key).FirstOrCreate(&meta).Error
}

// Path returns the database file path.
func (db *DB) Path() string {
	return db.path
}

// Close closes the database connection.
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// GetStats returns aggregate statistics about the database.
func (db *DB) GetStats() (*models.StorageStats, error) {
	var stats models.StorageStats

	if err := db.Model(&models.KVEntry{}).Count(&stats.Entries).Error; err != nil {
		return nil, fmt.Errorf("count entries: %w", err)
	}

	if err := db.Model(&models.KVEntry{}).Select("COALESCE(SUM(LENGTH(value)), 0)").Scan(&stats.ValueBytes).Error; err != nil {
		return nil, fmt.Errorf("sum entry sizes: %w", err)
	}

	var latest models.KVEntry
	err := db.Order("updated_at DESC").Limit(1).Find(&latest).Error
	if err != nil {
		return nil, fmt.Errorf("latest entry: %w", err)
	}
	stats.LastUpdated = latest.UpdatedAt

	if db.path != MemoryPath {
		if info, err := os.Stat(db.path); err == nil {
			stats.FileBytes = info.Size()
		}
	}

	return &stats, nil
}
