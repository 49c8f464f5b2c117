package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/asteroid-belt/zelenko/internal/kv"
	"github.com/asteroid-belt/zelenko/internal/models"
)

var _ kv.Store = (*DB)(nil)

// Load returns the snapshot stored under key, or kv.ErrNotFound.
func (db *DB) Load(ctx context.Context, key string) ([]byte, error) {
	var entry models.KVEntry
	err := db.WithContext(ctx).First(&entry, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, kv.ErrNotFound
		}
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	return []byte(entry.Value), nil
}

// Save replaces the snapshot under key.
func (db *DB) Save(ctx context.Context, key string, data []byte) error {
	entry := models.KVEntry{Key: key, Value: string(data)}
	err := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
