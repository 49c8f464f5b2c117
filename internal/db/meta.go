package db

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/asteroid-belt/zelenko/internal/models"
)

// GetMeta retrieves a metadata value. Missing keys yield "".
func (db *DB) GetMeta(key string) (string, error) {
	var meta models.AppMeta
	err := db.First(&meta, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return meta.Value, nil
}

// SetMeta sets a metadata value.
func (db *DB) SetMeta(key, value string) error {
	meta := models.AppMeta{Key: key, Value: value}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&meta).Error
}

// GetOrCreateTrackingID returns the persistent tracking ID, creating one if it doesn't exist.
// On any error, it falls back to generating a per-session ID.
func (db *DB) GetOrCreateTrackingID() string {
	id, err := db.GetMeta(models.AppMetaTrackingID)
	if err != nil {
		return generateSessionID()
	}
	if id != "" {
		return id
	}

	id = generateSessionID()
	// Even if the save fails, the generated ID serves this session.
	_ = db.SetMeta(models.AppMetaTrackingID, id)
	return id
}

// generateSessionID creates a new UUID for session-based tracking.
func generateSessionID() string {
	return uuid.New().String()
}
