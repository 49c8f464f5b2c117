package models

import "time"

// KVEntry is one persisted snapshot in the key-value table.
type KVEntry struct {
	Key       string    `gorm:"primaryKey;size:128" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (KVEntry) TableName() string {
	return "kv_entries"
}

// AppMeta stores installation metadata as key-value pairs.
type AppMeta struct {
	Key       string    `gorm:"primaryKey;size:100" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (AppMeta) TableName() string {
	return "app_meta"
}

// Common app meta keys.
const (
	AppMetaSchemaVersion = "schema_version"
	AppMetaTrackingID    = "tracking_id"
)

// StorageStats summarizes the database.
type StorageStats struct {
	Entries     int64     `json:"entries"`
	ValueBytes  int64     `json:"value_bytes"`
	FileBytes   int64     `json:"file_bytes"`
	LastUpdated time.Time `json:"last_updated"`
}
