package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Paths contains commonly used file paths.
type Paths struct {
	Database  string // SQLite database for the db backend
	Snapshots string // JSON snapshot directory for the file backend
	Images    string // Copied plant photos
	Log       string // Log file
}

// GetPaths returns all commonly used paths based on config.
func GetPaths(cfg *Config) Paths {
	return Paths{
		Database:  filepath.Join(cfg.BaseDir, "zelenko.db"),
		Snapshots: filepath.Join(cfg.BaseDir, "state"),
		Images:    filepath.Join(cfg.BaseDir, "plant-images"),
		Log:       filepath.Join(cfg.BaseDir, "zelenko.log"),
	}
}

// DefaultBaseDir returns the default base directory ($XDG_DATA_HOME/zelenko).
func DefaultBaseDir() string {
	return filepath.Join(xdg.DataHome, "zelenko")
}
