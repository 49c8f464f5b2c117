package db

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/asteroid-belt/zelenko/internal/kv"
	"github.com/asteroid-belt/zelenko/internal/models"
)

// testDB creates an in-memory test database.
func testDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(DefaultConfig(MemoryPath))
	if err != nil {
		t.Fatalf("failed to create test db: %v", err)
	}

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("Failed to close test database: %v", err)
		}
	})

	return db
}

func TestNew(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "zelenko.db")

	db, err := New(DefaultConfig(dbPath))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			t.Logf("Failed to close database: %v", err)
		}
	}()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}

	if db.Path() != dbPath {
		t.Errorf("Path() = %v, want %v", db.Path(), dbPath)
	}
}

func TestNew_CreatesDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dirs", "zelenko.db")

	db, err := New(DefaultConfig(dbPath))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer func() { _ = db.Close() }()

	if _, err := os.Stat(filepath.Dir(dbPath)); os.IsNotExist(err) {
		t.Error("nested directories were not created")
	}
}

func TestNew_SeedsSchemaVersion(t *testing.T) {
	db := testDB(t)

	got, err := db.GetMeta(models.AppMetaSchemaVersion)
	if err != nil {
		t.Fatalf("GetMeta() error = %v", err)
	}
	if got != SchemaVersion {
		t.Errorf("schema version = %q, want %q", got, SchemaVersion)
	}
}

func TestKV_LoadMissing(t *testing.T) {
	db := testDB(t)

	_, err := db.Load(context.Background(), "zelenko-plants-store")
	if !errors.Is(err, kv.ErrNotFound) {
		t.Errorf("Load() error = %v, want kv.ErrNotFound", err)
	}
}

func TestKV_SaveAndOverwrite(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	if err := db.Save(ctx, "k", []byte(`{"state":{},"version":1}`)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := db.Save(ctx, "k", []byte(`{"state":{"nextId":2},"version":1}`)); err != nil {
		t.Fatalf("Save() overwrite error = %v", err)
	}

	got, err := db.Load(ctx, "k")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if string(got) != `{"state":{"nextId":2},"version":1}` {
		t.Errorf("Load() = %s", got)
	}

	var count int64
	db.Model(&models.KVEntry{}).Count(&count)
	if count != 1 {
		t.Errorf("entries = %d, want 1", count)
	}
}

func TestKV_PersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "zelenko.db")
	ctx := context.Background()

	first, err := New(DefaultConfig(dbPath))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := first.Save(ctx, "k", []byte(`42`)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	_ = first.Close()

	second, err := New(DefaultConfig(dbPath))
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer func() { _ = second.Close() }()

	got, err := second.Load(ctx, "k")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if string(got) != `42` {
		t.Errorf("Load() = %s, want 42", got)
	}
}

func TestKV_CanceledContext(t *testing.T) {
	db := testDB(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := db.Save(ctx, "k", []byte(`1`)); err == nil {
		t.Error("Save() with canceled context should fail")
	}
}

func TestGetOrCreateTrackingID(t *testing.T) {
	db := testDB(t)

	first := db.GetOrCreateTrackingID()
	if len(first) != 36 {
		t.Fatalf("tracking id %q is not a UUID", first)
	}

	if second := db.GetOrCreateTrackingID(); second != first {
		t.Errorf("tracking id changed: %q -> %q", first, second)
	}
}

func TestGetStats(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	stats, err := db.GetStats()
	if err != nil {
		t.Fatalf("GetStats() error = %v", err)
	}
	if stats.Entries != 0 || stats.ValueBytes != 0 {
		t.Errorf("empty stats = %+v", stats)
	}

	_ = db.Save(ctx, "a", []byte(`1234`))
	_ = db.Save(ctx, "b", []byte(`56`))

	stats, err = db.GetStats()
	if err != nil {
		t.Fatalf("GetStats() error = %v", err)
	}
	if stats.Entries != 2 {
		t.Errorf("Entries = %d, want 2", stats.Entries)
	}
	if stats.ValueBytes != 6 {
		t.Errorf("ValueBytes = %d, want 6", stats.ValueBytes)
	}
	if stats.LastUpdated.IsZero() {
		t.Error("LastUpdated not set")
	}
}
