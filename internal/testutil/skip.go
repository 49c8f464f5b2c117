// Package testutil provides testing utilities.
package testutil

import (
	"os"
	"testing"
	"time"
)

// SkipIntegrationTests skips the test if RUN_INTEGRATION_TESTS is not set.
// Use this for tests that touch the real user data directory.
//
// Run them with: RUN_INTEGRATION_TESTS=1 go test ./...
func SkipIntegrationTests(t *testing.T) {
	t.Helper()
	if os.Getenv("RUN_INTEGRATION_TESTS") == "" {
		t.Skip("Skipping integration test (set RUN_INTEGRATION_TESTS=1 to run)")
	}
}

// Millis returns t as a millisecond timestamp pointer, the shape
// plants store their last watering in.
func Millis(t time.Time) *int64 {
	ms := t.UnixMilli()
	return &ms
}

// Belgrade is a fixed +01:00 zone used where tests need a non-UTC local day.
var Belgrade = time.FixedZone("CET", 60*60)
