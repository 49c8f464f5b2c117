// Package store holds the two persisted state containers: the plant registry
// and the onboarding flag. State transitions are pure functions; persistence
// is an observer subscribed to each container.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/asteroid-belt/zelenko/internal/kv"
)

// snapshot is the stored envelope: the full state plus the schema version
// it was written with.
type snapshot struct {
	State   any `json:"state"`
	Version int `json:"version"`
}

// EncodeSnapshot serializes state inside a versioned envelope.
func EncodeSnapshot(state any, version int) ([]byte, error) {
	data, err := json.Marshal(snapshot{State: state, Version: version})
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// decodeSnapshot splits stored bytes into the raw state object and its version.
// A document without a "state" member is the pre-envelope layout (version 0)
// where the document itself is the state. ok is false for anything that is
// not a JSON object.
func decodeSnapshot(data []byte) (state map[string]any, version int, ok bool) {
	doc, ok := decodeObject(data)
	if !ok {
		return nil, 0, false
	}

	rawState, hasState := doc["state"]
	if !hasState {
		return doc, 0, true
	}

	state, ok = rawState.(map[string]any)
	if !ok {
		return nil, 0, false
	}

	if n, isNum := doc["version"].(json.Number); isNum {
		if v, err := n.Int64(); err == nil {
			version = int(v)
		}
	}
	return state, version, true
}

func decodeObject(data []byte) (map[string]any, bool) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, false
	}
	obj, ok := v.(map[string]any)
	return obj, ok
}

// loadRaw fetches a snapshot. found is false when the key was never written.
func loadRaw(ctx context.Context, store kv.Store, key string) (data []byte, found bool, err error) {
	data, err = store.Load(ctx, key)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("load %s: %w", key, err)
	}
	return data, true, nil
}

// migration upgrades a raw state object written with one schema version
// to the next version.
type migration func(map[string]any) map[string]any

// runMigrations applies steps[from], steps[from+1], ... up to the current version.
// Versions newer than the code are passed through unchanged.
func runMigrations(state map[string]any, from int, steps []migration) map[string]any {
	if from < 0 {
		from = 0
	}
	for v := from; v < len(steps); v++ {
		state = steps[v](state)
	}
	return state
}
