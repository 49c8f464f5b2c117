package store

import (
	"context"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/asteroid-belt/zelenko/internal/kv"
	"github.com/asteroid-belt/zelenko/internal/models"
)

const (
	// PlantsKey is the store key of the plant registry snapshot.
	PlantsKey = "zelenko-plants-store"
	// PlantsVersion is the schema version written with new snapshots.
	PlantsVersion = 1
)

// plantMigrations[v] upgrades a version v state to v+1.
var plantMigrations = []migration{
	migratePlantsV0,
}

// migratePlantsV0 upgrades the bare pre-envelope document. Those snapshots
// could carry numeric ids; ids are strings from version 1 on.
func migratePlantsV0(state map[string]any) map[string]any {
	plants, ok := state["plants"].([]any)
	if !ok {
		return state
	}
	for _, item := range plants {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if n, isNum := obj["id"].(json.Number); isNum {
			obj["id"] = n.String()
		}
	}
	return state
}

// LoadPlants rehydrates the registry state from store. Missing or malformed
// data yields the initial state. The error is non-nil only when the store
// itself failed; the returned state is still usable.
func LoadPlants(ctx context.Context, store kv.Store) (PlantsState, error) {
	data, found, err := loadRaw(ctx, store, PlantsKey)
	if err != nil {
		return InitialPlantsState(), err
	}
	if !found {
		return InitialPlantsState(), nil
	}
	return DecodePlants(data), nil
}

// DecodePlants parses stored snapshot bytes into a valid state.
func DecodePlants(data []byte) PlantsState {
	raw, version, ok := decodeSnapshot(data)
	if !ok {
		return InitialPlantsState()
	}
	return MigratePlants(raw, version)
}

// MigratePlants upgrades a raw state object written with storedVersion and
// validates it. It never fails: plants that are not objects are dropped, a
// missing or invalid nextId is recomputed from the plant ids, and missing or
// duplicate ids are reissued so every id stays unique.
func MigratePlants(raw map[string]any, storedVersion int) PlantsState {
	if raw == nil {
		return InitialPlantsState()
	}
	raw = runMigrations(raw, storedVersion, plantMigrations)

	items, _ := raw["plants"].([]any)
	plants := make([]models.Plant, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		plants = append(plants, plantFromObject(obj))
	}

	maxID := 0
	for _, p := range plants {
		if n := numericID(p.ID); n > maxID {
			maxID = n
		}
	}

	nextID, ok := positiveInt(raw["nextId"])
	if !ok || nextID <= maxID {
		nextID = maxID + 1
	}

	seen := make(map[string]bool, len(plants))
	for i := range plants {
		if plants[i].ID == "" || seen[plants[i].ID] {
			plants[i].ID = strconv.Itoa(nextID)
			nextID++
		}
		seen[plants[i].ID] = true
	}

	return PlantsState{NextID: nextID, Plants: plants}
}

func plantFromObject(obj map[string]any) models.Plant {
	var p models.Plant

	switch id := obj["id"].(type) {
	case string:
		p.ID = id
	case json.Number:
		p.ID = id.String()
	}

	if name, ok := obj["name"].(string); ok {
		p.Name = name
	}

	if n, ok := obj["wateringFrequencyDays"].(json.Number); ok {
		if f, err := n.Float64(); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			p.WateringFrequencyDays = int(f)
		}
	}

	if n, ok := obj["lastWateredAtTimestamp"].(json.Number); ok {
		if f, err := n.Float64(); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			ts := int64(f)
			p.LastWateredAtTimestamp = &ts
		}
	}

	if uri, ok := obj["imageUri"].(string); ok {
		p.ImageURI = uri
	}

	return p
}

// numericID returns the integer value of id, or 0 when it is not a number.
func numericID(id string) int {
	f, err := strconv.ParseFloat(strings.TrimSpace(id), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(math.Floor(f))
}

func positiveInt(v any) (int, bool) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	f, err := n.Float64()
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 || f > math.MaxInt32 {
		return 0, false
	}
	i := int(math.Ceil(f))
	return i, true
}
