package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/asteroid-belt/zelenko/internal/kv"
)

const (
	// UserKey is the store key of the onboarding snapshot.
	UserKey = "zelenko-user-store"
	// UserVersion is the schema version written with new snapshots.
	UserVersion = 1
)

// UserState is the persisted unit of the onboarding flag store.
type UserState struct {
	HasFinishedOnboarding bool `json:"hasFinishedOnboarding"`
}

// ToggleOnboarding flips the onboarding flag.
func ToggleOnboarding(s UserState) UserState {
	return UserState{HasFinishedOnboarding: !s.HasFinishedOnboarding}
}

// userMigrations[v] upgrades a version v state to v+1. The bare
// pre-envelope document already has the current shape.
var userMigrations = []migration{
	func(state map[string]any) map[string]any { return state },
}

// LoadUser rehydrates the onboarding state. Missing or malformed data yields
// the zero state; a non-nil error reports a failing store.
func LoadUser(ctx context.Context, store kv.Store) (UserState, error) {
	data, found, err := loadRaw(ctx, store, UserKey)
	if err != nil || !found {
		return UserState{}, err
	}
	return DecodeUser(data), nil
}

// DecodeUser parses stored snapshot bytes into a valid state.
func DecodeUser(data []byte) UserState {
	raw, version, ok := decodeSnapshot(data)
	if !ok {
		return UserState{}
	}
	return MigrateUser(raw, version)
}

// MigrateUser upgrades and validates a raw onboarding state. The flag is
// coerced by truthiness instead of being rejected.
func MigrateUser(raw map[string]any, storedVersion int) UserState {
	if raw == nil {
		return UserState{}
	}
	raw = runMigrations(raw, storedVersion, userMigrations)
	return UserState{HasFinishedOnboarding: truthy(raw["hasFinishedOnboarding"])}
}

// truthy collapses a decoded JSON value to a boolean: false, 0, "" and null
// are false, everything else is true.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case json.Number:
		f, err := t.Float64()
		return err == nil && f != 0
	case float64:
		return t != 0
	default:
		return true
	}
}

// OnboardingStore holds the first-run flag.
type OnboardingStore struct {
	pub       sync.Mutex
	mu        sync.RWMutex
	state     UserState
	observers observers[UserState]
}

// NewOnboardingStore creates a store holding initial.
func NewOnboardingStore(initial UserState) *OnboardingStore {
	return &OnboardingStore{state: initial}
}

// Subscribe registers fn to receive every new state.
func (o *OnboardingStore) Subscribe(fn func(UserState)) {
	o.observers.add(fn)
}

// State returns the current state.
func (o *OnboardingStore) State() UserState {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.state
}

// HasFinishedOnboarding reports whether the first-run screen was dismissed.
func (o *OnboardingStore) HasFinishedOnboarding() bool {
	return o.State().HasFinishedOnboarding
}

// ToggleHasOnboarded flips the flag and returns the new value.
func (o *OnboardingStore) ToggleHasOnboarded() bool {
	o.pub.Lock()
	defer o.pub.Unlock()

	o.mu.Lock()
	o.state = ToggleOnboarding(o.state)
	next := o.state
	o.mu.Unlock()

	o.observers.notify(next)
	return next.HasFinishedOnboarding
}
