package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asteroid-belt/zelenko/internal/kv"
)

func TestOnboardingStore_Toggle(t *testing.T) {
	o := NewOnboardingStore(UserState{})
	assert.False(t, o.HasFinishedOnboarding())

	assert.True(t, o.ToggleHasOnboarded())
	assert.True(t, o.HasFinishedOnboarding())

	assert.False(t, o.ToggleHasOnboarded())
	assert.False(t, o.HasFinishedOnboarding(), "toggling twice restores the flag")
}

func TestOnboardingStore_NotifiesObservers(t *testing.T) {
	o := NewOnboardingStore(UserState{})

	var got []bool
	o.Subscribe(func(s UserState) { got = append(got, s.HasFinishedOnboarding) })

	o.ToggleHasOnboarded()
	o.ToggleHasOnboarded()

	assert.Equal(t, []bool{true, false}, got)
}

func TestDecodeUser(t *testing.T) {
	tests := []struct {
		name string
		data string
		want bool
	}{
		{"true", `{"state":{"hasFinishedOnboarding":true},"version":1}`, true},
		{"false", `{"state":{"hasFinishedOnboarding":false},"version":1}`, false},
		{"missing", `{"state":{},"version":1}`, false},
		{"number", `{"state":{"hasFinishedOnboarding":1},"version":1}`, true},
		{"zero", `{"state":{"hasFinishedOnboarding":0},"version":1}`, false},
		{"string", `{"state":{"hasFinishedOnboarding":"yes"},"version":1}`, true},
		{"empty string", `{"state":{"hasFinishedOnboarding":""},"version":1}`, false},
		{"null", `{"state":{"hasFinishedOnboarding":null},"version":1}`, false},
		{"object", `{"state":{"hasFinishedOnboarding":{}},"version":1}`, true},
		{"malformed", `{"state":`, false},
		{"not an object", `[true]`, false},
		{"state not an object", `{"state":true,"version":1}`, false},
		{"legacy bare document", `{"hasFinishedOnboarding":true}`, true},
		{"newer version", `{"state":{"hasFinishedOnboarding":true},"version":7}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeUser([]byte(tt.data)).HasFinishedOnboarding)
		})
	}
}

func TestLoadUser(t *testing.T) {
	ctx := context.Background()

	t.Run("first launch", func(t *testing.T) {
		got, err := LoadUser(ctx, kv.NewMemoryStore())
		require.NoError(t, err)
		assert.False(t, got.HasFinishedOnboarding)
	})

	t.Run("stored", func(t *testing.T) {
		mem := kv.NewMemoryStore()
		data, err := EncodeSnapshot(UserState{HasFinishedOnboarding: true}, UserVersion)
		require.NoError(t, err)
		require.NoError(t, mem.Save(ctx, UserKey, data))

		got, err := LoadUser(ctx, mem)
		require.NoError(t, err)
		assert.True(t, got.HasFinishedOnboarding)
	})

	t.Run("store failure", func(t *testing.T) {
		boom := errors.New("locked")
		got, err := LoadUser(ctx, failingStore{err: boom})
		assert.ErrorIs(t, err, boom)
		assert.False(t, got.HasFinishedOnboarding)
	})
}

func TestOnboardingStore_NotifiesInOrder(t *testing.T) {
	o := NewOnboardingStore(UserState{})

	var mu sync.Mutex
	var seen []bool
	o.Subscribe(func(s UserState) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, s.HasFinishedOnboarding)
	})

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			o.ToggleHasOnboarded()
		}()
	}
	wg.Wait()

	require.Len(t, seen, 10)
	for i, v := range seen {
		assert.Equal(t, i%2 == 0, v, "notification %d", i)
	}
	assert.False(t, o.HasFinishedOnboarding())
}
