package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asteroid-belt/zelenko/internal/clock"
	"github.com/asteroid-belt/zelenko/internal/kv"
)

// gatedStore blocks every Save until release is closed.
type gatedStore struct {
	*kv.MemoryStore
	release chan struct{}
}

func (g *gatedStore) Save(ctx context.Context, key string, data []byte) error {
	<-g.release
	return g.MemoryStore.Save(ctx, key, data)
}

func TestPersister_FlushWritesQueuedSnapshots(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemoryStore()
	p := NewPersister(mem)
	defer func() { _ = p.Close(ctx) }()

	p.Enqueue("a", []byte(`1`))
	p.Enqueue("b", []byte(`2`))
	require.NoError(t, p.Flush(ctx))

	got, err := mem.Load(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, `1`, string(got))

	got, err = mem.Load(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, `2`, string(got))
}

func TestPersister_CoalescesPendingWrites(t *testing.T) {
	ctx := context.Background()
	gate := &gatedStore{MemoryStore: kv.NewMemoryStore(), release: make(chan struct{})}
	p := NewPersister(gate)

	// The first write occupies the writer; the rest pile up behind it.
	p.Enqueue("k", []byte(`1`))
	time.Sleep(20 * time.Millisecond)
	for i := 2; i <= 9; i++ {
		p.Enqueue("k", []byte{byte('0' + i)})
	}

	close(gate.release)
	require.NoError(t, p.Close(ctx))

	got, err := gate.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `9`, string(got), "newest snapshot wins")
	assert.LessOrEqual(t, gate.Saves(), 2)
}

func TestPersister_FlushHonorsContext(t *testing.T) {
	gate := &gatedStore{MemoryStore: kv.NewMemoryStore(), release: make(chan struct{})}
	p := NewPersister(gate)

	p.Enqueue("k", []byte(`1`))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, p.Flush(ctx), context.DeadlineExceeded)

	close(gate.release)
	require.NoError(t, p.Close(context.Background()))
}

func TestPersister_ReportsErrors(t *testing.T) {
	boom := errors.New("disk full")

	var mu sync.Mutex
	var keys []string
	p := NewPersister(failingStore{err: boom}, WithErrorHandler(func(key string, err error) {
		mu.Lock()
		defer mu.Unlock()
		assert.ErrorIs(t, err, boom)
		keys = append(keys, key)
	}))

	p.Enqueue("k", []byte(`1`))
	require.NoError(t, p.Flush(context.Background()))
	require.NoError(t, p.Close(context.Background()))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"k"}, keys)
}

func TestPersister_EnqueueAfterClose(t *testing.T) {
	var got error
	p := NewPersister(kv.NewMemoryStore(), WithErrorHandler(func(_ string, err error) { got = err }))
	require.NoError(t, p.Close(context.Background()))
	require.NoError(t, p.Close(context.Background()), "close is idempotent")

	p.Enqueue("k", []byte(`1`))
	assert.ErrorIs(t, got, ErrPersisterClosed)
}

func TestPersistPlants_RoundTrip(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemoryStore()
	p := NewPersister(mem)

	r := NewRegistry(InitialPlantsState(), clock.Fixed{T: time.Date(2026, 3, 20, 8, 0, 0, 0, time.UTC)})
	PersistPlants(r, p)

	fikus := r.AddPlant("Fikus", 4, "")
	r.AddPlant("Kaktus", 14, "")
	r.WaterPlant(fikus.ID)
	require.NoError(t, p.Close(ctx))

	loaded, err := LoadPlants(ctx, mem)
	require.NoError(t, err)
	assert.Equal(t, r.State(), loaded)
}

func TestPersistOnboarding_RoundTrip(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemoryStore()
	p := NewPersister(mem)

	o := NewOnboardingStore(UserState{})
	PersistOnboarding(o, p)
	o.ToggleHasOnboarded()
	require.NoError(t, p.Close(ctx))

	loaded, err := LoadUser(ctx, mem)
	require.NoError(t, err)
	assert.True(t, loaded.HasFinishedOnboarding)
}

func TestPersistPlants_ConcurrentAddsKeepNewestSnapshot(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemoryStore()
	p := NewPersister(mem)

	r := NewRegistry(InitialPlantsState(), clock.Fixed{T: time.Date(2026, 3, 20, 8, 0, 0, 0, time.UTC)})

	// Hold the first notification until the second add has started.
	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	r.Subscribe(func(PlantsState) {
		first := false
		once.Do(func() { first = true })
		if first {
			close(started)
			<-release
		}
	})
	PersistPlants(r, p)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		r.AddPlant("a", 3, "")
	}()
	<-started
	go func() {
		defer wg.Done()
		r.AddPlant("b", 5, "")
	}()
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	require.NoError(t, p.Close(ctx))

	loaded, err := LoadPlants(ctx, mem)
	require.NoError(t, err)
	assert.Equal(t, 3, loaded.NextID)
	assert.Len(t, loaded.Plants, 2)
	assert.Equal(t, r.State(), loaded)
}
