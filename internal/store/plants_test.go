package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asteroid-belt/zelenko/internal/clock"
	"github.com/asteroid-belt/zelenko/internal/models"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestAddPlant_PrependsWithNextID(t *testing.T) {
	s := InitialPlantsState()

	s, first := AddPlant(s, "Fikus", 7, "")
	s, second := AddPlant(s, "Monstera", 5, "/images/monstera.jpg")

	assert.Equal(t, "1", first.ID)
	assert.Equal(t, "2", second.ID)
	assert.Equal(t, 3, s.NextID)
	require.Len(t, s.Plants, 2)
	assert.Equal(t, "Monstera", s.Plants[0].Name, "newest plant is first")
	assert.Equal(t, "Fikus", s.Plants[1].Name)
	assert.Nil(t, s.Plants[0].LastWateredAtTimestamp)
	assert.Equal(t, "/images/monstera.jpg", s.Plants[0].ImageURI)
}

func TestAddPlant_DoesNotModifyInput(t *testing.T) {
	before, _ := AddPlant(InitialPlantsState(), "Fikus", 7, "")
	after, _ := AddPlant(before, "Monstera", 5, "")

	assert.Len(t, before.Plants, 1)
	assert.Equal(t, 2, before.NextID)
	assert.Len(t, after.Plants, 2)
}

func TestRemovePlant(t *testing.T) {
	s := InitialPlantsState()
	s, a := AddPlant(s, "A", 1, "")
	s, b := AddPlant(s, "B", 2, "")

	next, ok := RemovePlant(s, a.ID)
	require.True(t, ok)
	require.Len(t, next.Plants, 1)
	assert.Equal(t, b.ID, next.Plants[0].ID)
	assert.Equal(t, s.NextID, next.NextID, "ids are never reused")
	assert.Len(t, s.Plants, 2, "input untouched")

	unchanged, ok := RemovePlant(next, "404")
	assert.False(t, ok)
	assert.Equal(t, next, unchanged)
}

func TestWaterPlant(t *testing.T) {
	at := time.Date(2026, time.March, 20, 8, 0, 0, 0, time.UTC)
	s, p := AddPlant(InitialPlantsState(), "Fikus", 3, "")

	next, ok := WaterPlant(s, p.ID, at)
	require.True(t, ok)
	require.NotNil(t, next.Plants[0].LastWateredAtTimestamp)
	assert.Equal(t, at.UnixMilli(), *next.Plants[0].LastWateredAtTimestamp)
	assert.Nil(t, s.Plants[0].LastWateredAtTimestamp, "input untouched")

	unchanged, ok := WaterPlant(next, "404", at)
	assert.False(t, ok)
	assert.Equal(t, next, unchanged)
}

func TestUpdatePlant_PartialSemantics(t *testing.T) {
	s, p := AddPlant(InitialPlantsState(), "Fikus", 3, "/img/fikus.jpg")

	t.Run("omitted fields are preserved", func(t *testing.T) {
		next, ok := UpdatePlant(s, p.ID, models.PlantUpdate{Name: strPtr("Fikus Benjamin")})
		require.True(t, ok)
		got := next.Plants[0]
		assert.Equal(t, "Fikus Benjamin", got.Name)
		assert.Equal(t, 3, got.WateringFrequencyDays)
		assert.Equal(t, "/img/fikus.jpg", got.ImageURI)
	})

	t.Run("interval overwritten", func(t *testing.T) {
		next, _ := UpdatePlant(s, p.ID, models.PlantUpdate{WateringFrequencyDays: intPtr(10)})
		assert.Equal(t, 10, next.Plants[0].WateringFrequencyDays)
		assert.Equal(t, "Fikus", next.Plants[0].Name)
	})

	t.Run("image replaced", func(t *testing.T) {
		next, _ := UpdatePlant(s, p.ID, models.PlantUpdate{Image: models.SetImage("/img/new.jpg")})
		assert.Equal(t, "/img/new.jpg", next.Plants[0].ImageURI)
	})

	t.Run("image cleared", func(t *testing.T) {
		next, _ := UpdatePlant(s, p.ID, models.PlantUpdate{Image: models.ClearImage()})
		assert.False(t, next.Plants[0].HasImage())
		assert.Equal(t, "/img/fikus.jpg", s.Plants[0].ImageURI, "input untouched")
	})

	t.Run("unknown id", func(t *testing.T) {
		next, ok := UpdatePlant(s, "404", models.PlantUpdate{Name: strPtr("x"), Image: models.ClearImage()})
		assert.False(t, ok)
		assert.Equal(t, s, next)
	})
}

func TestRegistry_AddPlantIssuesUniqueIncreasingIDs(t *testing.T) {
	r := NewRegistry(InitialPlantsState(), clock.System{})
	seen := map[string]bool{}
	lastNext := r.State().NextID

	for i := 0; i < 25; i++ {
		before := r.Len()
		p := r.AddPlant("Biljka", 3, "")

		assert.Equal(t, before+1, r.Len())
		assert.Equal(t, p.ID, r.Plants()[0].ID, "new plant at the head")
		assert.False(t, seen[p.ID], "id %s reused", p.ID)
		seen[p.ID] = true

		next := r.State().NextID
		assert.Greater(t, next, lastNext)
		lastNext = next
	}
}

func TestRegistry_WaterPlantUsesClock(t *testing.T) {
	at := time.Date(2026, time.March, 20, 8, 0, 0, 0, time.UTC)
	r := NewRegistry(InitialPlantsState(), clock.Fixed{T: at})
	p := r.AddPlant("Fikus", 3, "")

	r.WaterPlant(p.ID)

	got, ok := r.Plant(p.ID)
	require.True(t, ok)
	require.NotNil(t, got.LastWateredAtTimestamp)
	assert.Equal(t, at.UnixMilli(), *got.LastWateredAtTimestamp)
}

func TestRegistry_UnknownIDIsNoOp(t *testing.T) {
	r := NewRegistry(InitialPlantsState(), clock.System{})
	r.AddPlant("Fikus", 3, "")
	before := r.State()

	var notified int
	r.Subscribe(func(PlantsState) { notified++ })

	r.RemovePlant("404")
	r.WaterPlant("404")
	r.UpdatePlant("404", models.PlantUpdate{Name: strPtr("x")})

	assert.Equal(t, before, r.State())
	assert.Zero(t, notified, "no-op mutations do not notify")
}

func TestRegistry_NotifiesObserversWithSnapshot(t *testing.T) {
	r := NewRegistry(InitialPlantsState(), clock.System{})

	var got []PlantsState
	r.Subscribe(func(s PlantsState) { got = append(got, s) })

	p := r.AddPlant("Fikus", 3, "")
	r.UpdatePlant(p.ID, models.PlantUpdate{Name: strPtr("Fikus 2")})
	r.RemovePlant(p.ID)

	require.Len(t, got, 3)
	assert.Equal(t, "Fikus", got[0].Plants[0].Name, "earlier snapshots are not mutated")
	assert.Equal(t, "Fikus 2", got[1].Plants[0].Name)
	assert.Empty(t, got[2].Plants)
	assert.Equal(t, 2, got[2].NextID)
}

func TestRegistry_ReturnsCopies(t *testing.T) {
	r := NewRegistry(InitialPlantsState(), clock.System{})
	p := r.AddPlant("Fikus", 3, "")

	plants := r.Plants()
	plants[0].Name = "changed"

	got, _ := r.Plant(p.ID)
	assert.Equal(t, "Fikus", got.Name)
}

func TestNewRegistry_InvalidInitialState(t *testing.T) {
	r := NewRegistry(PlantsState{}, nil)
	assert.Equal(t, 1, r.State().NextID)
	assert.Equal(t, "1", r.AddPlant("Fikus", 3, "").ID)
}
