package store

import (
	"sync"

	"github.com/asteroid-belt/zelenko/internal/clock"
	"github.com/asteroid-belt/zelenko/internal/models"
)

// Registry owns the plant list and every mutation on it.
// Observers run after each transition that found its plant, in the
// caller's goroutine and in the order the transitions happened. Observers
// may read the registry but must not mutate it.
type Registry struct {
	// pub serializes a transition with its notification.
	pub       sync.Mutex
	mu        sync.RWMutex
	state     PlantsState
	clock     clock.Clock
	observers observers[PlantsState]
}

// NewRegistry creates a registry holding initial.
func NewRegistry(initial PlantsState, clk clock.Clock) *Registry {
	if clk == nil {
		clk = clock.System{}
	}
	if initial.NextID <= 0 {
		initial = InitialPlantsState()
	}
	return &Registry{state: initial.Clone(), clock: clk}
}

// Subscribe registers fn to receive every new state.
func (r *Registry) Subscribe(fn func(PlantsState)) {
	r.observers.add(fn)
}

// State returns a copy of the current state.
func (r *Registry) State() PlantsState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state.Clone()
}

// Plants returns the plants, newest first.
func (r *Registry) Plants() []models.Plant {
	return r.State().Plants
}

// Plant returns the plant with id.
func (r *Registry) Plant(id string) (models.Plant, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.state.Find(id)
	if !ok {
		return models.Plant{}, false
	}
	return clonePlant(p), true
}

// Len returns the number of plants.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.state.Plants)
}

// AddPlant creates a plant at the head of the list and returns it.
// imageURI may be empty for the default image.
func (r *Registry) AddPlant(name string, days int, imageURI string) models.Plant {
	var plant models.Plant
	r.apply(func(s PlantsState) (PlantsState, bool) {
		var next PlantsState
		next, plant = AddPlant(s, name, days, imageURI)
		return next, true
	})
	return plant
}

// RemovePlant deletes the plant with id, if present.
func (r *Registry) RemovePlant(id string) {
	r.apply(func(s PlantsState) (PlantsState, bool) {
		return RemovePlant(s, id)
	})
}

// WaterPlant records a watering now for the plant with id, if present.
func (r *Registry) WaterPlant(id string) {
	now := r.clock.Now()
	r.apply(func(s PlantsState) (PlantsState, bool) {
		return WaterPlant(s, id, now)
	})
}

// UpdatePlant applies a partial update to the plant with id, if present.
func (r *Registry) UpdatePlant(id string, u models.PlantUpdate) {
	r.apply(func(s PlantsState) (PlantsState, bool) {
		return UpdatePlant(s, id, u)
	})
}

func (r *Registry) apply(transition func(PlantsState) (PlantsState, bool)) {
	r.pub.Lock()
	defer r.pub.Unlock()

	r.mu.Lock()
	next, changed := transition(r.state)
	if !changed {
		r.mu.Unlock()
		return
	}
	r.state = next
	snapshot := next.Clone()
	r.mu.Unlock()

	r.observers.notify(snapshot)
}
