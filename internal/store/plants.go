package store

import (
	"strconv"
	"time"

	"github.com/asteroid-belt/zelenko/internal/models"
)

// PlantsState is the persisted unit of the plant registry.
type PlantsState struct {
	NextID int            `json:"nextId"`
	Plants []models.Plant `json:"plants"`
}

// InitialPlantsState is the state on first launch.
func InitialPlantsState() PlantsState {
	return PlantsState{NextID: 1, Plants: []models.Plant{}}
}

// Find returns the plant with id.
func (s PlantsState) Find(id string) (models.Plant, bool) {
	for _, p := range s.Plants {
		if p.ID == id {
			return p, true
		}
	}
	return models.Plant{}, false
}

func (s PlantsState) indexOf(id string) int {
	for i, p := range s.Plants {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the state.
func (s PlantsState) Clone() PlantsState {
	plants := make([]models.Plant, len(s.Plants))
	for i, p := range s.Plants {
		plants[i] = clonePlant(p)
	}
	return PlantsState{NextID: s.NextID, Plants: plants}
}

func clonePlant(p models.Plant) models.Plant {
	if p.LastWateredAtTimestamp != nil {
		ts := *p.LastWateredAtTimestamp
		p.LastWateredAtTimestamp = &ts
	}
	return p
}

// The transitions below never modify their input state.
// Inputs are expected to be validated by the caller: name non-empty,
// days positive.

// AddPlant prepends a new plant using the next id.
func AddPlant(s PlantsState, name string, days int, imageURI string) (PlantsState, models.Plant) {
	plant := models.Plant{
		ID:                    strconv.Itoa(s.NextID),
		Name:                  name,
		WateringFrequencyDays: days,
		ImageURI:              imageURI,
	}

	plants := make([]models.Plant, 0, len(s.Plants)+1)
	plants = append(plants, plant)
	plants = append(plants, s.Plants...)

	return PlantsState{NextID: s.NextID + 1, Plants: plants}, plant
}

// RemovePlant drops the plant with id. Unknown ids leave the state unchanged.
func RemovePlant(s PlantsState, id string) (PlantsState, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return s, false
	}

	plants := make([]models.Plant, 0, len(s.Plants)-1)
	plants = append(plants, s.Plants[:i]...)
	plants = append(plants, s.Plants[i+1:]...)

	return PlantsState{NextID: s.NextID, Plants: plants}, true
}

// WaterPlant records a watering at the given time.
func WaterPlant(s PlantsState, id string, at time.Time) (PlantsState, bool) {
	return mapPlant(s, id, func(p models.Plant) models.Plant {
		ts := at.UnixMilli()
		p.LastWateredAtTimestamp = &ts
		return p
	})
}

// UpdatePlant applies a partial update to the plant with id.
func UpdatePlant(s PlantsState, id string, u models.PlantUpdate) (PlantsState, bool) {
	return mapPlant(s, id, func(p models.Plant) models.Plant {
		if u.Name != nil {
			p.Name = *u.Name
		}
		if u.WateringFrequencyDays != nil {
			p.WateringFrequencyDays = *u.WateringFrequencyDays
		}
		p.ImageURI = u.Image.Apply(p.ImageURI)
		return p
	})
}

func mapPlant(s PlantsState, id string, fn func(models.Plant) models.Plant) (PlantsState, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return s, false
	}

	plants := make([]models.Plant, len(s.Plants))
	copy(plants, s.Plants)
	plants[i] = fn(clonePlant(plants[i]))

	return PlantsState{NextID: s.NextID, Plants: plants}, true
}
