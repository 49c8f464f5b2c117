package app

import (
	"errors"
	"strconv"

	"github.com/asteroid-belt/zelenko/internal/images"
	"github.com/asteroid-belt/zelenko/internal/locale"
	"github.com/asteroid-belt/zelenko/internal/models"
	"github.com/asteroid-belt/zelenko/internal/watering"
)

var (
	// ErrPlantNotFound is returned for ids the registry does not hold.
	ErrPlantNotFound = errors.New(locale.PlantNotFound)
	// ErrImageSave is returned when a picked image cannot be copied.
	// The plant is left untouched.
	ErrImageSave = errors.New(locale.ImageSaveFailed)
)

// NewPlant is a create request from the CLI or the TUI form.
type NewPlant struct {
	Name string
	Days string
	// Image is a file to copy into the image directory; empty means
	// the default image.
	Image string
}

// PlantEdit is an edit request. Nil fields keep their current value.
type PlantEdit struct {
	Name *string
	Days *string
	// Image is a file to copy in as the new image. A value equal to the
	// current reference keeps the image.
	Image      string
	ClearImage bool
}

// AddPlant validates the request, copies the image and adds the plant.
func (a *App) AddPlant(source string, in NewPlant) (models.Plant, error) {
	name, days, err := ValidatePlantInput(in.Name, in.Days)
	if err != nil {
		return models.Plant{}, err
	}

	var imageRef string
	if in.Image != "" {
		if imageRef, err = a.persistImage(in.Image); err != nil {
			return models.Plant{}, err
		}
	}

	plant := a.Plants.AddPlant(name, days, imageRef)
	a.Telemetry.TrackPlantAdded(source, days, plant.HasImage())
	return plant, nil
}

// UpdatePlant validates and applies an edit.
func (a *App) UpdatePlant(source, id string, in PlantEdit) (models.Plant, error) {
	current, ok := a.Plants.Plant(id)
	if !ok {
		return models.Plant{}, ErrPlantNotFound
	}

	name := current.Name
	if in.Name != nil {
		name = *in.Name
	}
	days := strconv.Itoa(current.WateringFrequencyDays)
	if in.Days != nil {
		days = *in.Days
	}
	name, n, err := ValidatePlantInput(name, days)
	if err != nil {
		return models.Plant{}, err
	}

	update := models.PlantUpdate{}
	changed := 0
	if name != current.Name {
		update.Name = &name
		changed++
	}
	if n != current.WateringFrequencyDays {
		update.WateringFrequencyDays = &n
		changed++
	}

	switch {
	case in.ClearImage:
		if current.HasImage() {
			update.Image = models.ClearImage()
			changed++
		}
	case in.Image != "" && in.Image != current.ImageURI:
		ref, err := a.persistImage(in.Image)
		if err != nil {
			return models.Plant{}, err
		}
		update.Image = models.SetImage(ref)
		changed++
	}

	if changed == 0 {
		return current, nil
	}

	a.Plants.UpdatePlant(id, update)
	if !update.Image.IsKeep() {
		a.removeImage(current.ImageURI)
	}
	a.Telemetry.TrackPlantUpdated(source, changed)

	updated, ok := a.Plants.Plant(id)
	if !ok {
		return models.Plant{}, ErrPlantNotFound
	}
	return updated, nil
}

// RemovePlant deletes the plant and its copied image.
func (a *App) RemovePlant(source, id string) (models.Plant, error) {
	plant, ok := a.Plants.Plant(id)
	if !ok {
		return models.Plant{}, ErrPlantNotFound
	}

	a.Plants.RemovePlant(id)
	a.removeImage(plant.ImageURI)
	a.Telemetry.TrackPlantRemoved(source, plant.HasImage())
	return plant, nil
}

// WaterPlant records a watering now and returns the updated plant.
func (a *App) WaterPlant(source, id string) (models.Plant, error) {
	plant, ok := a.Plants.Plant(id)
	if !ok {
		return models.Plant{}, ErrPlantNotFound
	}
	before := watering.Derive(plant, a.Now())

	a.Plants.WaterPlant(id)
	a.Telemetry.TrackPlantWatered(source, before.Status.String())

	updated, ok := a.Plants.Plant(id)
	if !ok {
		return models.Plant{}, ErrPlantNotFound
	}
	return updated, nil
}

// ToggleOnboarding flips the onboarding flag and returns the new value.
func (a *App) ToggleOnboarding(source string) bool {
	finished := a.Onboarding.ToggleHasOnboarded()
	a.Telemetry.TrackOnboardingToggled(source, finished)
	return finished
}

func (a *App) persistImage(src string) (string, error) {
	ref, err := a.Images.Persist(src)
	if err != nil {
		a.logf("persist image %s: %v", src, err)
		return "", ErrImageSave
	}
	return ref, nil
}

// removeImage deletes ref when the image directory owns it.
func (a *App) removeImage(ref string) {
	if ref == "" {
		return
	}
	if err := a.Images.Remove(ref); err != nil && !errors.Is(err, images.ErrOutsideStore) {
		a.logf("remove image %s: %v", ref, err)
	}
}
