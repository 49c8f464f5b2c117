package models

// Plant is one tracked houseplant.
type Plant struct {
	ID                    string `json:"id"`
	Name                  string `json:"name"`
	WateringFrequencyDays int    `json:"wateringFrequencyDays"`

	// LastWateredAtTimestamp is milliseconds since the Unix epoch.
	// Nil means the plant has never been watered.
	LastWateredAtTimestamp *int64 `json:"lastWateredAtTimestamp,omitempty"`

	// ImageURI references a copied image on the local filesystem.
	// Empty means the default placeholder image.
	ImageURI string `json:"imageUri,omitempty"`
}

// HasBeenWatered returns true if a watering was ever recorded.
func (p Plant) HasBeenWatered() bool {
	return p.LastWateredAtTimestamp != nil
}

// HasImage returns true if the plant has its own image.
func (p Plant) HasImage() bool {
	return p.ImageURI != ""
}

// PlantUpdate describes a partial update. Nil fields are left unchanged.
type PlantUpdate struct {
	Name                  *string
	WateringFrequencyDays *int
	Image                 ImageChange
}

type imageOp int

const (
	imageKeep imageOp = iota
	imageSet
	imageClear
)

// ImageChange is a tri-state image edit. The zero value keeps the current image.
type ImageChange struct {
	op  imageOp
	uri string
}

// KeepImage leaves the image untouched.
func KeepImage() ImageChange { return ImageChange{} }

// SetImage replaces the image reference.
func SetImage(uri string) ImageChange { return ImageChange{op: imageSet, uri: uri} }

// ClearImage removes the image so the placeholder is shown.
func ClearImage() ImageChange { return ImageChange{op: imageClear} }

// Apply returns the image reference after the change.
func (c ImageChange) Apply(current string) string {
	switch c.op {
	case imageSet:
		return c.uri
	case imageClear:
		return ""
	default:
		return current
	}
}

// IsKeep reports whether the change leaves the image untouched.
func (c ImageChange) IsKeep() bool {
	return c.op == imageKeep
}
