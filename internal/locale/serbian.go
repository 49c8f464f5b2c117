// Package locale holds the Serbian phrasing used across the CLI and TUI.
package locale

import "fmt"

const (
	daySingular = "dan"
	dayPlural   = "dana"
)

// DayLabel returns the noun form that agrees with n days.
// Only a last digit of 1 takes the singular, and never in the teens:
// 21 is "dan" while 11 is "dana".
func DayLabel(n int) string {
	if n < 0 {
		n = -n
	}
	if lastTwo := n % 100; lastTwo >= 11 && lastTwo <= 14 {
		return dayPlural
	}
	if n%10 == 1 {
		return daySingular
	}
	return dayPlural
}

// Days formats a count with its agreeing noun, e.g. "21 dan".
func Days(n int) string {
	return fmt.Sprintf("%d %s", n, DayLabel(n))
}

// WateringEvery describes a watering interval for list rows.
func WateringEvery(days int) string {
	if days == 1 {
		return "Zalivaj svaki dan"
	}
	return fmt.Sprintf("Zalivaj na svakih %s", Days(days))
}

// User-facing strings shared by the CLI and TUI.
const (
	AppName          = "Zelenko"
	Tagline          = "Pobrinite se da vaši zeleni prijatelji uvek imaju dovoljno vode"
	LetMeIn          = "Pusti me unutra!"
	BackToOnboarding = "Nazad na onboarding"
	AddFirstPlant    = "Dodaj svoju prvu biljku"
	AddPlant         = "Dodaj zelenog prijatelja"
	SaveChanges      = "Sačuvaj izmene"
	EditPlant        = "Izmeni biljku"
	WaterMe          = "Zalij me!"
	Delete           = "Obriši"
	Cancel           = "Otkaži"
	PlantNotFound    = "Biljka nije pronađena."
	CannotUndo       = "Ova radnja se ne može opozvati."
	InputError       = "Greška pri unosu"
	ImageSaveFailed  = "Nije moguće sačuvati sliku."

	NameLabel       = "Ime tvog zelenog prijatelja"
	NamePlaceholder = "npr. Kaktus Kasper"
	DaysLabel       = "Koliko često se zaliva (svakih X dana)"
	DaysPlaceholder = "npr. 6"
	ImageLabel      = "Slika (putanja do fajla)"
	AddImage        = "Dodaj sliku"
	ChangeImage     = "Promeni sliku"
	RemoveImage     = "Ukloni sliku"

	NameRequired   = "Daj ime svom zelenom prijatelju"
	DaysNotANumber = "Unesi broj dana za zalivanje"

	WaterEveryLabel   = "Zalivaj me na svakih"
	LastWateredLabel  = "Poslednje zalivanje"
	DaysSinceLabel    = "Dana od poslednjeg zalivanja"
	Never             = "Nikad"
	NotApplicable     = "N/A"
	DefaultImageLabel = "podrazumevana slika"
)

// DeleteTitle is the confirmation title for deleting a plant.
func DeleteTitle(name string) string {
	return fmt.Sprintf("%s %s?", Delete, name)
}

// DaysRequired asks for the watering interval of the named plant.
func DaysRequired(name string) string {
	return fmt.Sprintf("Koliko često treba zalivati %s?", name)
}
