package watering

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/asteroid-belt/zelenko/internal/locale"
	"github.com/asteroid-belt/zelenko/internal/models"
)

var months = [12]string{
	"jan", "feb", "mar", "apr", "maj", "jun",
	"jul", "avg", "sep", "okt", "nov", "dec",
}

// FormatFullDate renders t as "2. mar 2026. 08:05".
func FormatFullDate(t time.Time) string {
	return fmt.Sprintf("%d. %s %d. %02d:%02d",
		t.Day(), months[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}

// LastWateredText formats the last watering in loc, or "Nikad".
func LastWateredText(p models.Plant, loc *time.Location) string {
	if p.LastWateredAtTimestamp == nil {
		return locale.Never
	}
	if loc == nil {
		loc = time.Local
	}
	return FormatFullDate(time.UnixMilli(*p.LastWateredAtTimestamp).In(loc))
}

// DaysSinceText returns the raw day count since the last watering, or "N/A".
func DaysSinceText(p models.Plant, now time.Time) string {
	days, ok := DaysSince(p, now)
	if !ok {
		return locale.NotApplicable
	}
	return strconv.Itoa(days)
}

// Detail is everything the detail screen shows about watering.
type Detail struct {
	Every       string
	LastWatered string
	DaysSince   string
	Status      Result
}

// Describe collects the detail screen values for p at now.
func Describe(p models.Plant, now time.Time) Detail {
	return Detail{
		Every:       locale.Days(p.WateringFrequencyDays),
		LastWatered: LastWateredText(p, now.Location()),
		DaysSince:   DaysSinceText(p, now),
		Status:      Derive(p, now),
	}
}

// Summary renders the detail block as plain text, one fact per line.
func Summary(p models.Plant, now time.Time) string {
	d := Describe(p, now)
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", p.Name)
	fmt.Fprintf(&b, "%s: %s\n", locale.WaterEveryLabel, d.Every)
	fmt.Fprintf(&b, "%s: %s\n", locale.LastWateredLabel, d.LastWatered)
	fmt.Fprintf(&b, "%s: %s\n", locale.DaysSinceLabel, d.DaysSince)
	if msg := d.Status.Message(); msg != "" {
		fmt.Fprintf(&b, "%s\n", msg)
	}
	return b.String()
}
