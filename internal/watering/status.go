// Package watering derives when a plant needs water.
//
// Everything here is a pure function of a plant and the current time,
// so it is safe to call on every render.
package watering

import (
	"fmt"
	"time"

	"github.com/asteroid-belt/zelenko/internal/locale"
	"github.com/asteroid-belt/zelenko/internal/models"
)

// Status is the derived watering indicator.
type Status int

const (
	// StatusNone means no banner is shown.
	StatusNone Status = iota
	// StatusSoon means watering is due tomorrow.
	StatusSoon
	// StatusDue means the plant should be watered today.
	StatusDue
	// StatusOverdue means the interval has already passed.
	StatusOverdue
)

// String returns a stable name for the status.
func (s Status) String() string {
	switch s {
	case StatusSoon:
		return "soon"
	case StatusDue:
		return "due"
	case StatusOverdue:
		return "overdue"
	default:
		return "none"
	}
}

// Result is the outcome of Derive.
type Result struct {
	Status Status
	// OverdueDays is set only for StatusOverdue.
	OverdueDays int
	// DaysRemaining is the interval minus days since the last watering.
	// Zero when the plant was never watered.
	DaysRemaining int
}

// Message returns the banner text, or "" for StatusNone.
func (r Result) Message() string {
	switch r.Status {
	case StatusDue:
		return "💧 Vreme je za zalivanje"
	case StatusSoon:
		return "⏳ Uskoro zalivanje"
	case StatusOverdue:
		return fmt.Sprintf("🥵 Zedan! Kasnis %s", locale.Days(r.OverdueDays))
	default:
		return ""
	}
}

// NeedsWater reports whether the plant is due or overdue.
func (r Result) NeedsWater() bool {
	return r.Status == StatusDue || r.Status == StatusOverdue
}

// Derive computes the watering status of p at now.
// Day boundaries are local midnights in now's location.
func Derive(p models.Plant, now time.Time) Result {
	daysSince, ok := DaysSince(p, now)
	if !ok {
		return Result{Status: StatusDue}
	}

	remaining := p.WateringFrequencyDays - daysSince
	switch {
	case remaining < 0:
		return Result{Status: StatusOverdue, OverdueDays: -remaining, DaysRemaining: remaining}
	case remaining == 0:
		return Result{Status: StatusDue}
	case remaining == 1:
		return Result{Status: StatusSoon, DaysRemaining: 1}
	default:
		return Result{Status: StatusNone, DaysRemaining: remaining}
	}
}

// DaysSince returns the number of local midnights crossed since the last watering.
// A watering earlier today counts as 0. ok is false if the plant was never watered.
func DaysSince(p models.Plant, now time.Time) (days int, ok bool) {
	if p.LastWateredAtTimestamp == nil {
		return 0, false
	}
	last := time.UnixMilli(*p.LastWateredAtTimestamp).In(now.Location())
	return calendarDaysBetween(last, now), true
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// calendarDaysBetween counts date changes from a to b. Dates are compared
// as civil days so a 23 or 25 hour DST day still counts as one; dividing the
// elapsed time between local midnights by 24h would undercount after spring
// forward.
func calendarDaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	from := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	to := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from) / (24 * time.Hour))
}
