// Package clock abstracts the current time so derived state can be tested.
package clock

import "time"

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock.
type System struct{}

// Now returns time.Now().
func (System) Now() time.Time {
	return time.Now()
}

// Fixed always returns the same instant.
type Fixed struct {
	T time.Time
}

// Now returns the fixed instant.
func (f Fixed) Now() time.Time {
	return f.T
}

// Func adapts a function to the Clock interface.
type Func func() time.Time

// Now calls f.
func (f Func) Now() time.Time {
	return f()
}

// In returns a clock reporting c's time in loc.
func In(c Clock, loc *time.Location) Clock {
	if loc == nil {
		return c
	}
	return Func(func() time.Time {
		return c.Now().In(loc)
	})
}
