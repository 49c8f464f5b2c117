package app

import (
	"strconv"
	"strings"

	"github.com/asteroid-belt/zelenko/internal/locale"
)

// ValidationError carries a message meant for the user as-is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Form fields named by ValidationError.
const (
	FieldName = "name"
	FieldDays = "days"
)

// ValidatePlantInput checks raw form or flag values before they reach the
// registry: the name must not be blank and the interval must be a positive
// whole number of days.
func ValidatePlantInput(name, days string) (string, int, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", 0, &ValidationError{Field: FieldName, Message: locale.NameRequired}
	}

	days = strings.TrimSpace(days)
	if days == "" {
		return "", 0, &ValidationError{Field: FieldDays, Message: locale.DaysRequired(name)}
	}

	n, err := strconv.Atoi(days)
	if err != nil || n <= 0 {
		return "", 0, &ValidationError{Field: FieldDays, Message: locale.DaysNotANumber}
	}

	return name, n, nil
}
