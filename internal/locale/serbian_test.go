package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDayLabel(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "dana"},
		{1, "dan"},
		{2, "dana"},
		{4, "dana"},
		{5, "dana"},
		{11, "dana"},
		{12, "dana"},
		{14, "dana"},
		{21, "dan"},
		{22, "dana"},
		{101, "dan"},
		{111, "dana"},
		{114, "dana"},
		{121, "dan"},
		{-1, "dan"},
		{-11, "dana"},
		{-21, "dan"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DayLabel(tt.n), "DayLabel(%d)", tt.n)
	}
}

func TestDays(t *testing.T) {
	assert.Equal(t, "1 dan", Days(1))
	assert.Equal(t, "3 dana", Days(3))
	assert.Equal(t, "31 dan", Days(31))
}

func TestWateringEvery(t *testing.T) {
	assert.Equal(t, "Zalivaj svaki dan", WateringEvery(1))
	assert.Equal(t, "Zalivaj na svakih 6 dana", WateringEvery(6))
	assert.Equal(t, "Zalivaj na svakih 21 dan", WateringEvery(21))
}

func TestDeleteTitle(t *testing.T) {
	assert.Equal(t, "Obriši Fikus?", DeleteTitle("Fikus"))
}

func TestDaysRequired(t *testing.T) {
	assert.Equal(t, "Koliko često treba zalivati Fikus?", DaysRequired("Fikus"))
}
