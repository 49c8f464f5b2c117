package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirmDialog_DefaultsToNo(t *testing.T) {
	d := NewConfirmDialog("Obriši Fikus?", "Ova radnja se ne može opozvati.", "Obriši", "Otkaži")

	assert.False(t, d.IsYesSelected())
	done, confirmed := d.Update("enter")
	assert.True(t, done)
	assert.False(t, confirmed)
}

func TestConfirmDialog_ToggleThenEnter(t *testing.T) {
	d := NewConfirmDialog("t", "m", "da", "ne")

	done, _ := d.Update("left")
	assert.False(t, done)
	assert.True(t, d.IsYesSelected())

	done, confirmed := d.Update("enter")
	assert.True(t, done)
	assert.True(t, confirmed)
}

func TestConfirmDialog_Shortcuts(t *testing.T) {
	tests := []struct {
		key       string
		done      bool
		confirmed bool
	}{
		{"y", true, true},
		{"n", true, false},
		{"esc", true, false},
		{"x", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			d := NewConfirmDialog("t", "m", "da", "ne")
			done, confirmed := d.Update(tt.key)
			assert.Equal(t, tt.done, done)
			assert.Equal(t, tt.confirmed, confirmed)
		})
	}
}

func TestConfirmDialog_ViewShowsLabels(t *testing.T) {
	d := NewConfirmDialog("Obriši Fikus?", "Ova radnja se ne može opozvati.", "Obriši", "Otkaži")
	view := d.View()

	assert.Contains(t, view, "Obriši Fikus?")
	assert.Contains(t, view, "Ova radnja se ne može opozvati.")
	assert.Contains(t, view, "Otkaži")
	assert.Equal(t, "Obriši Fikus?", d.Title())
}
