package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"", ""},
		{"Ctrl", "ctrl"},
		{"Ctrl (Left)", "ctrlleft"},
		{"ctrl_left", "ctrlleft"},
		{"Page-Up", "pageup"},
		{"\tNum Lock ", "numlock"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeName(tt.in))
		})
	}
}

func TestSuggest(t *testing.T) {
	candidates := []string{"Shift", "Ctrl", "Alt", "Escape", "Enter", "Space", "Tab"}

	t.Run("closest first", func(t *testing.T) {
		got := Suggest("shfit", candidates, 3)
		assert.Equal(t, []string{"Shift"}, got)
	})

	t.Run("exact after normalization", func(t *testing.T) {
		got := Suggest("ESCAPE", candidates, 1)
		assert.Equal(t, []string{"Escape"}, got)
	})

	t.Run("limit applies", func(t *testing.T) {
		got := Suggest("Spce", []string{"Space", "Spade", "Spice"}, 2)
		assert.Len(t, got, 2)
		assert.Equal(t, "Space", got[0])
	})

	t.Run("nothing close", func(t *testing.T) {
		assert.Empty(t, Suggest("qwertyuiop", candidates, 3))
	})

	t.Run("zero limit", func(t *testing.T) {
		assert.Nil(t, Suggest("Shift", candidates, 0))
	})

	t.Run("no candidates", func(t *testing.T) {
		assert.Nil(t, Suggest("Shift", nil, 3))
	})
}
