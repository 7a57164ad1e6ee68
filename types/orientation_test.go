package types

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestOrientation_String(t *testing.T) {
	tests := map[string]struct {
		orientation Orientation
		expected    string
	}{
		"collinear": {
			orientation: Collinear,
			expected:    "Collinear",
		},
		"clockwise": {
			orientation: Clockwise,
			expected:    "Clockwise",
		},
		"counterclockwise": {
			orientation: Counterclockwise,
			expected:    "Counterclockwise",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.orientation.String())
		})
	}
}

func TestOrientation_String_panicsOnUnsupported(t *testing.T) {
	assert.Panics(t, func() {
		_ = Orientation(42).String()
	})
}
