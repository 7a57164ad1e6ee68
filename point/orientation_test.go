package point

import (
	"github.com/stretchr/testify/assert"
	"testing"

	"github.com/mikenye/sweep2d/types"
)

func TestOrientation(t *testing.T) {
	tests := map[string]struct {
		p, q, r  Point
		expected types.Orientation
	}{
		"counterclockwise turn": {
			p:        New(0, 0),
			q:        New(2, 0),
			r:        New(2, 2),
			expected: types.Counterclockwise,
		},
		"clockwise turn": {
			p:        New(0, 0),
			q:        New(2, 0),
			r:        New(2, -2),
			expected: types.Clockwise,
		},
		"collinear ascending": {
			p:        New(0, 0),
			q:        New(1, 1),
			r:        New(2, 2),
			expected: types.Collinear,
		},
		"collinear with repeated point": {
			p:        New(0, 0),
			q:        New(1, 1),
			r:        New(1, 1),
			expected: types.Collinear,
		},
		"vertical counterclockwise": {
			p:        New(0, 0),
			q:        New(0, 2),
			r:        New(-1, 1),
			expected: types.Counterclockwise,
		},
		"vertical clockwise": {
			p:        New(0, 0),
			q:        New(0, 2),
			r:        New(1, 1),
			expected: types.Clockwise,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Orientation(tt.p, tt.q, tt.r))
		})
	}
}

func TestOrientation_antisymmetry(t *testing.T) {
	// Swapping the last two points flips a strict turn.
	p, q, r := New(0, 0), New(3, 1), New(1, 4)
	assert.Equal(t, types.Counterclockwise, Orientation(p, q, r))
	assert.Equal(t, types.Clockwise, Orientation(p, r, q))
}
