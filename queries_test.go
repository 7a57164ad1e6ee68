package sweep2d

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"

	"github.com/mikenye/sweep2d/linesegment"
	"github.com/mikenye/sweep2d/point"
)

func TestSegmentsIntersect(t *testing.T) {
	tests := map[string]struct {
		segments []linesegment.LineSegment
		expected bool
	}{
		"empty input": {
			segments: nil,
			expected: false,
		},
		"single segment": {
			segments: []linesegment.LineSegment{
				linesegment.New(0, 0, 2, 2),
			},
			expected: false,
		},
		"parallel disjoint": {
			segments: []linesegment.LineSegment{
				linesegment.New(0, 0, 2, 0),
				linesegment.New(0, 2, 2, 2),
			},
			expected: false,
		},
		"identical segments": {
			segments: []linesegment.LineSegment{
				linesegment.New(0, 0, 2, 2),
				linesegment.New(0, 0, 2, 2),
			},
			expected: true,
		},
		"proper crossing": {
			segments: []linesegment.LineSegment{
				linesegment.New(0, 0, 2, 2),
				linesegment.New(2, 0, 0, 2),
			},
			expected: true,
		},
		"touching endpoints": {
			segments: []linesegment.LineSegment{
				linesegment.New(0, 0, 2, 2),
				linesegment.New(2, 2, 4, 0),
			},
			expected: true,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			actual, err := SegmentsIntersect(tt.segments)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestSegmentsCrossOrOverlap(t *testing.T) {
	tests := map[string]struct {
		segments []linesegment.LineSegment
		expected bool
	}{
		"empty input": {
			segments: nil,
			expected: false,
		},
		"parallel disjoint": {
			segments: []linesegment.LineSegment{
				linesegment.New(0, 0, 2, 0),
				linesegment.New(0, 2, 2, 2),
			},
			expected: false,
		},
		"touch only": {
			segments: []linesegment.LineSegment{
				linesegment.New(0, 0, 2, 2),
				linesegment.New(2, 2, 4, 0),
			},
			expected: false,
		},
		"endpoint on interior touch only": {
			segments: []linesegment.LineSegment{
				linesegment.New(0, 0, 10, 0),
				linesegment.New(5, -5, 5, 0),
			},
			expected: false,
		},
		"proper crossing": {
			segments: []linesegment.LineSegment{
				linesegment.New(0, 0, 2, 2),
				linesegment.New(2, 0, 0, 2),
			},
			expected: true,
		},
		"collinear overlap": {
			segments: []linesegment.LineSegment{
				linesegment.New(0, 0, 3, 0),
				linesegment.New(1, 0, 4, 0),
			},
			expected: true,
		},
		"identical segments": {
			segments: []linesegment.LineSegment{
				linesegment.New(0, 0, 2, 2),
				linesegment.New(0, 0, 2, 2),
			},
			expected: true,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			actual, err := SegmentsCrossOrOverlap(tt.segments)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestSegmentsIntersect_degenerateSegment(t *testing.T) {
	segments := []linesegment.LineSegment{
		linesegment.New(1, 1, 1, 1),
	}
	_, err := SegmentsIntersect(segments)
	require.Error(t, err)
	var degenerate linesegment.DegenerateSegmentError
	assert.ErrorAs(t, err, &degenerate)
}

func TestContourSelfIntersects(t *testing.T) {
	tests := map[string]struct {
		vertices []point.Point
		expected bool
	}{
		"triangle": {
			vertices: []point.Point{
				point.New(0, 0), point.New(2, 0), point.New(2, 2),
			},
			expected: false,
		},
		"square": {
			vertices: []point.Point{
				point.New(0, 0), point.New(4, 0), point.New(4, 4), point.New(0, 4),
			},
			expected: false,
		},
		"collinear spike": {
			vertices: []point.Point{
				point.New(0, 0), point.New(2, 0), point.New(1, 0),
			},
			expected: true,
		},
		"bowtie": {
			vertices: []point.Point{
				point.New(0, 0), point.New(4, 4), point.New(4, 0), point.New(0, 4),
			},
			expected: true,
		},
		"repeated vertex": {
			vertices: []point.Point{
				point.New(0, 0), point.New(2, 0), point.New(2, 0), point.New(2, 2),
			},
			expected: true,
		},
		"concave but simple": {
			vertices: []point.Point{
				point.New(0, 0), point.New(4, 0), point.New(4, 4),
				point.New(2, 1), point.New(0, 4),
			},
			expected: false,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			actual, err := ContourSelfIntersects(tt.vertices)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestContourSelfIntersects_degenerateContour(t *testing.T) {
	_, err := ContourSelfIntersects([]point.Point{point.New(0, 0), point.New(1, 1)})
	require.Error(t, err)
}
