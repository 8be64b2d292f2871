package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/midgard-village/pkg/math"
)

func v(x, z float32) math.Vec3 { return math.Vec3{X: x, Z: z} }

func TestSegmentsIntersect(t *testing.T) {
	tests := []struct {
		name           string
		p1, q1, p2, q2 math.Vec3
		want           bool
	}{
		{"crossing", v(0, 0), v(10, 10), v(0, 10), v(10, 0), true},
		{"parallel", v(0, 0), v(10, 0), v(0, 1), v(10, 1), false},
		{"collinear overlap", v(0, 0), v(10, 0), v(5, 0), v(15, 0), true},
		{"collinear disjoint", v(0, 0), v(4, 0), v(5, 0), v(9, 0), false},
		{"touching endpoint", v(0, 0), v(5, 5), v(5, 5), v(10, 0), true},
		{"t junction", v(0, 0), v(10, 0), v(5, 0), v(5, 5), true},
		{"near miss", v(0, 0), v(2, 2), v(5, 0), v(0, 5.1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SegmentsIntersect(tt.p1, tt.q1, tt.p2, tt.q2))
			// Symmetric in argument order
			assert.Equal(t, tt.want, SegmentsIntersect(tt.p2, tt.q2, tt.p1, tt.q1))
		})
	}
}

func TestSegmentsIntersectIgnoresHeight(t *testing.T) {
	a1 := math.Vec3{X: 0, Y: 100, Z: 0}
	a2 := math.Vec3{X: 10, Y: -50, Z: 10}
	b1 := math.Vec3{X: 0, Y: 0, Z: 10}
	b2 := math.Vec3{X: 10, Y: 7, Z: 0}
	assert.True(t, SegmentsIntersect(a1, a2, b1, b2))
}

func TestOrient(t *testing.T) {
	p := math.Vec2{X: 0, Y: 0}
	q := math.Vec2{X: 4, Y: 4}
	assert.Equal(t, Collinear, Orient(p, q, math.Vec2{X: 8, Y: 8}))
	assert.Equal(t, Clockwise, Orient(p, q, math.Vec2{X: 8, Y: 0}))
	assert.Equal(t, CounterClockwise, Orient(p, q, math.Vec2{X: 0, Y: 8}))
}

func TestPointSegmentDistance(t *testing.T) {
	assert.InDelta(t, 3, PointSegmentDistance(v(5, 3), v(0, 0), v(10, 0)), 1e-6)
	assert.InDelta(t, 5, PointSegmentDistance(v(13, 4), v(0, 0), v(10, 0)), 1e-6)
	// Degenerate segment
	assert.InDelta(t, 5, PointSegmentDistance(v(3, 4), v(0, 0), v(0, 0)), 1e-6)
}
