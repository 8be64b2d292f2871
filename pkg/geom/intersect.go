// Package geom provides planar geometry tests on the ground (X/Z) plane.
package geom

import "github.com/Faultbox/midgard-village/pkg/math"

// Orientation of an ordered point triplet.
type Orientation int

const (
	Collinear Orientation = iota
	Clockwise
	CounterClockwise
)

// Orient returns the orientation of the triplet (p, q, r).
func Orient(p, q, r math.Vec2) Orientation {
	val := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	switch {
	case val == 0:
		return Collinear
	case val > 0:
		return Clockwise
	default:
		return CounterClockwise
	}
}

// onSegment reports whether q lies inside the bounding box of p-r.
// Only meaningful when p, q, r are collinear.
func onSegment(p, q, r math.Vec2) bool {
	return q.X <= max(p.X, r.X) && q.X >= min(p.X, r.X) &&
		q.Y <= max(p.Y, r.Y) && q.Y >= min(p.Y, r.Y)
}

// SegmentsIntersect2D reports whether segments p1-q1 and p2-q2 intersect,
// touching endpoints and collinear overlap included.
func SegmentsIntersect2D(p1, q1, p2, q2 math.Vec2) bool {
	o1 := Orient(p1, q1, p2)
	o2 := Orient(p1, q1, q2)
	o3 := Orient(p2, q2, p1)
	o4 := Orient(p2, q2, q1)

	if o1 != o2 && o3 != o4 {
		return true
	}

	switch {
	case o1 == Collinear && onSegment(p1, p2, q1):
		return true
	case o2 == Collinear && onSegment(p1, q2, q1):
		return true
	case o3 == Collinear && onSegment(p2, p1, q2):
		return true
	case o4 == Collinear && onSegment(p2, q1, q2):
		return true
	}
	return false
}

// SegmentsIntersect is SegmentsIntersect2D on world segments; Y is discarded.
func SegmentsIntersect(p1, q1, p2, q2 math.Vec3) bool {
	return SegmentsIntersect2D(p1.XZ(), q1.XZ(), p2.XZ(), q2.XZ())
}

// PointSegmentDistance returns the X/Z distance from p to segment a-b.
func PointSegmentDistance(p, a, b math.Vec3) float32 {
	pp, aa, bb := p.XZ(), a.XZ(), b.XZ()
	ab := bb.Sub(aa)
	denom := ab.Dot(ab)
	if denom == 0 {
		return pp.Distance(aa)
	}
	t := pp.Sub(aa).Dot(ab) / denom
	t = max(0, min(1, t))
	return pp.Distance(aa.Add(ab.Scale(t)))
}
