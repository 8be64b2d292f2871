package paths

import (
	"github.com/Faultbox/midgard-village/internal/mesh"
	"github.com/Faultbox/midgard-village/pkg/geom"
	"github.com/Faultbox/midgard-village/pkg/math"
)

// Network is one generated path system (the roads or the rivers) together
// with its ribbon mesh.
type Network struct {
	Name   string
	Forest *Forest
	Width  float32
	Mesh   *mesh.Mesh
}

// Edges calls fn for every edge in chain order until fn returns false.
func (n *Network) Edges(fn func(branch int, e Edge) bool) {
	if n == nil || n.Forest == nil {
		return
	}
	for b, chain := range n.Forest.Chains {
		for _, e := range chain.Edges {
			if !fn(b, e) {
				return
			}
		}
	}
}

// IntersectsPath reports whether the swept ribbon of candidate crosses any
// edge of the network. Each pair is checked along the centerlines, then along
// the four combinations of left and right offset segments.
func (n *Network) IntersectsPath(candidate Edge, candidateWidth float32) bool {
	found := false
	n.Edges(func(_ int, e Edge) bool {
		found = ribbonsIntersect(e, n.Width, candidate, candidateWidth)
		return !found
	})
	return found
}

// Covers reports whether p lies on the network's ribbon, measured on the
// ground plane.
func (n *Network) Covers(p math.Vec3) bool {
	if n == nil {
		return false
	}
	half := n.Width * 0.5
	covered := false
	n.Edges(func(_ int, e Edge) bool {
		covered = geom.PointSegmentDistance(p, e.Start.Position, e.End.Position) <= half
		return !covered
	})
	return covered
}

func ribbonsIntersect(a Edge, widthA float32, b Edge, widthB float32) bool {
	if geom.SegmentsIntersect(a.Start.Position, a.End.Position, b.Start.Position, b.End.Position) {
		return true
	}

	aLeft, aRight := offsetSegments(a, widthA*0.5)
	bLeft, bRight := offsetSegments(b, widthB*0.5)
	for _, sa := range [2][2]math.Vec3{aLeft, aRight} {
		for _, sb := range [2][2]math.Vec3{bLeft, bRight} {
			if geom.SegmentsIntersect(sa[0], sa[1], sb[0], sb[1]) {
				return true
			}
		}
	}
	return false
}

// offsetSegments returns e shifted half to its left and to its right.
func offsetSegments(e Edge, half float32) (left, right [2]math.Vec3) {
	sl, sr := lateral(e.Start)
	el, er := lateral(e.End)
	left = [2]math.Vec3{e.Start.Position.Add(sl.Scale(half)), e.End.Position.Add(el.Scale(half))}
	right = [2]math.Vec3{e.Start.Position.Add(sr.Scale(half)), e.End.Position.Add(er.Scale(half))}
	return left, right
}
