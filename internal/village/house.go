package village

import (
	"github.com/Faultbox/midgard-village/internal/house"
	"github.com/Faultbox/midgard-village/internal/paths"
	"github.com/Faultbox/midgard-village/pkg/math"
)

// Source tells which pass placed a house.
type Source int

const (
	AlongRiver Source = iota
	AlongRoad
	AroundFocus
)

func (s Source) String() string {
	switch s {
	case AlongRiver:
		return "river"
	case AlongRoad:
		return "road"
	case AroundFocus:
		return "focus"
	default:
		return "unknown"
	}
}

// House is a plan placed in the world. Plan cell (i, j) spans
// [i, i+1] x [j, j+1] tiles of the local frame; local X follows the
// lengthwise axis and local Z the breadthwise axis.
type House struct {
	ID        int
	Source    Source
	Plan      *house.Plan
	TileSize  float32
	Transform math.Mat4 // Local tile-scaled frame to world

	corners []math.Vec3
	center  math.Vec3
	radius  float32
}

func newHouse(id int, src Source, plan *house.Plan, tile float32, transform math.Mat4) *House {
	h := &House{ID: id, Source: src, Plan: plan, TileSize: tile, Transform: transform}

	for _, c := range plan.Corners() {
		h.corners = append(h.corners, h.ToWorld(c))
	}
	h.center = h.ToWorld(math.Vec2{X: float32(plan.Length) / 2, Y: float32(plan.Breadth) / 2})
	for _, c := range h.corners {
		h.radius = max(h.radius, c.Distance(h.center))
	}
	return h
}

// Origin returns the world position of lattice corner (0, 0).
func (h *House) Origin() math.Vec3 {
	return h.Transform.TransformPoint(math.Vec3{})
}

// ToWorld maps a lattice point (X = i, Y = j) to world space.
func (h *House) ToWorld(p math.Vec2) math.Vec3 {
	return h.Transform.TransformPoint(math.Vec3{X: p.X * h.TileSize, Z: p.Y * h.TileSize})
}

// Corners returns the world position of every lattice corner touching a floor.
func (h *House) Corners() []math.Vec3 {
	return h.corners
}

// Outline returns the walls as world edges, ready for path intersection tests.
func (h *House) Outline() []paths.Edge {
	out := make([]paths.Edge, 0, len(h.Plan.Walls))
	for _, w := range h.Plan.Walls {
		a, b := w.Segment()
		start, end := h.ToWorld(a), h.ToWorld(b)
		run := b.Sub(a)
		dir := h.Transform.TransformDirection(math.Vec3{X: run.X, Z: run.Y}).Normalize()
		out = append(out, paths.Edge{
			Start: &paths.Vertex{Position: start, Direction: dir},
			End:   &paths.Vertex{Position: end, Direction: dir, SequenceIndex: 1},
		})
	}
	return out
}

// Door returns the world midpoint of the door wall, if any.
func (h *House) Door() (math.Vec3, bool) {
	w, ok := h.Plan.Door()
	if !ok {
		return math.Vec3{}, false
	}
	a, b := w.Segment()
	return h.ToWorld(a.Add(b).Scale(0.5)), true
}

// near reports whether any corner of h lies closer than dist to a corner of other.
func (h *House) near(other *House, dist float32) bool {
	if h.center.Distance(other.center) > h.radius+other.radius+dist {
		return false
	}
	limit := dist * dist
	for _, a := range h.corners {
		for _, b := range other.corners {
			if a.DistanceSq(b) < limit {
				return true
			}
		}
	}
	return false
}
