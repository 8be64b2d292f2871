// Package paths grows branching road and river networks over a terrain and
// turns them into ribbon meshes.
//
// A generation run is Grow, then Forest.Correct exactly once, then
// BuildRibbon. All randomness comes from the *rand.Rand passed to Grow, so a
// fixed seed reproduces the same forest.
package paths

import (
	"github.com/Faultbox/midgard-village/pkg/math"
)

// Vertex is a node in a chain.
type Vertex struct {
	Position  math.Vec3
	Direction math.Vec3 // Unit heading used to project the next vertex
	Normal    math.Vec3 // Zero until terrain correction

	BranchID         int
	SequenceIndex    int
	BranchDepth      int
	SpawnProbability float32 // Chance that a further branch spawns here
}

// Tangent is the lateral offset on one side of the path.
// Zero before the normal is assigned.
func (v *Vertex) Tangent() math.Vec3 {
	return v.Normal.Cross(v.Direction).Normalize()
}

// ReverseTangent is the lateral offset on the other side.
func (v *Vertex) ReverseTangent() math.Vec3 {
	return v.Direction.Cross(v.Normal).Normalize()
}

// Edge connects two consecutive vertices of the same chain.
type Edge struct {
	Start, End *Vertex
}

// Length returns the distance between the endpoints.
func (e Edge) Length() float32 {
	return e.Start.Position.Distance(e.End.Position)
}

// Direction returns the unit vector from start to end.
func (e Edge) Direction() math.Vec3 {
	return e.End.Position.Sub(e.Start.Position).Normalize()
}

// Tangent averages the endpoint tangents.
func (e Edge) Tangent() math.Vec3 {
	return e.Start.Tangent().Add(e.End.Tangent()).Scale(0.5)
}

// ReverseTangent averages the endpoint reverse tangents.
func (e Edge) ReverseTangent() math.Vec3 {
	return e.Start.ReverseTangent().Add(e.End.ReverseTangent()).Scale(0.5)
}

// Normal averages the endpoint normals.
func (e Edge) Normal() math.Vec3 {
	return e.Start.Normal.Add(e.End.Normal).Scale(0.5)
}

// Midpoint returns the point halfway along the edge.
func (e Edge) Midpoint() math.Vec3 {
	return e.Start.Position.Lerp(e.End.Position, 0.5)
}

// Chain is one continuous path: vertices in sequence order and the edges
// joining consecutive vertices.
type Chain struct {
	Vertices []*Vertex
	Edges    []Edge
}

// Weld records a growth attempt that stopped next to a vertex of another
// chain. The candidate is never committed; welds do not join chains.
type Weld struct {
	BranchID  int       // Chain that was growing (the parent, for a failed branch spawn)
	Candidate math.Vec3 // Rejected position
	Target    *Vertex   // Existing vertex the candidate snapped to
}

// Forest is every chain of one generation run, indexed by BranchID.
type Forest struct {
	Chains []Chain
	Welds  []Weld

	corrected bool
}

// VertexCount returns the number of vertices over all chains.
func (f *Forest) VertexCount() int {
	n := 0
	for _, c := range f.Chains {
		n += len(c.Vertices)
	}
	return n
}

// EdgeCount returns the number of edges over all chains.
func (f *Forest) EdgeCount() int {
	n := 0
	for _, c := range f.Chains {
		n += len(c.Edges)
	}
	return n
}

// Corrected reports whether terrain correction has run.
func (f *Forest) Corrected() bool {
	return f.corrected
}

// Rect is an axis-aligned rectangle on the ground plane. Vec2.Y is world Z.
type Rect struct {
	Min, Max math.Vec2
}

// NewRect returns the rectangle starting at origin with the given size.
func NewRect(origin, size math.Vec2) Rect {
	return Rect{Min: origin, Max: origin.Add(size)}
}

// Contains reports whether p lies inside the rectangle, edges included.
func (r Rect) Contains(p math.Vec3) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Z >= r.Min.Y && p.Z <= r.Max.Y
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y
}
