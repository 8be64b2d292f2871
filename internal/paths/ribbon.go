package paths

import (
	"github.com/Faultbox/midgard-village/internal/mesh"
	"github.com/Faultbox/midgard-village/internal/terrain"
	"github.com/Faultbox/midgard-village/pkg/math"
)

// RibbonOptions controls ribbon mesh assembly.
type RibbonOptions struct {
	Name     string
	Width    float32 // Full ribbon width; vertices sit half of it either side
	StepSize float32 // Growth step, used for the U texture coordinate
	Offset   float32 // Lift above the surface for re-projected vertices
}

// BuildRibbon turns every chain of a corrected forest into a quad strip and
// returns them combined in one mesh. A chain with E edges contributes
// 2(E+1) vertices and 2E triangles; chains without edges are skipped.
//
// V is 1 on the tangent side and 0 on the reverse side. U runs along the
// chain as sequenceIndex * stepSize / width.
func BuildRibbon(f *Forest, s terrain.Surface, opts RibbonOptions) (*mesh.Mesh, error) {
	if !f.corrected {
		return nil, ErrNotCorrected
	}

	m := mesh.New(opts.Name)
	if opts.Width <= 0 {
		return m, nil
	}
	half := opts.Width * 0.5

	for _, chain := range f.Chains {
		if len(chain.Edges) == 0 {
			continue
		}

		base := uint32(m.VertexCount())
		addRibbonPair(m, s, chain.Edges[0].Start, half, 0, opts.Offset)

		for k, e := range chain.Edges {
			u := float32(e.End.SequenceIndex) * opts.StepSize / opts.Width
			addRibbonPair(m, s, e.End, half, u, opts.Offset)

			i := base + uint32(2*k)
			m.AddTriangle(i, i+1, i+2)
			m.AddTriangle(i+1, i+3, i+2)
		}
	}

	return m, nil
}

// addRibbonPair emits the tangent-side and reverse-side vertices for v.
func addRibbonPair(m *mesh.Mesh, s terrain.Surface, v *Vertex, half, u, offset float32) {
	left := terrain.Project(s, v.Position.Add(v.Tangent().Scale(half)), offset)
	right := terrain.Project(s, v.Position.Add(v.ReverseTangent().Scale(half)), offset)

	m.AddVertex(left, terrain.NormalAt(s, left), math.Vec2{X: u, Y: 1})
	m.AddVertex(right, terrain.NormalAt(s, right), math.Vec2{X: u, Y: 0})
}
