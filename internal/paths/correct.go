package paths

import (
	"github.com/Faultbox/midgard-village/internal/terrain"
	"github.com/Faultbox/midgard-village/pkg/math"
)

// DefaultSurfaceOffset lifts corrected vertices slightly above the ground so
// ribbons do not z-fight with the terrain.
const DefaultSurfaceOffset = 0.09

// Correct drapes every vertex over the surface. Each vertex takes the surface
// normal and height (plus offset); every vertex after a chain's first is
// re-aimed at itself from its predecessor. Correct may run only once.
func (f *Forest) Correct(s terrain.Surface, offset float32) error {
	if f.corrected {
		return ErrAlreadyCorrected
	}

	for _, chain := range f.Chains {
		for i, v := range chain.Vertices {
			v.Normal = terrain.NormalAt(s, v.Position)
			v.Position = terrain.Project(s, v.Position, offset)
			if i == 0 {
				continue
			}
			prev := chain.Vertices[i-1]
			v.Direction = headingOr(v.Position.Sub(prev.Position).Normalize(), v.Direction)
		}
	}

	f.corrected = true
	return nil
}

// lateral returns the left and right offset directions at v. Once a normal is
// assigned these are the vertex tangents; before that the heading is turned a
// quarter turn either way about up.
func lateral(v *Vertex) (left, right math.Vec3) {
	if !v.Normal.IsZero() {
		if t := v.Tangent(); !t.IsZero() {
			return t, v.ReverseTangent()
		}
	}
	quarter := math.Radians(90)
	return v.Direction.RotateY(quarter), v.Direction.RotateY(-quarter)
}
