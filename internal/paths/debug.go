package paths

import "github.com/Faultbox/midgard-village/pkg/math"

// DebugVertex is one end of an overlay line.
type DebugVertex struct {
	Position math.Vec3
	Color    [3]float32
}

var (
	edgeColor      = [3]float32{1, 1, 1}
	normalColor    = [3]float32{0, 1, 0}
	directionColor = [3]float32{0, 0, 1}
	tangentColor   = [3]float32{1, 0, 0}
)

// DebugLines returns line-list vertices (two per line) showing every edge
// centerline and, per vertex, rays of rayLength along the normal, the
// direction and the tangent.
func DebugLines(f *Forest, rayLength float32) []DebugVertex {
	if f == nil {
		return nil
	}

	var lines []DebugVertex
	ray := func(from, dir math.Vec3, color [3]float32) {
		if dir.IsZero() {
			return
		}
		lines = append(lines,
			DebugVertex{from, color},
			DebugVertex{from.Add(dir.Scale(rayLength)), color},
		)
	}

	for _, chain := range f.Chains {
		for _, e := range chain.Edges {
			lines = append(lines,
				DebugVertex{e.Start.Position, edgeColor},
				DebugVertex{e.End.Position, edgeColor},
			)
		}
		for _, v := range chain.Vertices {
			ray(v.Position, v.Normal, normalColor)
			ray(v.Position, v.Direction, directionColor)
			ray(v.Position, v.Tangent(), tangentColor)
		}
	}

	return lines
}
