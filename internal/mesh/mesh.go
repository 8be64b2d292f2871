// Package mesh holds triangle mesh data ready for rendering or collision.
package mesh

import "github.com/Faultbox/midgard-village/pkg/math"

// Vertex represents a mesh vertex with all attributes.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Mesh is an indexed triangle list.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// New creates an empty named mesh.
func New(name string) *Mesh {
	return &Mesh{
		Name: name,
		Bounds: Bounds{
			Min: [3]float32{1e10, 1e10, 1e10},
			Max: [3]float32{-1e10, -1e10, -1e10},
		},
	}
}

// AddVertex appends a vertex and returns its index.
func (m *Mesh) AddVertex(pos, normal math.Vec3, uv math.Vec2) uint32 {
	idx := uint32(len(m.Vertices))
	p := pos.Array()
	m.Vertices = append(m.Vertices, Vertex{
		Position: p,
		Normal:   normal.Array(),
		TexCoord: [2]float32{uv.X, uv.Y},
	})
	for i := 0; i < 3; i++ {
		m.Bounds.Min[i] = min(m.Bounds.Min[i], p[i])
		m.Bounds.Max[i] = max(m.Bounds.Max[i], p[i])
	}
	return idx
}

// AddTriangle appends one triangle.
func (m *Mesh) AddTriangle(a, b, c uint32) {
	m.Indices = append(m.Indices, a, b, c)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Validate reports the first index that falls outside the vertex array, or -1.
func (m *Mesh) Validate() int {
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			return i
		}
	}
	return -1
}
