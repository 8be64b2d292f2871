package mesh

import (
	"testing"

	"github.com/Faultbox/midgard-village/pkg/math"
)

func TestMeshBuild(t *testing.T) {
	m := New("Quad")
	if !m.IsEmpty() {
		t.Fatal("new mesh should be empty")
	}

	a := m.AddVertex(math.Vec3{X: 0, Y: 1, Z: 0}, math.Up, math.Vec2{})
	b := m.AddVertex(math.Vec3{X: 2, Y: 0, Z: 0}, math.Up, math.Vec2{X: 1})
	c := m.AddVertex(math.Vec3{X: 0, Y: 0, Z: 3}, math.Up, math.Vec2{Y: 1})
	m.AddTriangle(a, b, c)

	if m.VertexCount() != 3 {
		t.Errorf("expected 3 vertices, got %d", m.VertexCount())
	}
	if m.TriangleCount() != 1 {
		t.Errorf("expected 1 triangle, got %d", m.TriangleCount())
	}
	if m.Bounds.Min != [3]float32{0, 0, 0} || m.Bounds.Max != [3]float32{2, 1, 3} {
		t.Errorf("unexpected bounds %+v", m.Bounds)
	}
	if bad := m.Validate(); bad != -1 {
		t.Errorf("index %d out of range", bad)
	}

	m.AddTriangle(a, b, 7)
	if bad := m.Validate(); bad != 5 {
		t.Errorf("expected index 5 to be out of range, got %d", bad)
	}
}
