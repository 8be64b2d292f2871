package math

import "testing"

func TestFromBasisDirection(t *testing.T) {
	m := FromBasis(Vec3{10, 20, 30}, Vec3{0, 0, 1}, Up, Vec3{-1, 0, 0})

	// Directions ignore translation
	if d := m.TransformDirection(Vec3{1, 0, 0}); d != (Vec3{0, 0, 1}) {
		t.Errorf("TransformDirection(X) = %v, want (0,0,1)", d)
	}
	if d := m.TransformDirection(Vec3{0, 0, 2}); d != (Vec3{-2, 0, 0}) {
		t.Errorf("TransformDirection(2Z) = %v, want (-2,0,0)", d)
	}
}

func TestFromBasis(t *testing.T) {
	origin := Vec3{5, 1, 5}
	right := Vec3{0, 0, 1}
	forward := Vec3{-1, 0, 0}
	m := FromBasis(origin, right, Up, forward)

	got := m.TransformPoint(Vec3{2, 0, 3})
	want := Vec3{2, 1, 7}
	if got != want {
		t.Errorf("TransformPoint() = %v, want %v", got, want)
	}
}
