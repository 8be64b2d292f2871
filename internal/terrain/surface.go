// Package terrain provides the ground surface that paths and houses are laid on.
package terrain

import "github.com/Faultbox/midgard-village/pkg/math"

// Surface answers height and normal queries at world X/Z coordinates.
type Surface interface {
	Height(x, z float32) float32
	Normal(x, z float32) math.Vec3
}

// Flat is a level surface at height Y.
type Flat struct {
	Y float32
}

// Height implements Surface.
func (f Flat) Height(x, z float32) float32 { return f.Y }

// Normal implements Surface.
func (f Flat) Normal(x, z float32) math.Vec3 { return math.Up }

// Project drops p onto the surface, lifted by offset.
func Project(s Surface, p math.Vec3, offset float32) math.Vec3 {
	p.Y = s.Height(p.X, p.Z) + offset
	return p
}

// NormalAt returns the surface normal under p.
func NormalAt(s Surface, p math.Vec3) math.Vec3 {
	return s.Normal(p.X, p.Z)
}

// SlopeLimit returns a predicate accepting points whose ground normal is
// at least minUpDot aligned with up. A dot of 0.7 is roughly 45 degrees.
func SlopeLimit(s Surface, minUpDot float32) func(math.Vec3) bool {
	return func(p math.Vec3) bool {
		return NormalAt(s, p).Dot(math.Up) >= minUpDot
	}
}
