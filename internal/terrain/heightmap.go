package terrain

import (
	"github.com/Faultbox/midgard-village/pkg/math"
)

// Heightmap is a square grid of height samples covering a rectangle of the
// ground plane. Samples are normalized; world height is sample * Scale.
type Heightmap struct {
	Origin     math.Vec2 // World X/Z of sample (0,0)
	Size       math.Vec2 // World extent along X and Z
	Resolution int       // Samples per side
	Scale      float32   // World height of a sample value of 1
	Heights    []float32 // Row-major [z*Resolution + x]
}

// NewHeightmap creates a flat heightmap. resolution is clamped to at least 2.
func NewHeightmap(origin, size math.Vec2, resolution int, scale float32) *Heightmap {
	if resolution < 2 {
		resolution = 2
	}
	return &Heightmap{
		Origin:     origin,
		Size:       size,
		Resolution: resolution,
		Scale:      scale,
		Heights:    make([]float32, resolution*resolution),
	}
}

// At returns the normalized sample at grid coordinates, clamped to the grid.
func (h *Heightmap) At(x, z int) float32 {
	x = clampi(x, 0, h.Resolution-1)
	z = clampi(z, 0, h.Resolution-1)
	return h.Heights[z*h.Resolution+x]
}

// Set writes a normalized sample. Out of range coordinates are ignored.
func (h *Heightmap) Set(x, z int, v float32) {
	if x < 0 || z < 0 || x >= h.Resolution || z >= h.Resolution {
		return
	}
	h.Heights[z*h.Resolution+x] = v
}

// cellSize returns the world size of one grid cell along X and Z.
func (h *Heightmap) cellSize() (float32, float32) {
	n := float32(h.Resolution - 1)
	return h.Size.X / n, h.Size.Y / n
}

// cell converts world X/Z to a cell index and the fractional position inside it.
func (h *Heightmap) cell(worldX, worldZ float32) (int, int, float32, float32) {
	cw, cd := h.cellSize()
	var fx, fz float32
	if cw > 0 {
		fx = (worldX - h.Origin.X) / cw
	}
	if cd > 0 {
		fz = (worldZ - h.Origin.Y) / cd
	}

	cx := clampi(int(fx), 0, h.Resolution-2)
	cz := clampi(int(fz), 0, h.Resolution-2)

	return cx, cz, clampf(fx-float32(cx), 0, 1), clampf(fz-float32(cz), 0, 1)
}

// Height returns the bilinearly interpolated world height at worldX, worldZ.
// Positions outside the grid take the height of the nearest edge.
func (h *Heightmap) Height(worldX, worldZ float32) float32 {
	cx, cz, fracX, fracZ := h.cell(worldX, worldZ)

	// South edge (lower Z): lerp between SW and SE
	south := h.At(cx, cz)*(1-fracX) + h.At(cx+1, cz)*fracX
	// North edge (higher Z)
	north := h.At(cx, cz+1)*(1-fracX) + h.At(cx+1, cz+1)*fracX

	return (south*(1-fracZ) + north*fracZ) * h.Scale
}

// Normal returns the interpolated unit surface normal at worldX, worldZ.
func (h *Heightmap) Normal(worldX, worldZ float32) math.Vec3 {
	cx, cz, fracX, fracZ := h.cell(worldX, worldZ)

	south := h.sampleNormal(cx, cz).Lerp(h.sampleNormal(cx+1, cz), fracX)
	north := h.sampleNormal(cx, cz+1).Lerp(h.sampleNormal(cx+1, cz+1), fracX)

	n := south.Lerp(north, fracZ).Normalize()
	if n.IsZero() {
		return math.Up
	}
	return n
}

// sampleNormal computes the normal at a grid sample from central differences.
func (h *Heightmap) sampleNormal(x, z int) math.Vec3 {
	cw, cd := h.cellSize()
	if cw == 0 || cd == 0 {
		return math.Up
	}

	dx := (h.At(x+1, z) - h.At(x-1, z)) * h.Scale / (2 * cw)
	dz := (h.At(x, z+1) - h.At(x, z-1)) * h.Scale / (2 * cd)

	return math.Vec3{X: -dx, Y: 1, Z: -dz}.Normalize()
}

func clampi(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
