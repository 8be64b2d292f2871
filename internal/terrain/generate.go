package terrain

import (
	"math"
	"math/rand"

	"github.com/aquilax/go-perlin"
)

// DisplacementConfig controls MidpointDisplacement.
type DisplacementConfig struct {
	HeightMin     float32 // Lower bound of the first displacement
	HeightMax     float32 // Upper bound of the first displacement
	DampenerPower float32
	Roughness     float32
}

// PerlinConfig controls ApplyPerlin.
type PerlinConfig struct {
	Seed        int64
	ScaleX      float32 // Noise frequency per sample along X
	ScaleZ      float32 // Noise frequency per sample along Z
	OffsetX     int
	OffsetZ     int
	Octaves     int
	Persistence float32
	HeightScale float32 // Normalized height added at noise amplitude 1
}

// Reset flattens the heightmap to zero.
func (h *Heightmap) Reset() {
	for i := range h.Heights {
		h.Heights[i] = 0
	}
}

// MidpointDisplacement adds fractal diamond-square displacement. The
// displacement range shrinks by DampenerPower^-Roughness per level.
// Resolution should be 2^k+1; other sizes leave the trailing samples untouched.
func (h *Heightmap) MidpointDisplacement(rng *rand.Rand, cfg DisplacementConfig) {
	width := h.Resolution - 1
	squareSize := width
	heightMin := cfg.HeightMin
	heightMax := cfg.HeightMax
	dampener := float32(math.Pow(float64(cfg.DampenerPower), -float64(cfg.Roughness)))

	rnd := func() float32 {
		return heightMin + rng.Float32()*(heightMax-heightMin)
	}

	for squareSize > 0 {
		half := squareSize / 2

		// Diamond step: centre of each square
		for x := 0; x+squareSize <= width; x += squareSize {
			for z := 0; z+squareSize <= width; z += squareSize {
				cx, cz := x+squareSize, z+squareSize
				avg := (h.At(x, z) + h.At(cx, z) + h.At(x, cz) + h.At(cx, cz)) / 4
				h.Set(x+half, z+half, avg+rnd())
			}
		}

		// Square step: edge midpoints, skipping squares touching the border
		for x := 0; x+squareSize <= width; x += squareSize {
			for z := 0; z+squareSize <= width; z += squareSize {
				cx, cz := x+squareSize, z+squareSize
				midX, midZ := x+half, z+half
				left, right := midX-squareSize, midX+squareSize
				down, up := midZ-squareSize, midZ+squareSize

				if left <= 0 || down <= 0 || right >= width-1 || up >= width-1 {
					continue
				}

				h.Set(midX, z, (h.At(midX, midZ)+h.At(x, z)+h.At(midX, down)+h.At(cx, z))/4+rnd())
				h.Set(midX, cz, (h.At(x, cz)+h.At(midX, midZ)+h.At(cx, cz)+h.At(midX, up))/4+rnd())
				h.Set(x, midZ, (h.At(x, z)+h.At(left, midZ)+h.At(x, cz)+h.At(midX, midZ))/4+rnd())
				h.Set(cx, midZ, (h.At(midX, z)+h.At(midX, midZ)+h.At(cx, cz)+h.At(right, midZ))/4+rnd())
			}
		}

		squareSize = half
		heightMin *= dampener
		heightMax *= dampener
	}
}

// ApplyPerlin adds fractal Perlin noise to every sample.
func (h *Heightmap) ApplyPerlin(cfg PerlinConfig) {
	octaves := cfg.Octaves
	if octaves < 1 {
		octaves = 1
	}
	persistence := float64(cfg.Persistence)
	if persistence <= 0 {
		persistence = 2
	}
	noise := perlin.NewPerlin(persistence, 2, int32(octaves), cfg.Seed)

	for z := 0; z < h.Resolution; z++ {
		for x := 0; x < h.Resolution; x++ {
			nx := float64(x+cfg.OffsetX) * float64(cfg.ScaleX)
			nz := float64(z+cfg.OffsetZ) * float64(cfg.ScaleZ)
			// Noise2D is roughly in [-1, 1]; remap to [0, 1]
			n := float32(noise.Noise2D(nx, nz)+1) * 0.5
			h.Set(x, z, h.At(x, z)+n*cfg.HeightScale)
		}
	}
}

// Smooth averages every sample with its neighbours, passes times.
func (h *Heightmap) Smooth(passes int) {
	next := make([]float32, len(h.Heights))
	for ; passes > 0; passes-- {
		for z := 0; z < h.Resolution; z++ {
			for x := 0; x < h.Resolution; x++ {
				var sum float32
				var count int
				for dz := -1; dz <= 1; dz++ {
					for dx := -1; dx <= 1; dx++ {
						nx, nz := x+dx, z+dz
						if nx < 0 || nz < 0 || nx >= h.Resolution || nz >= h.Resolution {
							continue
						}
						sum += h.At(nx, nz)
						count++
					}
				}
				next[z*h.Resolution+x] = sum / float32(count)
			}
		}
		copy(h.Heights, next)
	}
}

// Normalize rescales samples into [0, 1]. A flat map becomes all zero.
func (h *Heightmap) Normalize() {
	if len(h.Heights) == 0 {
		return
	}
	lo, hi := h.Heights[0], h.Heights[0]
	for _, v := range h.Heights {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	span := hi - lo
	for i, v := range h.Heights {
		if span == 0 {
			h.Heights[i] = 0
			continue
		}
		h.Heights[i] = (v - lo) / span
	}
}
