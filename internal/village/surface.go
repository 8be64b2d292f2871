package village

import (
	"math/rand"

	"github.com/Faultbox/midgard-village/internal/config"
	"github.com/Faultbox/midgard-village/internal/terrain"
	"github.com/Faultbox/midgard-village/pkg/math"
)

// NewSurface builds the terrain described by cfg: a heightmap covering the
// map, layered from midpoint displacement and Perlin noise, smoothed and
// normalized. A flat config yields a level surface at height zero.
func NewSurface(cfg *config.Config) terrain.Surface {
	t := cfg.Terrain
	if t.Flat || cfg.Map.Width <= 0 || cfg.Map.Depth <= 0 {
		return terrain.Flat{}
	}

	hm := terrain.NewHeightmap(
		math.Vec2{X: cfg.Map.Origin.X, Y: cfg.Map.Origin.Z},
		math.Vec2{X: cfg.Map.Width, Y: cfg.Map.Depth},
		t.Resolution,
		t.HeightScale,
	)

	if d := t.Displacement; d.Enabled {
		hm.MidpointDisplacement(rand.New(rand.NewSource(t.Seed)), terrain.DisplacementConfig{
			HeightMin:     d.HeightMin,
			HeightMax:     d.HeightMax,
			DampenerPower: d.DampenerPower,
			Roughness:     d.Roughness,
		})
	}
	if p := t.Perlin; p.Enabled {
		hm.ApplyPerlin(terrain.PerlinConfig{
			Seed:        t.Seed,
			ScaleX:      p.ScaleX,
			ScaleZ:      p.ScaleZ,
			Octaves:     p.Octaves,
			Persistence: p.Persistence,
			HeightScale: p.Height,
		})
	}
	hm.Smooth(t.SmoothPasses)
	hm.Normalize()

	return hm
}
