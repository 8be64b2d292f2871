// Package village regenerates a whole village: the river network, the road
// network, bridges where roads cross rivers, and houses placed along both
// networks and around random foci.
package village

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-village/internal/config"
	"github.com/Faultbox/midgard-village/internal/logger"
	"github.com/Faultbox/midgard-village/internal/paths"
	"github.com/Faultbox/midgard-village/internal/terrain"
	"github.com/Faultbox/midgard-village/pkg/math"
)

// debugRayLength matches the overlay ray length of the editor gizmos.
const debugRayLength = 5

// Bridge is a road edge whose ribbon crosses the river network.
type Bridge struct {
	Branch int // Road chain holding the edge
	Edge   paths.Edge
}

// Overlay is a debug line list for one network.
type Overlay struct {
	Network string
	Lines   []paths.DebugVertex
}

// Village is the result of one generation run. Nothing is shared between runs.
type Village struct {
	Bounds   paths.Rect
	Rivers   *paths.Network
	Roads    *paths.Network
	Bridges  []Bridge
	Houses   []*House
	Foci     []math.Vec3
	Rejected map[Rejection]int
	Overlays []Overlay
}

// Generate builds a village over surface from scratch. Rivers come first, then
// roads, bridges and houses; each stage draws from its own seeded generator.
func Generate(cfg *config.Config, surface terrain.Surface) (*Village, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := logger.Named("village")

	v := &Village{
		Bounds: paths.NewRect(
			math.Vec2{X: cfg.Map.Origin.X, Y: cfg.Map.Origin.Z},
			math.Vec2{X: cfg.Map.Width, Y: cfg.Map.Depth},
		),
		Rejected: make(map[Rejection]int),
	}
	offset := cfg.Terrain.SurfaceOffset

	var err error
	v.Rivers, err = v.buildNetwork(log, "rivers", cfg.Rivers, surface, offset)
	if err != nil {
		return nil, err
	}
	v.Roads, err = v.buildNetwork(log, "roads", cfg.Roads, surface, offset)
	if err != nil {
		return nil, err
	}

	v.Bridges = findBridges(v.Rivers, v.Roads)

	p := newPlacer(cfg.Houses, surface, offset, v)
	p.alongNetwork(v.Rivers)
	p.alongNetwork(v.Roads)
	p.aroundFoci()

	log.Info("village generated",
		zap.Int("houses", len(v.Houses)),
		zap.Int("bridges", len(v.Bridges)),
		zap.Any("rejected", v.Rejected),
	)
	return v, nil
}

// buildNetwork grows, drapes and meshes one path network.
func (v *Village) buildNetwork(log *zap.Logger, name string, gc config.GeneratorConfig, surface terrain.Surface, offset float32) (*paths.Network, error) {
	rng := rand.New(rand.NewSource(gc.Seed))

	roots := make([]paths.Root, len(gc.Origins))
	for i, o := range gc.Origins {
		roots[i] = paths.Root{
			Position: math.Vec3{X: o.Position.X, Z: o.Position.Z},
			Heading:  math.Vec3{X: o.Heading.X, Z: o.Heading.Z},
		}
	}

	var admissible paths.Admissible
	if gc.MinUpDot > 0 {
		admissible = terrain.SlopeLimit(surface, gc.MinUpDot)
	}

	forest := paths.Grow(rng, roots, v.Bounds, paths.Params{
		StepSize:               gc.StepSize,
		Inertia:                gc.Inertia,
		CurveAngleMax:          gc.CurveAngleMax,
		BranchProbability:      gc.BranchProbability,
		BranchAngleMax:         gc.BranchAngleMax,
		BranchDepthMax:         gc.BranchDepthMax,
		BranchProbabilityDecay: gc.BranchProbabilityDecay,
		WeldThreshold:          gc.WeldThreshold,
		MaxVertices:            gc.MaxVertices,
	}, admissible)

	if err := forest.Correct(surface, offset); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	mesh, err := paths.BuildRibbon(forest, surface, paths.RibbonOptions{
		Name:     name,
		Width:    gc.Width,
		StepSize: gc.StepSize,
		Offset:   offset,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	n := &paths.Network{Name: name, Forest: forest, Width: gc.Width, Mesh: mesh}

	log.Info("network grown",
		zap.String("network", name),
		zap.Int("chains", len(forest.Chains)),
		zap.Int("vertices", forest.VertexCount()),
		zap.Int("edges", forest.EdgeCount()),
		zap.Int("welds", len(forest.Welds)),
		zap.Int("triangles", mesh.TriangleCount()),
	)
	if mesh.IsEmpty() {
		log.Warn("network produced no geometry", zap.String("network", name))
	}

	if gc.ShowDebug {
		for b, c := range forest.Chains {
			log.Debug("chain",
				zap.String("network", name),
				zap.Int("branch", b),
				zap.Int("depth", c.Vertices[0].BranchDepth),
				zap.Int("edges", len(c.Edges)),
			)
		}
		v.Overlays = append(v.Overlays, Overlay{Network: name, Lines: paths.DebugLines(forest, debugRayLength)})
	}

	return n, nil
}

// findBridges returns every road edge whose ribbon crosses the rivers.
func findBridges(rivers, roads *paths.Network) []Bridge {
	var bridges []Bridge
	roads.Edges(func(branch int, e paths.Edge) bool {
		if rivers.IntersectsPath(e, roads.Width) {
			bridges = append(bridges, Bridge{Branch: branch, Edge: e})
		}
		return true
	})
	return bridges
}
