package village

import (
	stdmath "math"
	"math/rand"

	"github.com/Faultbox/midgard-village/internal/config"
	"github.com/Faultbox/midgard-village/internal/house"
	"github.com/Faultbox/midgard-village/internal/paths"
	"github.com/Faultbox/midgard-village/internal/terrain"
	"github.com/Faultbox/midgard-village/pkg/math"
)

// sideOffset places along-path houses this many path widths from the centerline.
const sideOffset = 0.6

// Rejection is why a house candidate was dropped.
type Rejection string

const (
	TooSteep    Rejection = "steep"
	OutOfBounds Rejection = "out_of_bounds"
	OnPath      Rejection = "on_path"
	Crowded     Rejection = "crowded"
	CrossesPath Rejection = "crosses_path"
)

type placer struct {
	cfg      config.HouseConfig
	surface  terrain.Surface
	offset   float32
	rng      *rand.Rand
	village  *Village
	networks []*paths.Network
}

func newPlacer(cfg config.HouseConfig, surface terrain.Surface, offset float32, v *Village) *placer {
	return &placer{
		cfg:      cfg,
		surface:  surface,
		offset:   offset,
		rng:      rand.New(rand.NewSource(cfg.Seed)),
		village:  v,
		networks: []*paths.Network{v.Rivers, v.Roads},
	}
}

// alongNetwork tries a pair of houses, one either side, beside some edges of
// every chain, each facing away from the path.
func (p *placer) alongNetwork(n *paths.Network) {
	src := AlongRoad
	if n == p.village.Rivers {
		src = AlongRiver
	}

	n.Edges(func(_ int, e paths.Edge) bool {
		if p.rng.Float32() >= p.cfg.Probability {
			return true
		}
		mid := e.Midpoint()
		up := e.Normal()
		for _, side := range []math.Vec3{e.Tangent(), e.ReverseTangent()} {
			p.try(mid.Add(side.Scale(n.Width*sideOffset)), side, up, src)
		}
		return true
	})
}

// aroundFoci scatters houses within a radius of random points on the map.
func (p *placer) aroundFoci() {
	b := p.village.Bounds
	for i := 0; i < p.cfg.Foci.Count; i++ {
		focus := math.Vec3{
			X: b.Min.X + p.rng.Float32()*(b.Max.X-b.Min.X),
			Z: b.Min.Y + p.rng.Float32()*(b.Max.Y-b.Min.Y),
		}
		focus = terrain.Project(p.surface, focus, p.offset)
		p.village.Foci = append(p.village.Foci, focus)

		for j := 0; j < p.cfg.Foci.Attempts; j++ {
			if p.rng.Float32() >= p.cfg.Probability {
				continue
			}
			point := focus.Add(p.insideCircle(p.cfg.Foci.Radius))
			if !b.Contains(point) {
				p.village.Rejected[OutOfBounds]++
				continue
			}
			point = terrain.Project(p.surface, point, p.offset)
			away := point.Sub(focus).Flatten().Normalize()
			p.try(point, away, terrain.NormalAt(p.surface, point), AroundFocus)
		}
	}
}

// insideCircle returns a uniformly distributed ground offset within radius.
func (p *placer) insideCircle(radius float32) math.Vec3 {
	r := radius * float32(stdmath.Sqrt(float64(p.rng.Float32())))
	theta := p.rng.Float64() * 2 * stdmath.Pi
	return math.Vec3{
		X: r * float32(stdmath.Cos(theta)),
		Z: r * float32(stdmath.Sin(theta)),
	}
}

// try builds a house with its lattice origin at point, growing lengthwise
// away from the path and breadthwise along it, and keeps it when nothing
// rejects it.
func (p *placer) try(point, away, up math.Vec3, src Source) *House {
	up = up.Normalize()
	if up.Dot(math.Up) < p.cfg.MinUpDot {
		p.village.Rejected[TooSteep]++
		return nil
	}

	length := 1 + p.rng.Intn(p.cfg.Length)
	breadth := 1 + p.rng.Intn(p.cfg.Breadth)
	plan := house.Generate(rand.New(rand.NewSource(p.rng.Int63())), length, breadth, p.cfg.GrowthProbability)

	lengthwise := away.Sub(up.Scale(away.Dot(up))).Normalize()
	if lengthwise.IsZero() {
		lengthwise = math.Vec3{X: 1}
	}
	breadthwise := lengthwise.Cross(up).Normalize()
	transform := math.FromBasis(terrain.Project(p.surface, point, p.offset), lengthwise, up, breadthwise)

	h := newHouse(len(p.village.Houses), src, plan, p.cfg.TileSize, transform)
	if reason, ok := p.reject(h); ok {
		p.village.Rejected[reason]++
		return nil
	}

	p.village.Houses = append(p.village.Houses, h)
	return h
}

func (p *placer) reject(h *House) (Rejection, bool) {
	for _, c := range h.Corners() {
		if !p.village.Bounds.Contains(c) {
			return OutOfBounds, true
		}
		for _, n := range p.networks {
			if n.Covers(c) {
				return OnPath, true
			}
		}
	}

	clearance := p.cfg.Clearance * p.cfg.TileSize
	for _, other := range p.village.Houses {
		if h.near(other, clearance) {
			return Crowded, true
		}
	}

	for _, wall := range h.Outline() {
		for _, n := range p.networks {
			if n.IntersectsPath(wall, 0) {
				return CrossesPath, true
			}
		}
	}
	return "", false
}
