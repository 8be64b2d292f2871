package paths

import (
	"math/rand"

	"github.com/Faultbox/midgard-village/pkg/math"
)

// DefaultMaxVertices caps the size of a forest when Params.MaxVertices is unset.
const DefaultMaxVertices = 20000

// defaultHeading is used whenever a heading degenerates to zero length.
var defaultHeading = math.Vec3{X: 1, Z: 1}.Normalize()

// Params controls path growth. Angles are in degrees.
type Params struct {
	StepSize               float32
	Inertia                float32 // 0 = follow the random turn, 1 = never turn
	CurveAngleMax          float32
	BranchProbability      float32
	BranchAngleMax         float32
	BranchDepthMax         int
	BranchProbabilityDecay float32
	WeldThreshold          float32 // Fraction of StepSize
	MaxVertices            int     // Growth stops once the forest holds this many vertices
}

// Root is the origin of a chain. A zero Heading is replaced by a random one.
type Root struct {
	Position math.Vec3
	Heading  math.Vec3
}

// Admissible accepts or rejects a candidate growth position.
type Admissible func(p math.Vec3) bool

type grower struct {
	rng        *rand.Rand
	params     Params
	bounds     Rect
	admissible Admissible
	weldDistSq float32
	forest     *Forest
	vertices   int
}

// Grow builds a forest of chains from roots. Growth proceeds in rounds: every
// vertex of the frontier tries one step, successful steps may spawn a branch,
// and the next frontier is exactly the vertices added this round.
//
// Random draws happen in a fixed order: root headings (only for roots without
// one), then per frontier vertex the turn angle, the spawn test when the step
// succeeded, and the branch side when a branch spawns.
func Grow(rng *rand.Rand, roots []Root, bounds Rect, params Params, admissible Admissible) *Forest {
	if params.MaxVertices <= 0 {
		params.MaxVertices = DefaultMaxVertices
	}
	weld := params.StepSize * params.WeldThreshold

	g := &grower{
		rng:        rng,
		params:     params,
		bounds:     bounds,
		admissible: admissible,
		weldDistSq: weld * weld,
		forest:     &Forest{},
	}

	queue := make([]*Vertex, 0, len(roots))
	for i, root := range roots {
		origin := &Vertex{
			Position:         root.Position,
			Direction:        g.rootHeading(root.Heading),
			BranchID:         i,
			SpawnProbability: params.BranchProbability,
		}
		g.forest.Chains = append(g.forest.Chains, Chain{Vertices: []*Vertex{origin}})
		g.vertices++
		queue = append(queue, origin)
	}

	// Zero step would never leave the origin and never weld.
	if params.StepSize <= 0 || bounds.Empty() {
		return g.forest
	}

	for len(queue) > 0 {
		var next []*Vertex

		for _, current := range queue {
			grown, ok := g.step(current)
			if !ok {
				continue
			}
			chain := &g.forest.Chains[current.BranchID]
			chain.Vertices = append(chain.Vertices, grown)
			chain.Edges = append(chain.Edges, Edge{Start: current, End: grown})
			g.vertices++
			next = append(next, grown)

			// The spawn test is drawn even when the depth limit already forbids a branch.
			roll := g.rng.Float32()
			if current.SpawnProbability <= 0 || roll > current.SpawnProbability ||
				current.BranchDepth >= params.BranchDepthMax {
				continue
			}
			if first, ok := g.spawn(current); ok {
				next = append(next, first)
			}
		}

		queue = next
	}

	return g.forest
}

// rootHeading normalizes a supplied heading onto the ground plane, or draws
// one from {-1, 0} per axis.
func (g *grower) rootHeading(h math.Vec3) math.Vec3 {
	if h = h.Flatten().Normalize(); !h.IsZero() {
		return h
	}
	x := float32(g.rng.Intn(2) - 1)
	z := float32(g.rng.Intn(2) - 1)
	return headingOr(math.Vec3{X: x, Z: z}.Normalize(), defaultHeading)
}

// step proposes the next vertex of current's chain.
func (g *grower) step(current *Vertex) (*Vertex, bool) {
	angle := (g.rng.Float32()*2 - 1) * g.params.CurveAngleMax
	turned := current.Direction.RotateY(math.Radians(angle))

	inertia := g.params.Inertia
	dir := current.Direction.Scale(inertia).Add(turned.Scale(1 - inertia)).Normalize()
	dir = headingOr(dir, current.Direction)

	next := &Vertex{
		Position:         current.Position.Add(dir.Scale(g.params.StepSize)),
		Direction:        dir,
		BranchID:         current.BranchID,
		SequenceIndex:    current.SequenceIndex + 1,
		BranchDepth:      current.BranchDepth,
		SpawnProbability: current.SpawnProbability,
	}
	if !g.accept(next, 1, current.BranchID) {
		return nil, false
	}
	return next, true
}

// spawn tries to start a new chain at current, turned hard left or right.
// Nothing is committed unless the first step succeeds.
func (g *grower) spawn(current *Vertex) (*Vertex, bool) {
	id := len(g.forest.Chains)
	depth := current.BranchDepth + 1
	prob := current.SpawnProbability * g.params.BranchProbabilityDecay

	side := float32(1)
	if g.rng.Float32()*2-1 < 0 {
		side = -1
	}
	dir := current.Direction.RotateY(math.Radians(side * g.params.BranchAngleMax)).Normalize()
	dir = headingOr(dir, current.Direction)

	first := &Vertex{
		Position:         current.Position.Add(dir.Scale(g.params.StepSize)),
		Direction:        dir,
		BranchID:         id,
		SequenceIndex:    1,
		BranchDepth:      depth,
		SpawnProbability: prob,
	}
	if !g.accept(first, 2, current.BranchID) {
		return nil, false
	}

	origin := &Vertex{
		Position:         current.Position,
		Direction:        first.Direction,
		BranchID:         id,
		BranchDepth:      depth,
		SpawnProbability: prob,
	}
	g.forest.Chains = append(g.forest.Chains, Chain{
		Vertices: []*Vertex{origin, first},
		Edges:    []Edge{{Start: origin, End: first}},
	})
	g.vertices += 2
	return first, true
}

// accept runs the bounds, capacity, admissibility and weld checks. adding is
// the number of vertices the caller will commit on success; from is the chain
// doing the growing (the parent, for a branch spawn).
func (g *grower) accept(v *Vertex, adding, from int) bool {
	if !g.bounds.Contains(v.Position) {
		return false
	}
	if g.vertices+adding > g.params.MaxVertices {
		return false
	}
	if g.admissible != nil && !g.admissible(v.Position) {
		return false
	}
	if target := g.weldTarget(v); target != nil {
		// The candidate would snap onto target; the chain ends here instead.
		g.forest.Welds = append(g.forest.Welds, Weld{BranchID: from, Candidate: v.Position, Target: target})
		return false
	}
	return true
}

// weldTarget returns the first vertex of another chain closer than the weld distance.
func (g *grower) weldTarget(v *Vertex) *Vertex {
	for b := range g.forest.Chains {
		if b == v.BranchID {
			continue
		}
		for _, other := range g.forest.Chains[b].Vertices {
			if other.Position.DistanceSq(v.Position) < g.weldDistSq {
				return other
			}
		}
	}
	return nil
}

// headingOr returns h, or fallback when h is zero or not finite.
func headingOr(h, fallback math.Vec3) math.Vec3 {
	if !h.IsZero() && h.IsFinite() {
		return h
	}
	if !fallback.IsZero() && fallback.IsFinite() {
		return fallback
	}
	return defaultHeading
}
