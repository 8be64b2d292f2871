package paths

import (
	stdmath "math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/midgard-village/pkg/math"
)

func straightParams() Params {
	return Params{
		StepSize:               10,
		Inertia:                1,
		CurveAngleMax:          0,
		BranchProbability:      0,
		BranchAngleMax:         90,
		BranchDepthMax:         3,
		BranchProbabilityDecay: 0.5,
		WeldThreshold:          0.5,
	}
}

func villageParams() Params {
	return Params{
		StepSize:               20,
		Inertia:                0.8,
		CurveAngleMax:          10,
		BranchProbability:      0.3,
		BranchAngleMax:         90,
		BranchDepthMax:         3,
		BranchProbabilityDecay: 0.5,
		WeldThreshold:          0.5,
	}
}

var (
	plusX      = math.Vec3{X: 1}
	villageMap = NewRect(math.Vec2{}, math.Vec2{X: 600, Y: 600})
)

func growVillage(seed int64) *Forest {
	roots := []Root{
		{Position: math.Vec3{X: 300, Z: 300}},
		{Position: math.Vec3{X: 100, Z: 500}, Heading: plusX},
	}
	return Grow(rand.New(rand.NewSource(seed)), roots, villageMap, villageParams(), nil)
}

func positions(f *Forest) [][]math.Vec3 {
	out := make([][]math.Vec3, len(f.Chains))
	for i, c := range f.Chains {
		for _, v := range c.Vertices {
			out[i] = append(out[i], v.Position)
		}
	}
	return out
}

func TestGrowStraightLine(t *testing.T) {
	bounds := Rect{Min: math.Vec2{X: 0, Y: -50}, Max: math.Vec2{X: 100, Y: 50}}
	f := Grow(rand.New(rand.NewSource(42)), []Root{{Heading: plusX}}, bounds, straightParams(), nil)

	require.Len(t, f.Chains, 1)
	chain := f.Chains[0]
	require.Len(t, chain.Vertices, 11)
	require.Len(t, chain.Edges, 10)

	for i, v := range chain.Vertices {
		assert.InDelta(t, float32(i*10), v.Position.X, 1e-4, "vertex %d", i)
		assert.InDelta(t, 0, v.Position.Z, 1e-4, "vertex %d", i)
		assert.Equal(t, i, v.SequenceIndex)
	}
	for _, e := range chain.Edges {
		assert.InDelta(t, 10, e.Length(), 1e-4)
	}
	assert.Empty(t, f.Welds)
}

func TestGrowDeterministic(t *testing.T) {
	a := growVillage(293744)
	b := growVillage(293744)

	require.Equal(t, a.VertexCount(), b.VertexCount())
	require.Equal(t, len(a.Chains), len(b.Chains))
	assert.Equal(t, positions(a), positions(b))
	assert.Greater(t, len(a.Chains), 2, "expected branches with a high branch probability")
}

func TestGrowSeedsDiffer(t *testing.T) {
	assert.NotEqual(t, positions(growVillage(1)), positions(growVillage(2)))
}

func TestGrowInvariants(t *testing.T) {
	params := villageParams()
	weld := params.StepSize * params.WeldThreshold

	for _, seed := range []int64{1, 7, 42, 293744} {
		f := growVillage(seed)

		for b, chain := range f.Chains {
			require.NotEmpty(t, chain.Vertices)
			require.Len(t, chain.Edges, len(chain.Vertices)-1)

			for k, v := range chain.Vertices {
				assert.True(t, villageMap.Contains(v.Position), "seed %d: vertex outside map", seed)
				assert.Equal(t, k, v.SequenceIndex)
				assert.Equal(t, b, v.BranchID)
				assert.LessOrEqual(t, v.BranchDepth, params.BranchDepthMax)
				assert.InDelta(t, 1, v.Direction.Length(), 1e-4)
			}
			for k, e := range chain.Edges {
				assert.Same(t, chain.Vertices[k], e.Start)
				assert.Same(t, chain.Vertices[k+1], e.End)
				if k+1 < len(chain.Edges) {
					assert.Same(t, e.End, chain.Edges[k+1].Start)
				}
			}
		}

		// Grown vertices of different chains never sit inside the weld radius.
		for a := range f.Chains {
			for b := a + 1; b < len(f.Chains); b++ {
				for _, va := range f.Chains[a].Vertices[1:] {
					for _, vb := range f.Chains[b].Vertices[1:] {
						assert.GreaterOrEqual(t, va.Position.Distance(vb.Position), weld-1e-3)
					}
				}
			}
		}

		for _, w := range f.Welds {
			assert.Less(t, w.Candidate.Distance(w.Target.Position), weld)
		}
	}
}

func TestGrowWeldStopsSecondChain(t *testing.T) {
	params := straightParams()
	gap := params.StepSize * params.WeldThreshold * 0.5
	roots := []Root{
		{Position: math.Vec3{}, Heading: plusX},
		{Position: math.Vec3{Z: gap}, Heading: plusX},
	}
	bounds := Rect{Min: math.Vec2{X: -50, Y: -50}, Max: math.Vec2{X: 100, Y: 50}}

	f := Grow(rand.New(rand.NewSource(42)), roots, bounds, params, nil)

	require.Len(t, f.Chains, 2)
	assert.Len(t, f.Chains[0].Vertices, 11)
	assert.Len(t, f.Chains[1].Vertices, 1)
	assert.Empty(t, f.Chains[1].Edges)

	require.NotEmpty(t, f.Welds)
	assert.Equal(t, 1, f.Welds[0].BranchID)
	assert.Same(t, f.Chains[0].Vertices[1], f.Welds[0].Target)
}

func TestGrowDepthZeroNeverBranches(t *testing.T) {
	params := villageParams()
	params.BranchProbability = 0.5
	params.BranchDepthMax = 0

	roots := []Root{{Position: math.Vec3{X: 300, Z: 300}}, {Position: math.Vec3{X: 50, Z: 50}}}
	f := Grow(rand.New(rand.NewSource(9)), roots, villageMap, params, nil)

	assert.Len(t, f.Chains, len(roots))
}

func TestGrowDegenerateInput(t *testing.T) {
	roots := []Root{{Heading: plusX}, {Position: math.Vec3{X: 5, Z: 5}}}

	tests := []struct {
		name   string
		bounds Rect
		step   float32
	}{
		{"zero step", villageMap, 0},
		{"negative step", villageMap, -3},
		{"zero map", NewRect(math.Vec2{}, math.Vec2{}), 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := villageParams()
			params.StepSize = tt.step
			f := Grow(rand.New(rand.NewSource(1)), roots, tt.bounds, params, nil)

			require.Len(t, f.Chains, len(roots))
			for _, c := range f.Chains {
				assert.Len(t, c.Vertices, 1)
				assert.Empty(t, c.Edges)
			}
		})
	}
}

func TestGrowAdmissibility(t *testing.T) {
	calls := 0
	reject := func(math.Vec3) bool {
		calls++
		return false
	}

	f := Grow(rand.New(rand.NewSource(3)), []Root{{Heading: plusX}}, villageMap, straightParams(), reject)

	assert.Equal(t, 1, f.VertexCount())
	assert.Equal(t, 1, calls)
}

func TestGrowMaxVertices(t *testing.T) {
	params := straightParams()
	params.MaxVertices = 5

	f := Grow(rand.New(rand.NewSource(42)), []Root{{Heading: plusX}}, villageMap, params, nil)

	assert.Equal(t, 5, f.VertexCount())
}

func TestGrowRandomRootHeading(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		f := Grow(rand.New(rand.NewSource(seed)), []Root{{}}, villageMap, straightParams(), nil)
		dir := f.Chains[0].Vertices[0].Direction

		assert.InDelta(t, 1, dir.Length(), 1e-5)
		assert.Zero(t, dir.Y)
		assert.LessOrEqual(t, dir.X, float32(0.71))
		assert.LessOrEqual(t, dir.Z, float32(0.71))
	}
}

func TestGrowRootHeadingFlattened(t *testing.T) {
	f := Grow(rand.New(rand.NewSource(1)), []Root{{Heading: math.Vec3{X: 3, Y: 4}}}, villageMap, straightParams(), nil)

	assert.Equal(t, plusX, f.Chains[0].Vertices[0].Direction)
}

func TestHeadingOr(t *testing.T) {
	nan := float32(stdmath.NaN())
	assert.Equal(t, plusX, headingOr(plusX, math.Vec3{Z: 1}))
	assert.Equal(t, math.Vec3{Z: 1}, headingOr(math.Vec3{}, math.Vec3{Z: 1}))
	assert.Equal(t, math.Vec3{Z: 1}, headingOr(math.Vec3{X: nan}, math.Vec3{Z: 1}))
	assert.Equal(t, defaultHeading, headingOr(math.Vec3{}, math.Vec3{}))
}

// TestGrowReference pins the forest grown from seed 1. Any change to the
// order of random draws (turn angle, spawn roll, branch side) moves it.
func TestGrowReference(t *testing.T) {
	params := Params{
		StepSize:               10,
		Inertia:                0.5,
		CurveAngleMax:          10,
		BranchProbability:      0.5,
		BranchAngleMax:         90,
		BranchDepthMax:         2,
		BranchProbabilityDecay: 0.5,
		WeldThreshold:          0.5,
	}
	bounds := Rect{Min: math.Vec2{X: -60, Y: -60}, Max: math.Vec2{X: 60, Y: 60}}
	f := Grow(rand.New(rand.NewSource(1)), []Root{{Heading: plusX}}, bounds, params, nil)

	want := []struct {
		vertices int
		depth    int
		prob     float32
		origin   math.Vec3
		last     math.Vec3
	}{
		{7, 0, 0.5, math.Vec3{}, math.Vec3{X: 59.911636, Z: -2.795448}},
		{7, 1, 0.25, math.Vec3{X: 9.998332, Z: -0.182656}, math.Vec3{X: 5.120679, Z: 59.516823}},
		{7, 1, 0.25, math.Vec3{X: 19.987293, Z: -0.652362}, math.Vec3{X: 19.189394, Z: 59.307781}},
		{6, 1, 0.25, math.Vec3{X: 39.921829, Z: -2.269038}, math.Vec3{X: 41.761936, Z: -52.047451}},
		{6, 1, 0.25, math.Vec3{X: 49.911980, Z: -2.712712}, math.Vec3{X: 52.011272, Z: -52.601402}},
		{5, 2, 0.125, math.Vec3{X: 19.731668, Z: 39.321480}, math.Vec3{X: 59.680748, Z: 38.002026}},
		{11, 2, 0.125, math.Vec3{X: 40.136925, Z: -42.180367}, math.Vec3{X: -59.604668, Z: -42.903290}},
	}

	require.Len(t, f.Chains, len(want))
	for i, w := range want {
		vs := f.Chains[i].Vertices
		require.Len(t, vs, w.vertices, "chain %d", i)
		assert.Equal(t, w.depth, vs[0].BranchDepth, "chain %d depth", i)
		assert.Equal(t, w.prob, vs[0].SpawnProbability, "chain %d probability", i)
		assertNear(t, w.origin, vs[0].Position, "chain %d origin", i)
		assertNear(t, w.last, vs[len(vs)-1].Position, "chain %d last", i)
	}

	assertNear(t, math.Vec3{X: 10.180988, Z: 9.815676}, f.Chains[1].Vertices[1].Position, "first branch step")

	require.Len(t, f.Welds, 2)
	assert.Equal(t, 2, f.Welds[0].BranchID)
	assert.Equal(t, 1, f.Welds[0].Target.BranchID)
	assert.Equal(t, 2, f.Welds[0].Target.SequenceIndex)
	assertNear(t, math.Vec3{X: 10.428214, Z: 19.307734}, f.Welds[0].Candidate, "first weld")
	assert.Equal(t, 1, f.Welds[1].BranchID)
	assert.Equal(t, 2, f.Welds[1].Target.BranchID)
	assert.Equal(t, 4, f.Welds[1].Target.SequenceIndex)
}

func TestGrowSpawnAlways(t *testing.T) {
	params := straightParams()
	params.BranchProbability = 1
	params.BranchDepthMax = 1
	bounds := Rect{Min: math.Vec2{X: -1, Y: -55}, Max: math.Vec2{X: 30, Y: 55}}

	f := Grow(rand.New(rand.NewSource(5)), []Root{{Heading: plusX}}, bounds, params, nil)

	// Root runs 0..30; the steps out of 0, 10 and 20 each spawn one branch.
	require.Len(t, f.Chains, 4)
	require.Len(t, f.Chains[0].Vertices, 4)
	assert.Empty(t, f.Welds)

	for b := 1; b < len(f.Chains); b++ {
		chain := f.Chains[b]
		origin, first := chain.Vertices[0], chain.Vertices[1]
		parent := f.Chains[0].Vertices[b-1]

		assert.Len(t, chain.Vertices, 6, "branch %d", b)
		assert.Same(t, origin, chain.Edges[0].Start)
		assert.Equal(t, parent.Position, origin.Position, "branch %d starts on its parent", b)
		assert.Equal(t, first.Direction, origin.Direction, "branch %d origin takes the grown heading", b)
		assert.Equal(t, parent.BranchDepth+1, origin.BranchDepth)
		assert.Equal(t, parent.SpawnProbability*params.BranchProbabilityDecay, origin.SpawnProbability)
		assert.Equal(t, 0, origin.SequenceIndex)
		assert.Equal(t, 1, first.SequenceIndex)

		assert.InDelta(t, 0, first.Direction.X, 1e-6, "branch %d turns a right angle", b)
		assert.InDelta(t, 10, stdmath.Abs(float64(first.Position.Z)), 1e-4)
		for _, v := range chain.Vertices {
			assert.Equal(t, b, v.BranchID)
		}
	}
}

func TestGrowSpawnBlockedLeavesNoChain(t *testing.T) {
	params := straightParams()
	params.BranchProbability = 1
	bounds := Rect{Min: math.Vec2{X: -1, Y: -5}, Max: math.Vec2{X: 30, Y: 5}}

	f := Grow(rand.New(rand.NewSource(5)), []Root{{Heading: plusX}}, bounds, params, nil)

	require.Len(t, f.Chains, 1)
	assert.Len(t, f.Chains[0].Vertices, 4)
	assert.Empty(t, f.Welds)
	assert.Equal(t, 4, f.VertexCount())
}

func assertNear(t *testing.T, want, got math.Vec3, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-3, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, 1e-3, msgAndArgs...)
	assert.InDelta(t, want.Z, got.Z, 1e-3, msgAndArgs...)
}
