package house

import "math/rand"

// Generate builds a plan on a length by breadth grid. Cell (0, 0) is always
// floored; max(length, breadth) sweeps then grow the floor into blank cells
// whose up or left neighbour is floored, each with growthProbability.
//
// The first up-facing wall is the door. Other walls become windows with
// WindowProbability while the window budget of 2*floors-1 lasts.
func Generate(rng *rand.Rand, length, breadth int, growthProbability float32) *Plan {
	p := &Plan{
		Length:  max(length, 1),
		Breadth: max(breadth, 1),
	}
	p.Cells = make([]Cell, p.Length*p.Breadth)

	p.growFloors(rng, growthProbability)
	p.placeWalls(rng)
	p.placeRoofs()
	return p
}

func (p *Plan) growFloors(rng *rand.Rand, growth float32) {
	p.set(0, 0, Floor)

	for sweep := max(p.Length, p.Breadth); sweep > 0; sweep-- {
		for i := 0; i < p.Length; i++ {
			for j := 0; j < p.Breadth; j++ {
				if p.At(i, j) != Blank {
					continue
				}
				if rng.Float32() >= growth {
					continue
				}
				if p.IsFloor(i-1, j) || p.IsFloor(i, j-1) {
					p.set(i, j, Floor)
				}
			}
		}
	}
}

func (p *Plan) placeWalls(rng *rand.Rand) {
	windows := 2*p.FloorCount() - 1
	doorPlaced := false
	seen := make(map[Pillar]bool)

	pillar := func(i, j int) {
		c := Pillar{I: i, J: j}
		if !seen[c] {
			seen[c] = true
			p.Pillars = append(p.Pillars, c)
		}
	}
	wall := func(i, j int, side Side) {
		kind := Solid
		switch {
		case side == Up && !doorPlaced:
			kind = Door
			doorPlaced = true
		case windows > 0 && rng.Float32() < WindowProbability:
			kind = Window
			windows--
		}
		p.Walls = append(p.Walls, Wall{I: i, J: j, Side: side, Kind: kind})
	}

	for i := 0; i < p.Length; i++ {
		for j := 0; j < p.Breadth; j++ {
			up, left := p.IsFloor(i-1, j), p.IsFloor(i, j-1)
			down, right := p.IsFloor(i+1, j), p.IsFloor(i, j+1)

			if !p.IsFloor(i, j) {
				// Inner corners.
				if up && left {
					pillar(i, j)
				}
				if up && right {
					pillar(i, j+1)
				}
				if down && left {
					pillar(i+1, j)
				}
				if down && right {
					pillar(i+1, j+1)
				}
				continue
			}

			if !up {
				wall(i, j, Up)
			}
			if !left {
				wall(i, j, Left)
			}
			if !down {
				wall(i, j, Down)
			}
			if !right {
				wall(i, j, Right)
			}

			// Outer corners.
			if !up && !left {
				pillar(i, j)
			}
			if !up && !right {
				pillar(i, j+1)
			}
			if !down && !left {
				pillar(i+1, j)
			}
			if !down && !right {
				pillar(i+1, j+1)
			}
		}
	}
}

func (p *Plan) placeRoofs() {
	covered := make([]bool, len(p.Cells))
	free := func(i, j int) bool {
		return p.IsFloor(i, j) && !covered[i*p.Breadth+j]
	}

	for i := 0; i < p.Length; i++ {
		for j := 0; j < p.Breadth; j++ {
			if !free(i, j) {
				continue
			}
			covered[i*p.Breadth+j] = true

			switch {
			case free(i+1, j):
				covered[(i+1)*p.Breadth+j] = true
				p.Roofs = append(p.Roofs, Roof{I: i, J: j, Kind: DoubleAlongI})
			case free(i, j+1):
				covered[i*p.Breadth+j+1] = true
				p.Roofs = append(p.Roofs, Roof{I: i, J: j, Kind: DoubleAlongJ})
			default:
				p.Roofs = append(p.Roofs, Roof{I: i, J: j, Kind: SingleRoof})
			}
		}
	}
}
