// Package house generates house floor plans: which grid cells are floored,
// and where walls, doors, windows, pillars and roof tiles go. Plans are pure
// data in grid units; callers place them in the world.
package house

import "github.com/Faultbox/midgard-village/pkg/math"

// WindowProbability is the chance that an eligible wall becomes a window.
const WindowProbability = 0.4

// Cell is the content of one grid cell.
type Cell uint8

const (
	Blank Cell = iota
	Floor
)

// Side names a cell side. Up faces decreasing i, Left decreasing j.
type Side int

const (
	Up Side = iota
	Left
	Down
	Right
)

func (s Side) String() string {
	switch s {
	case Up:
		return "up"
	case Left:
		return "left"
	case Down:
		return "down"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// WallKind is what fills a wall slot.
type WallKind int

const (
	Solid WallKind = iota
	Window
	Door
)

func (k WallKind) String() string {
	switch k {
	case Solid:
		return "wall"
	case Window:
		return "window"
	case Door:
		return "door"
	default:
		return "unknown"
	}
}

// Wall sits on one side of a floor cell.
type Wall struct {
	I, J int
	Side Side
	Kind WallKind
}

// Segment returns the wall's endpoints on the grid lattice (X = i, Y = j).
func (w Wall) Segment() (a, b math.Vec2) {
	i, j := float32(w.I), float32(w.J)
	switch w.Side {
	case Up:
		return math.Vec2{X: i, Y: j}, math.Vec2{X: i, Y: j + 1}
	case Left:
		return math.Vec2{X: i, Y: j}, math.Vec2{X: i + 1, Y: j}
	case Down:
		return math.Vec2{X: i + 1, Y: j}, math.Vec2{X: i + 1, Y: j + 1}
	default:
		return math.Vec2{X: i, Y: j + 1}, math.Vec2{X: i + 1, Y: j + 1}
	}
}

// Pillar stands on a lattice corner, 0..Length by 0..Breadth.
type Pillar struct {
	I, J int
}

// RoofKind is the shape of a roof tile.
type RoofKind int

const (
	SingleRoof  RoofKind = iota
	DoubleAlongI         // Covers (i, j) and (i+1, j)
	DoubleAlongJ         // Covers (i, j) and (i, j+1)
)

// Cells returns how many floor cells the tile covers.
func (k RoofKind) Cells() int {
	if k == SingleRoof {
		return 1
	}
	return 2
}

// Roof is one roof tile anchored on cell (I, J).
type Roof struct {
	I, J int
	Kind RoofKind
}

// Plan is a generated house layout.
type Plan struct {
	Length  int // Cells along i
	Breadth int // Cells along j
	Cells   []Cell
	Walls   []Wall
	Pillars []Pillar
	Roofs   []Roof
}

// At returns the cell at (i, j); out-of-bounds cells read as Blank.
func (p *Plan) At(i, j int) Cell {
	if i < 0 || i >= p.Length || j < 0 || j >= p.Breadth {
		return Blank
	}
	return p.Cells[i*p.Breadth+j]
}

// IsFloor reports whether (i, j) is a floored cell.
func (p *Plan) IsFloor(i, j int) bool {
	return p.At(i, j) == Floor
}

func (p *Plan) set(i, j int, c Cell) {
	p.Cells[i*p.Breadth+j] = c
}

// FloorCount returns the number of floored cells.
func (p *Plan) FloorCount() int {
	n := 0
	for _, c := range p.Cells {
		if c == Floor {
			n++
		}
	}
	return n
}

// Door returns the door wall, if the plan has one.
func (p *Plan) Door() (Wall, bool) {
	for _, w := range p.Walls {
		if w.Kind == Door {
			return w, true
		}
	}
	return Wall{}, false
}

// Count returns the number of walls of the given kind.
func (p *Plan) Count(kind WallKind) int {
	n := 0
	for _, w := range p.Walls {
		if w.Kind == kind {
			n++
		}
	}
	return n
}

// Corners returns every lattice corner touched by a floor cell, in row order.
func (p *Plan) Corners() []math.Vec2 {
	var out []math.Vec2
	for i := 0; i <= p.Length; i++ {
		for j := 0; j <= p.Breadth; j++ {
			if p.IsFloor(i-1, j-1) || p.IsFloor(i-1, j) || p.IsFloor(i, j-1) || p.IsFloor(i, j) {
				out = append(out, math.Vec2{X: float32(i), Y: float32(j)})
			}
		}
	}
	return out
}
