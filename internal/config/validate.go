package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// MaxBranchProbability bounds branch_probability.
const MaxBranchProbability = 0.5

// Validate checks value ranges. Zero sizes are allowed; they produce an
// empty village rather than an error.
func (c *Config) Validate() error {
	if c.Map.Width < 0 || c.Map.Depth < 0 {
		return invalid("map size %vx%v is negative", c.Map.Width, c.Map.Depth)
	}
	if c.Terrain.Resolution < 2 {
		return invalid("terrain.resolution %d must be at least 2", c.Terrain.Resolution)
	}
	if err := c.Rivers.validate("rivers"); err != nil {
		return err
	}
	if err := c.Roads.validate("roads"); err != nil {
		return err
	}
	if err := c.Houses.validate(); err != nil {
		return err
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return invalid("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}
	return nil
}

func (g *GeneratorConfig) validate(section string) error {
	unit := []struct {
		name  string
		value float32
	}{
		{"inertia", g.Inertia},
		{"branch_probability_decay", g.BranchProbabilityDecay},
		{"weld_threshold", g.WeldThreshold},
		{"min_up_dot", g.MinUpDot},
	}
	for _, f := range unit {
		if f.value < 0 || f.value > 1 {
			return invalid("%s.%s %v not in [0, 1]", section, f.name, f.value)
		}
	}

	switch {
	case g.BranchProbability < 0 || g.BranchProbability > MaxBranchProbability:
		return invalid("%s.branch_probability %v not in [0, %v]", section, g.BranchProbability, MaxBranchProbability)
	case g.StepSize < 0:
		return invalid("%s.step_size %v is negative", section, g.StepSize)
	case g.Width < 0:
		return invalid("%s.width %v is negative", section, g.Width)
	case g.CurveAngleMax < 0 || g.CurveAngleMax > 180:
		return invalid("%s.curve_angle_max %v not in [0, 180]", section, g.CurveAngleMax)
	case g.BranchAngleMax < 0 || g.BranchAngleMax > 180:
		return invalid("%s.branch_angle_max %v not in [0, 180]", section, g.BranchAngleMax)
	case g.BranchDepthMax < 0:
		return invalid("%s.branch_depth_max %d is negative", section, g.BranchDepthMax)
	case g.MaxVertices < 0:
		return invalid("%s.max_vertices %d is negative", section, g.MaxVertices)
	}
	return nil
}

func (h *HouseConfig) validate() error {
	switch {
	case h.Probability < 0 || h.Probability > 1:
		return invalid("houses.probability %v not in [0, 1]", h.Probability)
	case h.GrowthProbability < 0 || h.GrowthProbability > 1:
		return invalid("houses.growth_probability %v not in [0, 1]", h.GrowthProbability)
	case h.MinUpDot < 0 || h.MinUpDot > 1:
		return invalid("houses.min_up_dot %v not in [0, 1]", h.MinUpDot)
	case h.Length < 1 || h.Breadth < 1:
		return invalid("houses size %dx%d must be at least 1x1", h.Length, h.Breadth)
	case h.TileSize <= 0:
		return invalid("houses.tile_size %v must be positive", h.TileSize)
	case h.Clearance < 0:
		return invalid("houses.clearance %v is negative", h.Clearance)
	case h.Foci.Count < 0 || h.Foci.Attempts < 0 || h.Foci.Radius < 0:
		return invalid("houses.foci values must not be negative")
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}
