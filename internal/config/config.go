// Package config handles generator configuration loading and management.
package config

// Config holds all generator settings.
type Config struct {
	Map     MapConfig       `yaml:"map"`
	Terrain TerrainConfig   `yaml:"terrain"`
	Rivers  GeneratorConfig `yaml:"rivers"`
	Roads   GeneratorConfig `yaml:"roads"`
	Houses  HouseConfig     `yaml:"houses"`
	Logging LoggingConfig   `yaml:"logging"`
}

// Point is a position or heading on the ground plane.
type Point struct {
	X float32 `yaml:"x"`
	Z float32 `yaml:"z"`
}

// Origin is where a chain starts. A zero heading is chosen at random.
type Origin struct {
	Position Point `yaml:"position"`
	Heading  Point `yaml:"heading,omitempty"`
}

// MapConfig holds the map rectangle every generated feature stays inside.
type MapConfig struct {
	Origin Point   `yaml:"origin"`
	Width  float32 `yaml:"width"` // Extent along X
	Depth  float32 `yaml:"depth"` // Extent along Z
}

// TerrainConfig holds heightfield generation settings.
type TerrainConfig struct {
	Resolution    int                `yaml:"resolution"` // Samples per side
	HeightScale   float32            `yaml:"height_scale"`
	Seed          int64              `yaml:"seed"`
	SurfaceOffset float32            `yaml:"surface_offset"` // Lift for paths laid on the ground
	SmoothPasses  int                `yaml:"smooth_passes"`
	Flat          bool               `yaml:"flat"`
	Displacement  DisplacementConfig `yaml:"displacement"`
	Perlin        PerlinConfig       `yaml:"perlin"`
}

// DisplacementConfig holds midpoint displacement settings.
type DisplacementConfig struct {
	Enabled       bool    `yaml:"enabled"`
	HeightMin     float32 `yaml:"height_min"`
	HeightMax     float32 `yaml:"height_max"`
	DampenerPower float32 `yaml:"dampener_power"`
	Roughness     float32 `yaml:"roughness"`
}

// PerlinConfig holds the Perlin noise layer settings.
type PerlinConfig struct {
	Enabled     bool    `yaml:"enabled"`
	ScaleX      float32 `yaml:"scale_x"`
	ScaleZ      float32 `yaml:"scale_z"`
	Octaves     int     `yaml:"octaves"`
	Persistence float32 `yaml:"persistence"`
	Height      float32 `yaml:"height"`
}

// GeneratorConfig holds path growth and ribbon settings for one network.
type GeneratorConfig struct {
	Seed                   int64    `yaml:"seed"`
	StepSize               float32  `yaml:"step_size"`
	Width                  float32  `yaml:"width"`
	Inertia                float32  `yaml:"inertia"`
	CurveAngleMax          float32  `yaml:"curve_angle_max"`
	BranchProbability      float32  `yaml:"branch_probability"`
	BranchAngleMax         float32  `yaml:"branch_angle_max"`
	BranchDepthMax         int      `yaml:"branch_depth_max"`
	BranchProbabilityDecay float32  `yaml:"branch_probability_decay"`
	WeldThreshold          float32  `yaml:"weld_threshold"`
	MaxVertices            int      `yaml:"max_vertices"`
	MinUpDot               float32  `yaml:"min_up_dot"` // Slope limit; 0 disables it
	ShowDebug              bool     `yaml:"show_debug"`
	Origins                []Origin `yaml:"origins"`
}

// HouseConfig holds house placement settings.
type HouseConfig struct {
	Seed              int64      `yaml:"seed"`
	Probability       float32    `yaml:"probability"`
	Length            int        `yaml:"length"`
	Breadth           int        `yaml:"breadth"`
	TileSize          float32    `yaml:"tile_size"`
	GrowthProbability float32    `yaml:"growth_probability"`
	MinUpDot          float32    `yaml:"min_up_dot"`
	Clearance         float32    `yaml:"clearance"` // In tiles, between house footprints
	Foci              FociConfig `yaml:"foci"`
}

// FociConfig holds settings for houses scattered around random points.
type FociConfig struct {
	Count    int     `yaml:"count"`
	Radius   float32 `yaml:"radius"`
	Attempts int     `yaml:"attempts"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Map: MapConfig{
			Width: 1000,
			Depth: 1000,
		},
		Terrain: TerrainConfig{
			Resolution:    129,
			HeightScale:   60,
			Seed:          1337,
			SurfaceOffset: 0.09,
			SmoothPasses:  2,
			Displacement: DisplacementConfig{
				Enabled:       true,
				HeightMin:     0,
				HeightMax:     1,
				DampenerPower: 2,
				Roughness:     0.5,
			},
			Perlin: PerlinConfig{
				Enabled:     true,
				ScaleX:      0.01,
				ScaleZ:      0.01,
				Octaves:     3,
				Persistence: 2,
				Height:      0.3,
			},
		},
		Rivers: GeneratorConfig{
			Seed:                   293745,
			StepSize:               20,
			Width:                  6,
			Inertia:                0.8,
			CurveAngleMax:          10,
			BranchProbability:      0.05,
			BranchAngleMax:         90,
			BranchDepthMax:         3,
			BranchProbabilityDecay: 0.5,
			WeldThreshold:          0.5,
			MaxVertices:            20000,
			Origins: []Origin{
				{Position: Point{X: 0, Z: 400}, Heading: Point{X: 1}},
			},
		},
		Roads: GeneratorConfig{
			Seed:                   293744,
			StepSize:               20,
			Width:                  6,
			Inertia:                0.8,
			CurveAngleMax:          10,
			BranchProbability:      0.05,
			BranchAngleMax:         90,
			BranchDepthMax:         3,
			BranchProbabilityDecay: 0.5,
			WeldThreshold:          0.5,
			MaxVertices:            20000,
			MinUpDot:               0.7,
			Origins: []Origin{
				{Position: Point{X: 500, Z: 500}},
				{Position: Point{X: 250, Z: 750}},
			},
		},
		Houses: HouseConfig{
			Seed:              2343255,
			Probability:       0.3,
			Length:            5,
			Breadth:           5,
			TileSize:          3,
			GrowthProbability: 0.5,
			MinUpDot:          0.7,
			Clearance:         1,
			Foci: FociConfig{
				Count:    10,
				Radius:   50,
				Attempts: 100,
			},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
