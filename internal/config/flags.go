package config

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging and debug overlays")
	flagSeed       = flag.Int64("seed", 0, "Base seed: roads use seed, rivers seed+1, houses seed+2")
	flagMapSize    = flag.String("map-size", "", "Map extent as WIDTHxDEPTH, e.g. 800x600")
	flagSaveConfig = flag.String("save-config", "", "Write the effective config to this path")
	flagSave       = flag.Bool("save", false, "Write the effective config to the user config directory")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveConfigPath returns the path given via --save-config, if any.
func SaveConfigPath() string {
	return *flagSaveConfig
}

// SaveRequested reports whether --save was given.
func SaveRequested() bool {
	return *flagSave
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) error {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Rivers.ShowDebug = true
		cfg.Roads.ShowDebug = true
	}
	if *flagSeed != 0 {
		cfg.Roads.Seed = *flagSeed
		cfg.Rivers.Seed = *flagSeed + 1
		cfg.Houses.Seed = *flagSeed + 2
	}
	if *flagMapSize != "" {
		w, d, err := parseMapSize(*flagMapSize)
		if err != nil {
			return err
		}
		cfg.Map.Width, cfg.Map.Depth = w, d
	}
	return nil
}

// parseMapSize parses "WIDTHxDEPTH".
func parseMapSize(s string) (float32, float32, error) {
	ws, ds, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("map size %q: want WIDTHxDEPTH", s)
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(ws), 32)
	if err != nil {
		return 0, 0, fmt.Errorf("map size %q: %w", s, err)
	}
	d, err := strconv.ParseFloat(strings.TrimSpace(ds), 32)
	if err != nil {
		return 0, 0, fmt.Errorf("map size %q: %w", s, err)
	}
	return float32(w), float32(d), nil
}
