// Package main is the entry point for the village generator.
package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-village/internal/config"
	"github.com/Faultbox/midgard-village/internal/logger"
	"github.com/Faultbox/midgard-village/internal/village"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Midgard Village Generator ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if path, err := saveConfig(cfg); err != nil {
		logger.Error("failed to save config", zap.String("path", path), zap.Error(err))
		os.Exit(1)
	} else if path != "" {
		logger.Info("config saved", zap.String("path", path))
	}

	surface := village.NewSurface(cfg)

	v, err := village.Generate(cfg, surface)
	if err != nil {
		logger.Error("generation failed", zap.Error(err))
		os.Exit(1)
	}

	printSummary(os.Stdout, v)
}

// saveConfig writes cfg when --save-config or --save asks for it and
// returns the path written to.
func saveConfig(cfg *config.Config) (string, error) {
	if path := config.SaveConfigPath(); path != "" {
		return path, cfg.SaveTo(path)
	}
	if config.SaveRequested() {
		return config.DefaultPath(), cfg.Save()
	}
	return "", nil
}

func printSummary(w io.Writer, v *village.Village) {
	s := v.Stats()

	fmt.Fprintf(w, "Map:      %.0f x %.0f at (%.0f, %.0f)\n",
		v.Bounds.Max.X-v.Bounds.Min.X, v.Bounds.Max.Y-v.Bounds.Min.Y, v.Bounds.Min.X, v.Bounds.Min.Y)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-8s %8s %8s %8s %8s %10s %10s\n", "network", "chains", "vertices", "edges", "welds", "mesh verts", "triangles")
	for _, row := range []struct {
		name string
		n    village.NetworkStats
	}{
		{"rivers", s.Rivers},
		{"roads", s.Roads},
	} {
		fmt.Fprintf(w, "  %-8s %8d %8d %8d %8d %10d %10d\n",
			row.name, row.n.Chains, row.n.Vertices, row.n.Edges, row.n.Welds, row.n.MeshVertices, row.n.Triangles)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Bridges:  %d\n", s.Bridges)
	fmt.Fprintf(w, "Houses:   %d (river %d, road %d, focus %d)\n", s.Houses,
		s.BySource[village.AlongRiver], s.BySource[village.AlongRoad], s.BySource[village.AroundFocus])

	if len(v.Rejected) == 0 {
		return
	}
	reasons := make([]string, 0, len(v.Rejected))
	for r := range v.Rejected {
		reasons = append(reasons, string(r))
	}
	sort.Strings(reasons)
	fmt.Fprintf(w, "Rejected: %d\n", s.Rejected)
	for _, r := range reasons {
		fmt.Fprintf(w, "  %-14s %d\n", r, v.Rejected[village.Rejection(r)])
	}
}
