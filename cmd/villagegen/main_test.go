package main

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/midgard-village/internal/config"
	"github.com/Faultbox/midgard-village/internal/terrain"
	"github.com/Faultbox/midgard-village/internal/village"
)

func TestPrintSummary(t *testing.T) {
	cfg := config.Default()
	cfg.Map.Width, cfg.Map.Depth = 300, 200
	cfg.Houses.Foci.Count = 1

	v, err := village.Generate(cfg, terrain.Flat{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	var buf bytes.Buffer
	printSummary(&buf, v)
	out := buf.String()

	for _, want := range []string{"Map:      300 x 200 at (0, 0)", "rivers", "roads", "Bridges:", "Houses:"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestSaveConfig(t *testing.T) {
	cfg := config.Default()

	path, err := saveConfig(cfg)
	if err != nil || path != "" {
		t.Fatalf("expected no save without flags, got %q, %v", path, err)
	}

	want := filepath.Join(t.TempDir(), "village.yaml")
	if err := flag.Set("save-config", want); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	t.Cleanup(func() { flag.Set("save-config", "") })

	path, err = saveConfig(cfg)
	if err != nil {
		t.Fatalf("saveConfig: %v", err)
	}
	if path != want {
		t.Errorf("expected path %s, got %s", want, path)
	}
	if _, err := os.Stat(want); err != nil {
		t.Errorf("config not written: %v", err)
	}
}
