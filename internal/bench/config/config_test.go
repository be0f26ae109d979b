package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chunkbench.yaml")
	body := "seed: 42\niterations: 10\nlive:\n  enabled: true\n  listen: 0.0.0.0:9000\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Seed != 42 || c.Iterations != 10 {
		t.Fatalf("unexpected config: %+v", c)
	}
	if !c.Live.Enabled || c.Live.Listen != "0.0.0.0:9000" {
		t.Fatalf("unexpected live config: %+v", c.Live)
	}
	if c.FillID != Default().FillID {
		t.Fatalf("expected unset field to keep its default, got %d", c.FillID)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
