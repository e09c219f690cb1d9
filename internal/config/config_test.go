package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "engine.yaml")
	contents := "iterations: 500\nseed: 7\nweights:\n  group_gap_weight: 2.5\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := LoadYAML(path)
	if err != nil {
		t.Fatalf("LoadYAML error: %v", err)
	}
	if cfg.Iterations != 500 {
		t.Fatalf("Iterations = %d, want 500", cfg.Iterations)
	}
	if cfg.Seed != 7 {
		t.Fatalf("Seed = %d, want 7", cfg.Seed)
	}
	if cfg.Weights.GroupGapWeight != 2.5 {
		t.Fatalf("GroupGapWeight = %v, want 2.5", cfg.Weights.GroupGapWeight)
	}
	// Fields absent from the file keep the default's values.
	if cfg.Weights.TeacherGapWeight != Default().Weights.TeacherGapWeight {
		t.Fatalf("TeacherGapWeight = %v, want default %v", cfg.Weights.TeacherGapWeight, Default().Weights.TeacherGapWeight)
	}
}

func TestLoadYAMLMissingFile(t *testing.T) {
	if _, err := LoadYAML(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected an error for a missing config file")
	}
}
