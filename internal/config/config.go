// Package config loads the engine's tunable parameters: the energy
// weights and iteration budget the annealing driver runs with. Kept
// separate from the catalog so a planning run can reuse one catalog
// against several weight presets.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/campusplan/timetable-planner/internal/annealing"
)

// EngineConfig is the full set of knobs a planning run needs beyond the
// catalog itself.
type EngineConfig struct {
	Iterations int                    `yaml:"iterations"`
	Weights    annealing.EnergyWeights `yaml:"weights"`
	Seed       int64                  `yaml:"seed"`
}

// Default mirrors the weights and iteration count the reference engine
// ships with when no config file is supplied.
func Default() EngineConfig {
	return EngineConfig{
		Iterations: 100_000,
		Weights: annealing.EnergyWeights{
			GroupGapWeight:     1.0,
			TeacherGapWeight:   1.0,
			GroupInDayWeight:   1.0,
			TeacherInDayWeight: 1.0,
		},
		Seed: 1,
	}
}

// LoadYAML reads an EngineConfig from a YAML file at path.
func LoadYAML(path string) (EngineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return EngineConfig{}, fmt.Errorf("reading engine config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return EngineConfig{}, fmt.Errorf("parsing engine config: %w", err)
	}
	return cfg, nil
}
