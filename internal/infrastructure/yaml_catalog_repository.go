package infrastructure

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/campusplan/timetable-planner/internal/catalog"
	"github.com/campusplan/timetable-planner/internal/config"
)

// YAMLCatalogRepository loads a PlanInput from a YAML file, the format a
// department would hand-author a catalog in.
type YAMLCatalogRepository struct {
	filename string
	mutex    sync.RWMutex
}

// NewYAMLCatalogRepository wraps filename.
func NewYAMLCatalogRepository(filename string) *YAMLCatalogRepository {
	return &YAMLCatalogRepository{filename: filename}
}

// LoadCatalog reads and parses the YAML file.
func (r *YAMLCatalogRepository) LoadCatalog() (catalog.PlanInput, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	data, err := os.ReadFile(r.filename)
	if err != nil {
		return catalog.PlanInput{}, fmt.Errorf("reading catalog file: %w", err)
	}

	var input catalog.PlanInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return catalog.PlanInput{}, fmt.Errorf("parsing catalog YAML: %w", err)
	}

	return input, nil
}

// YAMLEngineConfigRepository loads the engine config straight off disk;
// the schema is handled by package config, this just supplies the bytes.
type YAMLEngineConfigRepository struct {
	filename string
}

// NewYAMLEngineConfigRepository wraps filename.
func NewYAMLEngineConfigRepository(filename string) *YAMLEngineConfigRepository {
	return &YAMLEngineConfigRepository{filename: filename}
}

// LoadEngineConfig reads and parses the engine config file, falling back
// to config.Default for any field the file doesn't set.
func (r *YAMLEngineConfigRepository) LoadEngineConfig() (config.EngineConfig, error) {
	return config.LoadYAML(r.filename)
}

// DefaultEngineConfigRepository always returns config.Default, for runs
// that don't supply a config file.
type DefaultEngineConfigRepository struct{}

// LoadEngineConfig returns config.Default().
func (DefaultEngineConfigRepository) LoadEngineConfig() (config.EngineConfig, error) {
	return config.Default(), nil
}
