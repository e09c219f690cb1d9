package usecases

import (
	"github.com/campusplan/timetable-planner/internal/catalog"
	"github.com/campusplan/timetable-planner/internal/config"
)

// CatalogRepository loads a PlanInput from some source — stdin JSON, a
// YAML file, a legacy XLS export, or a scraped HTML schedule page.
type CatalogRepository interface {
	LoadCatalog() (catalog.PlanInput, error)
}

// EngineConfigRepository loads the tunable annealing parameters.
type EngineConfigRepository interface {
	LoadEngineConfig() (config.EngineConfig, error)
}

// OutputWriter persists a finished plan.
type OutputWriter interface {
	WriteOutput(catalog.PlanOutput) error
}
