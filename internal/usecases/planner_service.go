package usecases

import (
	"fmt"
	"log"

	"github.com/campusplan/timetable-planner/internal/adapter"
	"github.com/campusplan/timetable-planner/internal/annealing"
	"github.com/campusplan/timetable-planner/internal/catalog"
)

// PlannerService orchestrates catalog ingestion, seeding, annealing and
// output projection into one call, the way ScheduleService orchestrates
// parsing and validation.
type PlannerService struct {
	Catalog CatalogRepository
	Engine  EngineConfigRepository
	Output  OutputWriter
	Logger  *log.Logger
}

// NewPlannerService wires the three repositories a planning run needs.
func NewPlannerService(catalogRepo CatalogRepository, engineRepo EngineConfigRepository, output OutputWriter, logger *log.Logger) *PlannerService {
	return &PlannerService{Catalog: catalogRepo, Engine: engineRepo, Output: output, Logger: logger}
}

// Result is what a planning run reports back to its caller.
type Result struct {
	Output      catalog.PlanOutput
	Termination annealing.Termination
}

// Run loads the catalog and engine config, seeds a timetable, anneals it,
// and writes the projected output. It returns ErrMalformedInput if the
// catalog can't be read, and ErrInfeasibleSeed if the constructive seeder
// can't place every required lesson.
func (p *PlannerService) Run() (Result, error) {
	input, err := p.Catalog.LoadCatalog()
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	cfg, err := p.Engine.LoadEngineConfig()
	if err != nil {
		return Result{}, fmt.Errorf("loading engine config: %w", err)
	}

	a := adapter.New(&input)

	state, err := a.Seed()
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInfeasibleSeed, err)
	}

	illegal := a.BuildIllegalBuffer()

	driver := &annealing.Driver{
		State:          state,
		Illegal:        illegal,
		Weights:        cfg.Weights,
		MaxTime:        a.MaxTime(),
		ClassroomCount: a.ClassroomCount(),
		TeacherCount:   a.TeacherCount(),
		GroupCount:     a.GroupCount(),
		RNG:            annealing.NewMathRandSource(cfg.Seed),
		Logger:         p.Logger,
	}

	termination := driver.Run(cfg.Iterations)
	p.logf("annealing finished: %v", termination)

	output := a.ToOutput(state)
	if err := p.Output.WriteOutput(output); err != nil {
		return Result{}, fmt.Errorf("writing output: %w", err)
	}

	return Result{Output: output, Termination: termination}, nil
}

func (p *PlannerService) logf(format string, args ...interface{}) {
	if p.Logger != nil {
		p.Logger.Printf(format, args...)
	}
}

