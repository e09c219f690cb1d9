package annealing

import "log"

// maxRejectedInARow and maxFrozenSteps are the two termination budgets
// spec.md §4.6/§5 specifies: a run gives up on an outer step after this
// many consecutive rejections, and gives up on the whole schedule after
// this many outer steps in a row with unchanged energy.
const (
	maxRejectedInARow = 1_000_000
	maxFrozenSteps    = 1_000_000
)

// Termination reports why a Driver.Run call stopped.
type Termination int

const (
	// Completed means every outer iteration ran.
	Completed Termination = iota
	// Frozen means the energy stopped changing across outer steps —
	// not an error, the current state is still usable (spec.md §7).
	Frozen
	// Stuck means a single outer step exhausted its rejection budget —
	// also not an error, same handling as Frozen.
	Stuck
)

func (t Termination) String() string {
	switch t {
	case Completed:
		return "completed"
	case Frozen:
		return "frozen"
	case Stuck:
		return "stuck"
	default:
		return "unknown"
	}
}

// Driver runs the outer annealing loop against a lesson buffer that
// already holds a seeded InnerState and its IllegalBuffer.
type Driver struct {
	State          *InnerState
	Illegal        *IllegalBuffer
	Weights        EnergyWeights
	MaxTime        TimeSlot
	ClassroomCount ClassroomID
	TeacherCount   TeacherID
	GroupCount     GroupID
	RNG            UniformSource
	Logger         *log.Logger
}

// Run executes up to iterations outer steps of
// propose/apply/accept/revert, per the loop in spec.md §4.6.
func (d *Driver) Run(iterations int) Termination {
	maxDay := int(d.MaxTime)/6 + 1
	stats := NewStatistics(int(d.GroupCount), int(d.TeacherCount), maxDay)
	stats.Emplace(d.State)

	annealing := NewAnnealingState(iterations, d.RNG)

	var prevEnergy float32
	var constEnergyCount int

	for i := 0; i < iterations; i++ {
		lastEnergy := stats.Energy(d.Weights)

		if prevEnergy == lastEnergy {
			constEnergyCount++
			if constEnergyCount == maxFrozenSteps {
				d.logf("frozen after %d steps with unchanged energy, stopping", constEnergyCount)
				return Frozen
			}
		} else {
			constEnergyCount = 0
		}
		prevEnergy = lastEnergy

		accepted := false
		for j := 1; j <= maxRejectedInARow; j++ {
			mutation := d.proposeLegal()
			previous := d.State.Lesson(mutation.TargetLesson)
			reverse := mutation.Reverse(previous)

			d.State.ApplyMutation(mutation)
			stats.Emplace(d.State)
			newEnergy := stats.Energy(d.Weights)

			if annealing.ShouldAccept(lastEnergy, newEnergy) {
				accepted = true
				break
			}

			d.State.ApplyMutation(reverse.Get())
			stats.Emplace(d.State)

			if j == maxRejectedInARow {
				d.logf("stuck after %d rejected mutations in a row, stopping", j)
				return Stuck
			}
		}
		if !accepted {
			return Stuck
		}

		annealing.DoStep()
	}

	return Completed
}

// proposeLegal resamples Propose until legal accepts the result.
// Conflict-freedom is guaranteed separately by ApplyMutation/InnerState.
func (d *Driver) proposeLegal() Mutation {
	for {
		m := Propose(d.RNG, d.State.Len(), d.MaxTime, d.ClassroomCount, d.TeacherCount)
		if d.legal(m) {
			return m
		}
	}
}

// legal reports whether m passes the IllegalBuffer's checks for the
// target lesson: a ChangeTeacher must name a teacher CanTeach permits for
// that lesson, and the hypothetical post-mutation target lesson must
// match no forbidden pattern. CanHold is not consulted, and the peer
// lesson that a swap would also change is not checked.
func (d *Driver) legal(m Mutation) bool {
	if d.Illegal == nil {
		return true
	}
	current := d.State.Lesson(m.TargetLesson)
	var candidate Lesson
	switch mt := m.Type.(type) {
	case ChangeTeacher:
		if !d.Illegal.CanTeach(m.TargetLesson, mt.Teacher) {
			return false
		}
		candidate = current.withTeacher(mt.Teacher)
	case ChangeClassroom:
		candidate = current.withClassroom(mt.Classroom)
	case ChangeTime:
		candidate = current.withTime(mt.Time)
	}
	return !d.Illegal.IsIllegal(candidate)
}

func (d *Driver) logf(format string, args ...interface{}) {
	if d.Logger != nil {
		d.Logger.Printf(format, args...)
	}
}
