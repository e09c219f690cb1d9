package annealing

import "testing"

func TestDriverFrozenWithZeroWeights(t *testing.T) {
	s := NewInnerState(2)
	s.PlaceLesson(0, 0, 0, 0, 0)
	s.PlaceLesson(1, 1, 1, 1, 0)

	d := &Driver{
		State:          s,
		Weights:        EnergyWeights{}, // every accepted state has energy 0
		MaxTime:        6,
		ClassroomCount: 2,
		TeacherCount:   2,
		GroupCount:     1,
		RNG:            NewMathRandSource(1),
	}

	term := d.Run(maxFrozenSteps + 10)
	if term != Frozen {
		t.Fatalf("Run() = %v, want Frozen", term)
	}
}

func TestDriverCompletesSmallRun(t *testing.T) {
	s := NewInnerState(3)
	s.PlaceLesson(0, 0, 0, 0, 0)
	s.PlaceLesson(1, 1, 1, 1, 1)
	s.PlaceLesson(2, 2, 2, 2, 2)

	d := &Driver{
		State: s,
		Weights: EnergyWeights{
			GroupGapWeight:     1,
			TeacherGapWeight:   1,
			GroupInDayWeight:   1,
			TeacherInDayWeight: 1,
		},
		MaxTime:        12,
		ClassroomCount: 3,
		TeacherCount:   3,
		GroupCount:     3,
		RNG:            NewMathRandSource(42),
	}

	term := d.Run(50)
	if term != Completed {
		t.Fatalf("Run() = %v, want Completed", term)
	}
	s.AssertSynchronized("after a completed run")
}
