package annealing

import "testing"

func TestGapSumSameDayConsecutive(t *testing.T) {
	// Group 0 has lessons at times 0 and 2 (same day, since slotsPerDay=6)
	// -> gap contribution of 2. A third lesson for group 0 at time 6 is a
	// different day and must not contribute.
	s := NewInnerState(3)
	s.PlaceLesson(0, 0, 0, 0, 0)
	s.PlaceLesson(1, 1, 1, 2, 0)
	s.PlaceLesson(2, 2, 2, 6, 0)

	stats := NewStatistics(1, 3, 2)
	stats.Emplace(s)

	if stats.groupGaps != 2 {
		t.Fatalf("groupGaps = %d, want 2", stats.groupGaps)
	}
}

func TestEnergyZeroWeightsIsZero(t *testing.T) {
	s := NewInnerState(2)
	s.PlaceLesson(0, 0, 0, 0, 0)
	s.PlaceLesson(1, 1, 1, 1, 0)

	stats := NewStatistics(1, 2, 1)
	stats.Emplace(s)

	e := stats.Energy(EnergyWeights{})
	if e != 0 {
		t.Fatalf("energy with zero weights = %v, want 0", e)
	}
}

func TestImbalanceSkipsAbsentDays(t *testing.T) {
	// Group 0 only has a lesson on day 0; group 1 only has one at time 6
	// (day 1). Group 0's (absent) day-1 entry must not contribute |4-0| —
	// only the two present (group, day) entries count.
	s := NewInnerState(2)
	s.PlaceLesson(0, 0, 0, 0, 0) // group 0, day 0
	s.PlaceLesson(1, 1, 1, 6, 1) // group 1, day 1

	stats := NewStatistics(2, 2, 2)
	stats.Emplace(s)

	e := stats.Energy(EnergyWeights{GroupInDayWeight: 1})
	if e != 6 { // |4-1| + |4-1|, not a third |4-0| for group 0/day 1
		t.Fatalf("energy = %v, want 6", e)
	}
}
