package adapter

import (
	"testing"

	"github.com/campusplan/timetable-planner/internal/catalog"
)

func sampleInput() *catalog.PlanInput {
	return &catalog.PlanInput{
		StudentGroups: []catalog.StudentGroup{
			{Name: "G1", Size: 20, Subjects: []string{"Math"}},
		},
		Teachers: []catalog.Teacher{
			{Name: "T1", CanTeach: []string{"Math"}},
		},
		Classrooms: []catalog.Classroom{
			{Name: "C1", Capacity: 30},
		},
		Subjects: []catalog.Subject{
			{Name: "Math", SubjectType: catalog.SubjectWyklad, Count: 2},
		},
		Days: 2,
	}
}

func TestAdapterSeedsAndProjectsRoundTrip(t *testing.T) {
	a := New(sampleInput())

	if a.LessonCount() != 2 {
		t.Fatalf("LessonCount() = %d, want 2 (subject.Count)", a.LessonCount())
	}

	state, err := a.Seed()
	if err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	output := a.ToOutput(state)
	if len(output.Lessons) != 2 {
		t.Fatalf("ToOutput produced %d lessons, want 2", len(output.Lessons))
	}
	for _, l := range output.Lessons {
		if l.Group != "G1" || l.Teacher != "T1" || l.Classroom != "C1" || l.SubjectName != "Math" {
			t.Fatalf("unexpected lesson record: %+v", l)
		}
		if l.SubjectType != catalog.SubjectWyklad {
			t.Fatalf("SubjectType = %q, want %q", l.SubjectType, catalog.SubjectWyklad)
		}
	}
}

func TestAdapterInfeasibleSeedReportsSubject(t *testing.T) {
	input := sampleInput()
	// Days=2 gives 12 slots, plenty for the sample's 2 occurrences, so
	// remove the only teacher's permission entirely to force
	// infeasibility deterministically.
	input.Teachers[0].CanTeach = nil

	a := New(input)
	_, err := a.Seed()
	if err == nil {
		t.Fatalf("expected an infeasibility error when no teacher can teach the subject")
	}
	infeasible, ok := err.(*ErrInfeasible)
	if !ok || infeasible.Group != "G1" || infeasible.SubjectName != "Math" {
		t.Fatalf("Seed() error = %v, want an *ErrInfeasible naming group G1 and subject Math", err)
	}
}

func TestBuildIllegalBufferHonorsCanTeach(t *testing.T) {
	a := New(sampleInput())
	buf := a.BuildIllegalBuffer()

	if !buf.CanTeach(0, 0) {
		t.Fatalf("lesson 0 should be teachable by teacher 0 (T1 can teach Math)")
	}
	if !buf.CanHold(0, 0) {
		t.Fatalf("classroom 0 should be able to hold subject 0 (capacity 30 >= group size 20)")
	}
}
