package annealing

import "testing"

func TestPlaceLessonRejectsCollision(t *testing.T) {
	s := NewInnerState(2)

	if !s.PlaceLesson(0, 1, 1, 0, 1) {
		t.Fatalf("first placement should succeed")
	}

	// Same teacher, same time -> collision, even though classroom/group differ.
	if s.PlaceLesson(1, 1, 2, 0, 2) {
		t.Fatalf("placement colliding on (teacher, time) should be rejected")
	}

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
}

func TestPlaceLessonPanicsOutOfRange(t *testing.T) {
	s := NewInnerState(1)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for out-of-range lesson id")
		}
	}()
	s.PlaceLesson(1, 0, 0, 0, 0)
}

func TestApplyMutationChangeTeacherNoCollision(t *testing.T) {
	s := NewInnerState(1)
	s.PlaceLesson(0, 0, 0, 0, 0)

	m := Mutation{TargetLesson: 0, Type: ChangeTeacher{Teacher: 5}}
	if !s.ApplyMutation(m) {
		t.Fatalf("mutation to a free teacher should succeed")
	}
	if s.Lesson(0).Teacher != 5 {
		t.Fatalf("teacher = %d, want 5", s.Lesson(0).Teacher)
	}
	s.AssertSynchronized("after free change")
}

func TestApplyMutationTimeSwap(t *testing.T) {
	s := NewInnerState(2)
	s.PlaceLesson(0, 1, 1, 0, 1) // teacher 1, classroom 1, time 0, group 1
	s.PlaceLesson(1, 2, 2, 1, 2) // teacher 2, classroom 2, time 1, group 2

	// Move lesson 0 to time 1: collides only with lesson 1 on (classroom?,
	// no) -- here it collides on no shared key directly, so construct a
	// genuine swap by targeting a classroom/teacher the peer also occupies
	// at time 1. Simpler: move lesson 0 into lesson 1's time where lesson
	// 0 and lesson 1 don't share any other resource, producing NoCollision,
	// not a swap. To force a swap, give lesson 0 and lesson 1 the same
	// teacher, differing only by time.
	s2 := NewInnerState(2)
	s2.PlaceLesson(0, 9, 1, 0, 1)
	s2.PlaceLesson(1, 9, 2, 1, 2) // same teacher 9, different classroom/time/group

	m := Mutation{TargetLesson: 0, Type: ChangeTime{Time: 1}}
	previous := s2.Lesson(0)
	reverse := m.Reverse(previous)

	if !s2.ApplyMutation(m) {
		t.Fatalf("time swap between two lessons sharing only the teacher should succeed")
	}
	s2.AssertSynchronized("after swap")

	if s2.Lesson(0).Time != 1 || s2.Lesson(1).Time != 0 {
		t.Fatalf("swap did not exchange times: lesson0=%+v lesson1=%+v", s2.Lesson(0), s2.Lesson(1))
	}

	// Reversing must restore the original state exactly (P2).
	if !s2.ApplyMutation(reverse.Get()) {
		t.Fatalf("reverse mutation should succeed")
	}
	s2.AssertSynchronized("after reverse")
	if s2.Lesson(0) != previous {
		t.Fatalf("lesson 0 after reverse = %+v, want %+v", s2.Lesson(0), previous)
	}
}

func TestApplyMutationTooComplexRejected(t *testing.T) {
	s := NewInnerState(3)
	s.PlaceLesson(0, 1, 1, 0, 1)
	s.PlaceLesson(1, 2, 1, 1, 1) // shares classroom with 0, group with 0
	s.PlaceLesson(2, 1, 2, 1, 2) // shares teacher with 0, time 1 with 1

	before0, before1, before2 := s.Lesson(0), s.Lesson(1), s.Lesson(2)

	// Moving lesson 0 to time 1 now collides with both lesson 1 (classroom,
	// time) and lesson 2 (teacher, time) -> TooComplex, must be rejected
	// and leave state untouched.
	m := Mutation{TargetLesson: 0, Type: ChangeTime{Time: 1}}
	if s.ApplyMutation(m) {
		t.Fatalf("a move colliding with two distinct lessons must be rejected")
	}

	if s.Lesson(0) != before0 || s.Lesson(1) != before1 || s.Lesson(2) != before2 {
		t.Fatalf("rejected mutation must leave state unchanged")
	}
	s.AssertSynchronized("after rejected too-complex move")
}
