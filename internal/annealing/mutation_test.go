package annealing

import "testing"

// sequenceSource replays fixed Intn/Float32 values, cycling if exhausted.
type sequenceSource struct {
	ints   []int
	floats []float32
	i, j   int
}

func (s *sequenceSource) Intn(n int) int {
	v := s.ints[s.i%len(s.ints)]
	s.i++
	if v >= n {
		v = n - 1
	}
	return v
}

func (s *sequenceSource) Float32() float32 {
	v := s.floats[s.j%len(s.floats)]
	s.j++
	return v
}

func TestProposeDistribution(t *testing.T) {
	cases := []struct {
		name    string
		float   float32
		wantKey string
	}{
		{"time", 0.1, "time"},
		{"classroom", 0.6, "classroom"},
		{"teacher", 0.9, "teacher"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rng := &sequenceSource{ints: []int{0}, floats: []float32{c.float}}
			m := Propose(rng, 4, 6, 3, 2)

			var got string
			switch m.Type.(type) {
			case ChangeTime:
				got = "time"
			case ChangeClassroom:
				got = "classroom"
			case ChangeTeacher:
				got = "teacher"
			}
			if got != c.wantKey {
				t.Fatalf("Propose with r=%v produced %s, want %s", c.float, got, c.wantKey)
			}
		})
	}
}

func TestReverseRestoresPreMutationValue(t *testing.T) {
	lesson := Lesson{Time: 3, Teacher: 7, Classroom: 2, Group: 1}

	m := Mutation{TargetLesson: 0, Type: ChangeTeacher{Teacher: 9}}
	reverse := m.Reverse(lesson)

	got, ok := reverse.Get().Type.(ChangeTeacher)
	if !ok {
		t.Fatalf("reverse of ChangeTeacher should also be ChangeTeacher")
	}
	if got.Teacher != lesson.Teacher {
		t.Fatalf("reverse teacher = %d, want %d", got.Teacher, lesson.Teacher)
	}
}
