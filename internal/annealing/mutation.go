package annealing

// MutationType is the tagged payload of a Mutation: which field of the
// target lesson a mutation would change, and to what.
type MutationType interface{ isMutationType() }

type ChangeTeacher struct{ Teacher TeacherID }
type ChangeClassroom struct{ Classroom ClassroomID }
type ChangeTime struct{ Time TimeSlot }

func (ChangeTeacher) isMutationType()   {}
func (ChangeClassroom) isMutationType() {}
func (ChangeTime) isMutationType()      {}

// Mutation is a proposed local change to one lesson's teacher, classroom
// or time.
type Mutation struct {
	TargetLesson LessonID
	Type         MutationType
}

// ReverseMutation is a Mutation known to restore a prior state when
// applied. It is only ever constructed via Reverse, never by hand, so a
// caller can't accidentally apply an unrelated mutation where a reversal
// was expected.
type ReverseMutation struct{ m Mutation }

// Get unwraps the reverse mutation so it can be applied like any other.
func (r ReverseMutation) Get() Mutation { return r.m }

// UniformSource draws uniform samples for mutation proposals and
// annealing acceptance. Abstracting the process-wide PRNG this way keeps
// every test deterministic: production wires in math/rand, tests wire in
// a fixed-sequence stub.
type UniformSource interface {
	// Intn returns a pseudo-random value in [0, n).
	Intn(n int) int
	// Float32 returns a pseudo-random value in [0, 1).
	Float32() float32
}

// Propose draws a random mutation: target is uniform over [0, lessonCount),
// the kind is ChangeTime with probability 0.5, ChangeClassroom 0.3,
// ChangeTeacher 0.2, and the payload is uniform over its own domain.
func Propose(rng UniformSource, lessonCount int, maxTime TimeSlot, classroomCount ClassroomID, teacherCount TeacherID) Mutation {
	target := rng.Intn(lessonCount)

	var mutationType MutationType
	switch r := rng.Float32(); {
	case r < 0.5:
		mutationType = ChangeTime{Time: TimeSlot(rng.Intn(int(maxTime)))}
	case r < 0.8:
		mutationType = ChangeClassroom{Classroom: ClassroomID(rng.Intn(int(classroomCount)))}
	default:
		mutationType = ChangeTeacher{Teacher: TeacherID(rng.Intn(int(teacherCount)))}
	}

	return Mutation{TargetLesson: target, Type: mutationType}
}

// Reverse builds the mutation that would restore target's previous field
// value. previousLesson must be the lesson's value *before* m was
// applied — after a swap the field needed to reconstruct the prior state
// is no longer in place on either lesson.
func (m Mutation) Reverse(previousLesson Lesson) ReverseMutation {
	var reverseType MutationType
	switch m.Type.(type) {
	case ChangeTeacher:
		reverseType = ChangeTeacher{Teacher: previousLesson.Teacher}
	case ChangeClassroom:
		reverseType = ChangeClassroom{Classroom: previousLesson.Classroom}
	case ChangeTime:
		reverseType = ChangeTime{Time: previousLesson.Time}
	}
	return ReverseMutation{m: Mutation{TargetLesson: m.TargetLesson, Type: reverseType}}
}
