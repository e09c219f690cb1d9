package annealing

// CanTeachPair is a permitted (lesson, teacher) pairing.
type CanTeachPair struct {
	Lesson  LessonID
	Teacher TeacherID
}

// CanHoldPair is a permitted (classroom, subject) pairing.
type CanHoldPair struct {
	Classroom ClassroomID
	Subject   SubjectID
}

// IllegalBuffer is the static hard-constraint oracle: who can teach what,
// who can hold what, and the list of forbidden (subject, object)
// patterns. It is built once from the catalog and never mutated during
// annealing.
type IllegalBuffer struct {
	canTeach      map[CanTeachPair]struct{}
	canHold       map[CanHoldPair]struct{}
	illegalStates []IllegalState
}

// NewIllegalBuffer drops any pattern whose IsLogicError is true — a
// pattern whose subject and object describe the same kind of resource is
// semantically meaningless (spec.md §4.3).
func NewIllegalBuffer(canTeach map[CanTeachPair]struct{}, canHold map[CanHoldPair]struct{}, states []IllegalState) *IllegalBuffer {
	kept := make([]IllegalState, 0, len(states))
	for _, s := range states {
		if !s.IsLogicError() {
			kept = append(kept, s)
		}
	}
	return &IllegalBuffer{canTeach: canTeach, canHold: canHold, illegalStates: kept}
}

// CanTeach reports whether lesson may be taught by teacher.
func (b *IllegalBuffer) CanTeach(lesson LessonID, teacher TeacherID) bool {
	_, ok := b.canTeach[CanTeachPair{Lesson: lesson, Teacher: teacher}]
	return ok
}

// CanHold reports whether classroom may host subject.
func (b *IllegalBuffer) CanHold(classroom ClassroomID, subject SubjectID) bool {
	_, ok := b.canHold[CanHoldPair{Classroom: classroom, Subject: subject}]
	return ok
}

// IsIllegal reports whether lesson matches any stored forbidden pattern.
func (b *IllegalBuffer) IsIllegal(lesson Lesson) bool {
	for _, s := range b.illegalStates {
		if s.IsViolatedBy(lesson) {
			return true
		}
	}
	return false
}
