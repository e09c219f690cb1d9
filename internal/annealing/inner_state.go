package annealing

import "fmt"

// CollisionKind is the result of checking a hypothetical lesson value
// against InnerState's three index maps.
type CollisionKind int

const (
	// NoCollision means the lesson's three derived keys are all free.
	NoCollision CollisionKind = iota
	// CollidesWithOne means every hit names the same other lesson — a
	// swap is possible.
	CollidesWithOne
	// TooComplex means at least two distinct other lessons were hit —
	// the move can never be resolved as a clean swap.
	TooComplex
)

// Collision is the outcome of InnerState.checkCollision.
type Collision struct {
	Kind CollisionKind
	With LessonID // only meaningful when Kind == CollidesWithOne
}

var noCollision = Collision{Kind: NoCollision}

func tooComplex() Collision { return Collision{Kind: TooComplex} }

func collidesWith(id LessonID) Collision {
	return Collision{Kind: CollidesWithOne, With: id}
}

// InnerState owns the lesson vector and the three bijective index maps
// that make every (teacher,time), (classroom,time) and (group,time) pair
// resolve to at most one lesson. This is the single load-bearing
// invariant of the system (spec.md §5): every public method either keeps
// all three maps and the lesson vector in lock-step, or changes nothing.
type InnerState struct {
	lessons []Lesson

	teacherTime   map[TeacherTimeKey]LessonID
	classroomTime map[ClassroomTimeKey]LessonID
	groupTime     map[GroupTimeKey]LessonID
}

// NewInnerState allocates lessonCount default (zero-value) lesson slots.
// place_lesson fills them in during seeding; nothing else may grow the
// vector afterwards.
func NewInnerState(lessonCount int) *InnerState {
	return &InnerState{
		lessons:       make([]Lesson, lessonCount),
		teacherTime:   make(map[TeacherTimeKey]LessonID, lessonCount),
		classroomTime: make(map[ClassroomTimeKey]LessonID, lessonCount),
		groupTime:     make(map[GroupTimeKey]LessonID, lessonCount),
	}
}

// Len returns the number of lesson slots (L in spec.md's notation).
func (s *InnerState) Len() int { return len(s.lessons) }

// Lesson returns the current value of lesson id.
func (s *InnerState) Lesson(id LessonID) Lesson { return s.lessons[id] }

// collisionChecksResult bundles three optional lesson ids, one per key.
type collisionChecksResult struct {
	teacher, classroom, group *LessonID
}

// collisionChecks looks the candidate's three derived keys up without
// mutating anything.
func (s *InnerState) collisionChecks(l Lesson) collisionChecksResult {
	var r collisionChecksResult
	if v, ok := s.teacherTime[l.teacherTimeKey()]; ok {
		r.teacher = &v
	}
	if v, ok := s.classroomTime[l.classroomTimeKey()]; ok {
		r.classroom = &v
	}
	if v, ok := s.groupTime[l.groupTimeKey()]; ok {
		r.group = &v
	}
	return r
}

// checkCollision inspects the three maps at candidate's derived keys,
// ignoring any hit that names selfID (a lesson never collides with
// itself — essential when re-checking a reverse move). Zero hits is
// NoCollision; one or more hits naming the same other lesson is
// CollidesWithOne; hits naming two or more distinct lessons is
// TooComplex.
func (s *InnerState) checkCollision(candidate Lesson, selfID LessonID) Collision {
	hits := s.collisionChecks(candidate)

	result := noCollision
	for _, hit := range []*LessonID{hits.teacher, hits.classroom, hits.group} {
		if hit == nil || *hit == selfID {
			continue
		}
		switch result.Kind {
		case NoCollision:
			result = collidesWith(*hit)
		case CollidesWithOne:
			if result.With != *hit {
				result = tooComplex()
			}
		case TooComplex:
			// already as bad as it gets
		}
	}
	return result
}

// allNoCollision reports whether candidate's three derived keys are all
// unoccupied.
func (s *InnerState) allNoCollision(candidate Lesson) bool {
	hits := s.collisionChecks(candidate)
	return hits.teacher == nil && hits.classroom == nil && hits.group == nil
}

// putLesson installs lesson at id in the vector and all three maps. The
// caller must have already verified the three keys are free — put_lesson
// never checks, it only writes.
func (s *InnerState) putLesson(lesson Lesson, id LessonID) {
	s.lessons[id] = lesson
	s.teacherTime[lesson.teacherTimeKey()] = id
	s.classroomTime[lesson.classroomTimeKey()] = id
	s.groupTime[lesson.groupTimeKey()] = id
}

// removeLesson deletes id's current value from all three maps. It does
// not touch the lesson vector — the caller is expected to immediately
// overwrite it via putLesson.
func (s *InnerState) removeLesson(id LessonID) {
	lesson := s.lessons[id]
	delete(s.teacherTime, lesson.teacherTimeKey())
	delete(s.classroomTime, lesson.classroomTimeKey())
	delete(s.groupTime, lesson.groupTimeKey())
}

// replaceLessons atomically removes two lessons and reinstalls them with
// new field values. Used by every swap path so neither lesson is ever
// observable with only some of its three keys updated.
func (s *InnerState) replaceLessons(leftID LessonID, left Lesson, rightID LessonID, right Lesson) {
	s.removeLesson(leftID)
	s.removeLesson(rightID)
	s.putLesson(left, leftID)
	s.putLesson(right, rightID)
}

// PlaceLesson is used by the constructive seeder only. It constructs a
// lesson from the given fields and, if none of its three derived keys are
// already occupied, inserts it at id and returns true. Otherwise it
// mutates nothing and returns false.
func (s *InnerState) PlaceLesson(id LessonID, teacher TeacherID, classroom ClassroomID, time TimeSlot, group GroupID) bool {
	if id >= len(s.lessons) {
		panic(fmt.Sprintf("lesson id %d out of range (have %d slots)", id, len(s.lessons)))
	}

	lesson := Lesson{Teacher: teacher, Classroom: classroom, Time: time, Group: group}
	if !s.allNoCollision(lesson) {
		return false
	}

	s.putLesson(lesson, id)
	return true
}

// applyNonTimeMutation handles ChangeTeacher and ChangeClassroom.
func (s *InnerState) applyNonTimeMutation(m Mutation) bool {
	target := m.TargetLesson
	current := s.lessons[target]

	var changed Lesson
	switch mt := m.Type.(type) {
	case ChangeTeacher:
		changed = current.withTeacher(mt.Teacher)
	case ChangeClassroom:
		changed = current.withClassroom(mt.Classroom)
	default:
		panic("applyNonTimeMutation called with a time mutation")
	}

	switch collision := s.checkCollision(changed, target); collision.Kind {
	case NoCollision:
		s.removeLesson(target)
		s.putLesson(changed, target)
		return true

	case CollidesWithOne:
		peerID := collision.With
		peer := s.lessons[peerID]

		var peerChanged Lesson
		switch m.Type.(type) {
		case ChangeTeacher:
			peerChanged = peer.withTeacher(current.Teacher)
		case ChangeClassroom:
			peerChanged = peer.withClassroom(current.Classroom)
		}

		s.replaceLessons(target, changed, peerID, peerChanged)
		return true

	default: // TooComplex
		return false
	}
}

// applyTimeMutation handles ChangeTime, including the recursive check a
// time swap requires: moving target to peer's old time only works if
// peer, moved to target's old time, collides with nothing but target
// itself.
func (s *InnerState) applyTimeMutation(m Mutation) bool {
	target := m.TargetLesson
	current := s.lessons[target]
	newTime := m.Type.(ChangeTime).Time
	changed := current.withTime(newTime)

	switch collision := s.checkCollision(changed, target); collision.Kind {
	case NoCollision:
		s.removeLesson(target)
		s.putLesson(changed, target)
		return true

	case CollidesWithOne:
		peerID := collision.With
		peer := s.lessons[peerID]
		peerChanged := peer.withTime(current.Time)

		recursive := s.checkCollision(peerChanged, peerID)
		if recursive.Kind == TooComplex {
			return false
		}
		if recursive.Kind != CollidesWithOne || recursive.With != target {
			// Spec.md §4.1: NoCollision here is theoretically impossible
			// (the original collision implied a shared coordinate) — the
			// safe, invariant-preserving choice is to reject rather than
			// assume a state the checker didn't actually observe.
			return false
		}

		s.replaceLessons(target, changed, peerID, peerChanged)
		return true

	default: // TooComplex
		return false
	}
}

// ApplyMutation dispatches on the mutation's kind and applies it in full,
// or leaves the state untouched and returns false.
func (s *InnerState) ApplyMutation(m Mutation) bool {
	if _, ok := m.Type.(ChangeTime); ok {
		return s.applyTimeMutation(m)
	}
	return s.applyNonTimeMutation(m)
}

// AssertSynchronized is the diagnostic synchronization oracle of
// spec.md §4.1: it walks every lesson and panics unless all three of its
// derived keys resolve back to its own id. It is always compiled and the
// driver never calls it. Call it after every accepted
// mutation in tests, and from any diagnostic build that wants to catch
// map/lesson desynchronization (spec.md §7) before it causes a silent
// double-booking.
func (s *InnerState) AssertSynchronized(msg string) {
	for id, lesson := range s.lessons {
		hits := s.collisionChecks(lesson)
		if hits.teacher == nil || *hits.teacher != id ||
			hits.classroom == nil || *hits.classroom != id ||
			hits.group == nil || *hits.group != id {
			panic(fmt.Sprintf("maps not synchronized (%s): lesson %d = %+v", msg, id, lesson))
		}
	}
}
