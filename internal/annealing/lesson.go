package annealing

// TeacherID, ClassroomID, GroupID, SubjectID and TimeSlot are the dense ids
// the Adapter assigns, starting at 0. A LessonID additionally indexes a
// lesson's position in InnerState's lesson vector — that index, not any
// field value, is the lesson's identity.
type (
	TeacherID   = uint8
	ClassroomID = uint8
	GroupID     = uint8
	SubjectID   = uint8
	TimeSlot    = uint8
	LessonID    = int
)

// TeacherTimeKey, ClassroomTimeKey and GroupTimeKey are the three derived
// keys InnerState's index maps are keyed by.
type TeacherTimeKey struct {
	Teacher TeacherID
	Time    TimeSlot
}

type ClassroomTimeKey struct {
	Classroom ClassroomID
	Time      TimeSlot
}

type GroupTimeKey struct {
	Group GroupID
	Time  TimeSlot
}

// Lesson is a required (group, subject) session concretely assigned a
// teacher, classroom and time. Its tuple identity is never its field
// values — two Lesson values can be byte-equal while representing
// different lessons — only its index in InnerState.lessons is stable.
type Lesson struct {
	Time      TimeSlot
	Teacher   TeacherID
	Classroom ClassroomID
	Group     GroupID
}

func (l Lesson) teacherTimeKey() TeacherTimeKey {
	return TeacherTimeKey{Teacher: l.Teacher, Time: l.Time}
}

func (l Lesson) classroomTimeKey() ClassroomTimeKey {
	return ClassroomTimeKey{Classroom: l.Classroom, Time: l.Time}
}

func (l Lesson) groupTimeKey() GroupTimeKey {
	return GroupTimeKey{Group: l.Group, Time: l.Time}
}

func (l Lesson) withTeacher(teacher TeacherID) Lesson {
	l.Teacher = teacher
	return l
}

func (l Lesson) withClassroom(classroom ClassroomID) Lesson {
	l.Classroom = classroom
	return l
}

func (l Lesson) withTime(time TimeSlot) Lesson {
	l.Time = time
	return l
}
