// Package adapter maps a catalog.PlanInput into dense integer ids, seeds
// an annealing.InnerState with a constructive placement, builds the
// IllegalBuffer, and projects a finished run back to named output
// (spec.md §4.7). This is the one component allowed to know about both
// the wire format (package catalog) and the engine's internal id space
// (package annealing).
package adapter

import (
	"fmt"

	"github.com/campusplan/timetable-planner/internal/annealing"
	"github.com/campusplan/timetable-planner/internal/catalog"
)

// ErrInfeasible is returned when the constructive seeder cannot place
// every required lesson.
type ErrInfeasible struct {
	Group       string
	SubjectName string
	Occurrence  int
}

func (e *ErrInfeasible) Error() string {
	return fmt.Sprintf("no feasible (time, teacher, classroom) for group %q subject %q occurrence %d",
		e.Group, e.SubjectName, e.Occurrence)
}

// lessonInfo remembers, for each dense lesson id, the names needed to
// project the final state back to a catalog.LessonRecord.
type lessonInfo struct {
	group       string
	subjectName string
	subjectType catalog.SubjectType
}

// Adapter holds the id tables built from one PlanInput.
type Adapter struct {
	input *catalog.PlanInput

	groupIDs     map[string]annealing.GroupID
	groupNames   []string
	teacherIDs   map[string]annealing.TeacherID
	teacherNames []string
	classroomIDs map[string]annealing.ClassroomID
	classNames   []string
	subjectIDs   map[string]annealing.SubjectID
	subjects     []catalog.Subject

	lessons []lessonInfo

	maxTime annealing.TimeSlot
}

// New builds the dense id tables and the per-lesson name index for
// input. It does not seed or build the IllegalBuffer yet — call Seed and
// BuildIllegalBuffer for that.
func New(input *catalog.PlanInput) *Adapter {
	a := &Adapter{
		input:        input,
		groupIDs:     make(map[string]annealing.GroupID),
		teacherIDs:   make(map[string]annealing.TeacherID),
		classroomIDs: make(map[string]annealing.ClassroomID),
		subjectIDs:   make(map[string]annealing.SubjectID),
		maxTime:      annealing.MaxTime(input.Days),
	}

	for i, g := range input.StudentGroups {
		a.groupIDs[g.Name] = annealing.GroupID(i)
		a.groupNames = append(a.groupNames, g.Name)
	}
	for i, t := range input.Teachers {
		a.teacherIDs[t.Name] = annealing.TeacherID(i)
		a.teacherNames = append(a.teacherNames, t.Name)
	}
	for i, c := range input.Classrooms {
		a.classroomIDs[c.Name] = annealing.ClassroomID(i)
		a.classNames = append(a.classNames, c.Name)
	}
	for i, s := range input.Subjects {
		a.subjectIDs[s.Name] = annealing.SubjectID(i)
		a.subjects = append(a.subjects, s)
	}

	// One lesson slot per (group, subject) occurrence: subject.Count
	// repeats per spec.md §3.
	for _, g := range input.StudentGroups {
		for _, subjectName := range g.Subjects {
			subj, _ := a.subjectByName(subjectName)
			count := 1
			if subj.Count > 0 {
				count = subj.Count
			}
			for occ := 0; occ < count; occ++ {
				a.lessons = append(a.lessons, lessonInfo{group: g.Name, subjectName: subjectName, subjectType: subj.SubjectType})
			}
		}
	}

	return a
}

func (a *Adapter) subjectByName(name string) (catalog.Subject, bool) {
	if id, ok := a.subjectIDs[name]; ok {
		return a.subjects[id], true
	}
	return catalog.Subject{}, false
}

// LessonCount returns the number of required lessons (L).
func (a *Adapter) LessonCount() int { return len(a.lessons) }

// MaxTime returns the dense time-slot domain size.
func (a *Adapter) MaxTime() annealing.TimeSlot { return a.maxTime }

// TeacherCount, ClassroomCount and GroupCount return the dense id domain
// sizes for their resource kind.
func (a *Adapter) TeacherCount() annealing.TeacherID     { return annealing.TeacherID(len(a.teacherNames)) }
func (a *Adapter) ClassroomCount() annealing.ClassroomID { return annealing.ClassroomID(len(a.classNames)) }
func (a *Adapter) GroupCount() annealing.GroupID         { return annealing.GroupID(len(a.groupNames)) }

// canTeach reports whether teacher may teach subjectName per the catalog.
func (a *Adapter) canTeach(teacherIdx int, subjectName string) bool {
	for _, s := range a.input.Teachers[teacherIdx].CanTeach {
		if s == subjectName {
			return true
		}
	}
	return false
}

// canHold reports whether classroom has enough capacity for group.
func (a *Adapter) canHold(classroomIdx int, group catalog.StudentGroup) bool {
	return a.input.Classrooms[classroomIdx].Capacity >= group.Size
}

// Seed builds a fresh InnerState and greedily places every required
// lesson: for each lesson, iterate time, then teacher, then classroom in
// catalog order, attempting PlaceLesson; the first success wins.
// Respecting CanTeach/CanHold while seeding is required once the
// catalog's constraints are known (spec.md §4.7); a teacher that can't
// teach the subject or a classroom too small for the group is skipped
// before PlaceLesson is even attempted.
func (a *Adapter) Seed() (*annealing.InnerState, error) {
	state := annealing.NewInnerState(len(a.lessons))

	lessonIdx := 0
	for _, g := range a.input.StudentGroups {
		groupID := a.groupIDs[g.Name]
		for _, subjectName := range g.Subjects {
			count := 1
			if subj, ok := a.subjectByName(subjectName); ok && subj.Count > 0 {
				count = subj.Count
			}
			for occ := 0; occ < count; occ++ {
				if !a.placeOne(state, lessonIdx, groupID, g, subjectName) {
					return nil, &ErrInfeasible{Group: g.Name, SubjectName: subjectName, Occurrence: occ}
				}
				lessonIdx++
			}
		}
	}

	return state, nil
}

func (a *Adapter) placeOne(state *annealing.InnerState, lessonIdx int, groupID annealing.GroupID, group catalog.StudentGroup, subjectName string) bool {
	for t := annealing.TimeSlot(0); t < a.maxTime; t++ {
		for teacherIdx := range a.teacherNames {
			if !a.canTeach(teacherIdx, subjectName) {
				continue
			}
			for classroomIdx := range a.classNames {
				if !a.canHold(classroomIdx, group) {
					continue
				}
				if state.PlaceLesson(lessonIdx, annealing.TeacherID(teacherIdx), annealing.ClassroomID(classroomIdx), t, groupID) {
					return true
				}
			}
		}
	}
	return false
}

// BuildIllegalBuffer derives can_teach/can_hold permitted-pair sets from
// the catalog and translates illegal_states (named by string) into dense
// annealing.IllegalState patterns, dropping logic errors at load time.
func (a *Adapter) BuildIllegalBuffer() *annealing.IllegalBuffer {
	canTeach := make(map[annealing.CanTeachPair]struct{})
	for lessonID, info := range a.lessons {
		for teacherIdx := range a.teacherNames {
			if a.canTeach(teacherIdx, info.subjectName) {
				canTeach[annealing.CanTeachPair{Lesson: lessonID, Teacher: annealing.TeacherID(teacherIdx)}] = struct{}{}
			}
		}
	}

	canHold := make(map[annealing.CanHoldPair]struct{})
	for _, g := range a.input.StudentGroups {
		for _, subjectName := range g.Subjects {
			subjectID, ok := a.subjectIDs[subjectName]
			if !ok {
				continue
			}
			for classroomIdx := range a.classNames {
				if a.canHold(classroomIdx, g) {
					canHold[annealing.CanHoldPair{Classroom: annealing.ClassroomID(classroomIdx), Subject: subjectID}] = struct{}{}
				}
			}
		}
	}

	states := make([]annealing.IllegalState, 0, len(a.input.IllegalStates))
	for _, s := range a.input.IllegalStates {
		translated, ok := a.translateIllegalState(s)
		if ok {
			states = append(states, translated)
		}
	}

	return annealing.NewIllegalBuffer(canTeach, canHold, states)
}

func (a *Adapter) translateIllegalState(s catalog.IllegalStateInput) (annealing.IllegalState, bool) {
	subject, ok := a.translateSubject(s.Subject)
	if !ok {
		return annealing.IllegalState{}, false
	}
	object, ok := a.translateObject(s.Object)
	if !ok {
		return annealing.IllegalState{}, false
	}
	return annealing.IllegalState{Subject: subject, Object: object}, true
}

func (a *Adapter) translateSubject(s catalog.IllegalStateSubject) (annealing.IllegalStateSubject, bool) {
	switch {
	case s.StudentGroup != "":
		id, ok := a.groupIDs[s.StudentGroup]
		return annealing.SubjectGroup{Group: id}, ok
	case s.Teacher != "":
		id, ok := a.teacherIDs[s.Teacher]
		return annealing.SubjectTeacher{Teacher: id}, ok
	case s.Classroom != "":
		id, ok := a.classroomIDs[s.Classroom]
		return annealing.SubjectClassroom{Classroom: id}, ok
	}
	return nil, false
}

func (a *Adapter) translateObject(o catalog.IllegalStateObject) (annealing.IllegalStateObject, bool) {
	switch {
	case o.StudentGroup != "":
		id, ok := a.groupIDs[o.StudentGroup]
		return annealing.ObjectGroup{Group: id}, ok
	case o.Teacher != "":
		id, ok := a.teacherIDs[o.Teacher]
		return annealing.ObjectTeacher{Teacher: id}, ok
	case o.Classroom != "":
		id, ok := a.classroomIDs[o.Classroom]
		return annealing.ObjectClassroom{Classroom: id}, ok
	case o.Day != nil:
		return annealing.ObjectDay{Day: uint8(*o.Day)}, true
	case o.DayHour != nil:
		return annealing.ObjectDayHour{Date: annealing.NewSimpleDate(uint8(o.DayHour.Day), uint8(o.DayHour.Hour))}, true
	}
	return nil, false
}

// ToOutput projects the final state back to named output (spec.md §4.7).
func (a *Adapter) ToOutput(state *annealing.InnerState) catalog.PlanOutput {
	output := catalog.PlanOutput{Lessons: make([]catalog.LessonRecord, 0, state.Len())}
	for id := 0; id < state.Len(); id++ {
		lesson := state.Lesson(id)
		info := a.lessons[id]
		date := annealing.SimpleDateFromTime(lesson.Time)
		output.Lessons = append(output.Lessons, catalog.LessonRecord{
			Group:       info.group,
			Teacher:     a.teacherNames[lesson.Teacher],
			Classroom:   a.classNames[lesson.Classroom],
			SubjectName: info.subjectName,
			SubjectType: info.subjectType,
			Time:        catalog.TimeOut{Day: date.Day, Hour: date.Hour},
		})
	}
	return output
}
