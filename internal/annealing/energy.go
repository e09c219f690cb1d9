package annealing

import "sort"

// EnergyWeights scales each statistic's contribution to the scalar energy
// of a state. All weights are supplied by the caller (spec.md §4.4).
type EnergyWeights struct {
	GroupGapWeight     float32 `yaml:"group_gap_weight"`
	TeacherGapWeight   float32 `yaml:"teacher_gap_weight"`
	GroupInDayWeight   float32 `yaml:"group_in_day_weight"`
	TeacherInDayWeight float32 `yaml:"teacher_in_day_weight"`
}

// targetLessonsPerDay is the design constant the imbalance terms measure
// distance from.
const targetLessonsPerDay = 4

type groupDay struct {
	group GroupID
	day   uint8
}

type teacherDay struct {
	teacher TeacherID
	day     uint8
}

// Statistics holds the aggregated per-day counters spec.md §4.4 defines,
// recomputed from scratch by Emplace on every call — there is no
// incremental update, so a rejected mutation never leaves stale counts
// behind.
type Statistics struct {
	groupGaps   uint8
	teacherGaps uint8

	groupLessonsInDay   map[groupDay]uint8
	teacherLessonsInDay map[teacherDay]uint8

	maxDay     uint8
	maxGroup   GroupID
	maxTeacher TeacherID
}

// NewStatistics preallocates the per-day maps to maxDay*maxGroup-ish
// sizes so Emplace reuses them across calls. Emplace still allocates a
// copy of the lesson vector, and gapSum a sorted copy and two small maps,
// on every call.
func NewStatistics(maxGroup int, maxTeacher int, maxDay int) *Statistics {
	return &Statistics{
		groupLessonsInDay:   make(map[groupDay]uint8, maxGroup*maxDay),
		teacherLessonsInDay: make(map[teacherDay]uint8, maxTeacher*maxDay),
	}
}

// Emplace recomputes every counter from the current lesson vector.
func (s *Statistics) Emplace(state *InnerState) {
	s.groupGaps = 0
	s.teacherGaps = 0
	for k := range s.groupLessonsInDay {
		delete(s.groupLessonsInDay, k)
	}
	for k := range s.teacherLessonsInDay {
		delete(s.teacherLessonsInDay, k)
	}
	s.maxDay, s.maxGroup, s.maxTeacher = 0, 0, 0

	lessons := make([]Lesson, state.Len())
	for i := 0; i < state.Len(); i++ {
		lessons[i] = state.Lesson(i)
	}

	for _, l := range lessons {
		d := SimpleDateFromTime(l.Time)
		if d.Day+1 > s.maxDay {
			s.maxDay = d.Day + 1
		}
		if l.Group+1 > s.maxGroup {
			s.maxGroup = l.Group + 1
		}
		if l.Teacher+1 > s.maxTeacher {
			s.maxTeacher = l.Teacher + 1
		}

		gd := groupDay{group: l.Group, day: d.Day}
		s.groupLessonsInDay[gd]++

		td := teacherDay{teacher: l.Teacher, day: d.Day}
		s.teacherLessonsInDay[td]++
	}

	s.groupGaps = gapSum(lessons, func(l Lesson) uint8 { return l.Group })
	s.teacherGaps = gapSum(lessons, func(l Lesson) uint8 { return l.Teacher })
}

// gapSum scans lessons sorted by time and, per resource (as selected by
// key), sums the time delta between consecutive same-day lessons of that
// resource. Spec.md §4.4: "Computed by scanning lessons sorted by time
// and, per group, tracking the previous time; when two lessons in the
// same group share a day, add Δt."
func gapSum(lessons []Lesson, key func(Lesson) uint8) uint8 {
	sorted := make([]Lesson, len(lessons))
	copy(sorted, lessons)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Time < sorted[j].Time })

	lastTime := make(map[uint8]uint8)
	lastSeen := make(map[uint8]bool)

	var total uint8
	for _, l := range sorted {
		k := key(l)
		day := SimpleDateFromTime(l.Time).Day
		if lastSeen[k] {
			prevTime := lastTime[k]
			if SimpleDateFromTime(prevTime).Day == day {
				total += l.Time - prevTime
			}
		}
		lastTime[k] = l.Time
		lastSeen[k] = true
	}
	return total
}

// Energy combines the aggregated statistics into a single scalar under
// weights: spec.md §4.4.
func (s *Statistics) Energy(weights EnergyWeights) float32 {
	groupGapEnergy := float32(s.groupGaps) * weights.GroupGapWeight
	teacherGapEnergy := float32(s.teacherGaps) * weights.TeacherGapWeight

	var imbalance, teacherImbalance float32
	for d := uint8(0); d < s.maxDay; d++ {
		for g := GroupID(0); g < s.maxGroup; g++ {
			if count, ok := s.groupLessonsInDay[groupDay{group: g, day: d}]; ok {
				imbalance += absDiff(targetLessonsPerDay, int(count))
			}
		}
		for t := TeacherID(0); t < s.maxTeacher; t++ {
			if count, ok := s.teacherLessonsInDay[teacherDay{teacher: t, day: d}]; ok {
				teacherImbalance += absDiff(targetLessonsPerDay, int(count))
			}
		}
	}

	return groupGapEnergy + teacherGapEnergy +
		imbalance*weights.GroupInDayWeight + teacherImbalance*weights.TeacherInDayWeight
}

func absDiff(a, b int) float32 {
	d := a - b
	if d < 0 {
		d = -d
	}
	return float32(d)
}
