package model

// Schedule is an ordered collection of sections, at most one per required
// course plus exactly one number-matched lab for every paired theory course.
// Schedules are created during search and never mutated after emission.
type Schedule struct {
	Sections []Section
}

// Days returns the union of all section day sets.
func (s Schedule) Days() DayMask {
	var m DayMask
	for _, sec := range s.Sections {
		m = m.Union(sec.DaySet)
	}
	return m
}

// Find returns the section for the given course code, if present.
func (s Schedule) Find(course string) (Section, bool) {
	for _, sec := range s.Sections {
		if sec.Course == course {
			return sec, true
		}
	}
	return Section{}, false
}

// PlanEntry is the serializable form of one scheduled section, suitable for
// external rendering, export or storage.
type PlanEntry struct {
	Course     string `json:"course"`
	Section    int    `json:"section"`
	Instructor string `json:"instructor"`
	Days       string `json:"days"`
	Time       string `json:"time"`
}

// Entries returns the schedule as plain structured data.
func (s Schedule) Entries() []PlanEntry {
	out := make([]PlanEntry, len(s.Sections))
	for i, sec := range s.Sections {
		out[i] = PlanEntry{
			Course:     sec.Course,
			Section:    sec.Number,
			Instructor: sec.Instructor,
			Days:       sec.Days,
			Time:       sec.Time,
		}
	}
	return out
}

// RankedSchedule pairs an emitted schedule with its desirability score. The
// score is derived output used only for ordering; it is not stored on the
// schedule itself.
type RankedSchedule struct {
	Schedule Schedule
	Score    int
}
