package model

import "fmt"

// Section is one offered instance of a course. Sections are immutable once
// validated; the raw Time and Days strings are kept verbatim for export while
// Range and DaySet hold the parsed forms used during search.
type Section struct {
	Course     string
	Number     int
	Instructor string
	Time       string
	Days       string
	Seats      int

	Range  TimeRange
	DaySet DayMask
}

// NewSection parses the raw catalog strings and returns a validated section.
// Seats are informational only and not enforced by the scheduler.
func NewSection(course string, number int, instructor, timeText, daysText string, seats int) (Section, error) {
	s := Section{
		Course:     course,
		Number:     number,
		Instructor: instructor,
		Time:       timeText,
		Days:       daysText,
		Seats:      seats,
	}
	if course == "" {
		return Section{}, &FormatError{Section: number, Field: "course", Value: course, Reason: "empty course code"}
	}
	if number <= 0 {
		return Section{}, &FormatError{Course: course, Section: number, Field: "section", Value: fmt.Sprint(number), Reason: "section number must be positive"}
	}
	if seats < 0 {
		return Section{}, &FormatError{Course: course, Section: number, Field: "seats", Value: fmt.Sprint(seats), Reason: "seats must not be negative"}
	}
	r, err := ParseTimeRange(timeText)
	if err != nil {
		return Section{}, withContext(err, course, number)
	}
	d, err := ParseDaySet(daysText)
	if err != nil {
		return Section{}, withContext(err, course, number)
	}
	s.Range = r
	s.DaySet = d
	return s, nil
}

// Validate reports whether the section carries parsed time and day data.
// Sections built through NewSection always pass.
func (s Section) Validate() error {
	if s.Range.Start >= s.Range.End {
		return &FormatError{Course: s.Course, Section: s.Number, Field: "time", Value: s.Time, Reason: "missing or unparsed time range"}
	}
	if s.DaySet == 0 {
		return &FormatError{Course: s.Course, Section: s.Number, Field: "days", Value: s.Days, Reason: "missing or unparsed day set"}
	}
	return nil
}

// Key identifies the section within the catalog.
func (s Section) Key() string {
	return fmt.Sprintf("%s/%d", s.Course, s.Number)
}

func withContext(err error, course string, number int) error {
	if fe, ok := err.(*FormatError); ok {
		fe.Course = course
		fe.Section = number
		return fe
	}
	return err
}
