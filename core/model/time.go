package model

import (
	"regexp"
	"strconv"
	"strings"
)

// TimeRange holds a section's start and end instants in minutes since
// midnight. Start < End always holds for validated sections.
type TimeRange struct {
	Start int
	End   int
}

// Duration returns the length of the range in minutes.
func (r TimeRange) Duration() int { return r.End - r.Start }

// Overlaps reports half-open interval overlap. Touching endpoints, one
// section ending exactly when another starts, do not overlap.
func (r TimeRange) Overlaps(o TimeRange) bool {
	return max(r.Start, o.Start) < min(r.End, o.End)
}

var clockPattern = regexp.MustCompile(`^\d{2}:\d{2} [AP]M$`)

// ParseClockTime converts a 12-hour clock string such as "09:40 AM" to
// minutes since midnight. 12 AM maps to 0 and 12 PM to 720.
func ParseClockTime(text string) (int, error) {
	if !clockPattern.MatchString(text) {
		return 0, &FormatError{Field: "time", Value: text, Reason: "want hh:mm AM|PM"}
	}
	h, _ := strconv.Atoi(text[0:2])
	m, _ := strconv.Atoi(text[3:5])
	if h < 1 || h > 12 || m > 59 {
		return 0, &FormatError{Field: "time", Value: text, Reason: "hour or minute out of range"}
	}
	h %= 12
	if text[6] == 'P' {
		h += 12
	}
	return h*60 + m, nil
}

// ParseTimeRange parses "START - END" where both sides follow the
// ParseClockTime format. Malformed input propagates as a FormatError so the
// caller decides how to treat it; nothing defaults silently.
func ParseTimeRange(text string) (TimeRange, error) {
	parts := strings.Split(text, " - ")
	if len(parts) != 2 {
		return TimeRange{}, &FormatError{Field: "time", Value: text, Reason: "want START - END"}
	}
	start, err := ParseClockTime(parts[0])
	if err != nil {
		return TimeRange{}, err
	}
	end, err := ParseClockTime(parts[1])
	if err != nil {
		return TimeRange{}, err
	}
	if start >= end {
		return TimeRange{}, &FormatError{Field: "time", Value: text, Reason: "start not before end"}
	}
	return TimeRange{Start: start, End: end}, nil
}
