package model

import "strings"

// DayLetters is the fixed weekday alphabet used by the catalog, Sunday
// through Saturday with Thursday as R and Friday as F. The calendar mapping
// is catalog-specific and preserved verbatim from the source strings.
const DayLetters = "SMTWRAF"

// DayMask is a bitset over DayLetters. Bit i corresponds to DayLetters[i].
type DayMask uint8

// ParseDaySet parses a contiguous string of single-letter day codes such as
// "MW" into a DayMask. Any character outside the alphabet is a FormatError.
func ParseDaySet(text string) (DayMask, error) {
	if text == "" {
		return 0, &FormatError{Field: "days", Value: text, Reason: "empty day set"}
	}
	var m DayMask
	for _, c := range text {
		i := strings.IndexRune(DayLetters, c)
		if i < 0 {
			return 0, &FormatError{Field: "days", Value: text, Reason: "letter outside " + DayLetters}
		}
		m |= 1 << uint(i)
	}
	return m, nil
}

// Intersects reports whether the two masks share at least one day.
func (m DayMask) Intersects(o DayMask) bool { return m&o != 0 }

// SubsetOf reports whether every day in m is also in o.
func (m DayMask) SubsetOf(o DayMask) bool { return m&^o == 0 }

// Union returns the combined mask.
func (m DayMask) Union(o DayMask) DayMask { return m | o }

// Contains reports whether the mask includes the given day letter.
func (m DayMask) Contains(c rune) bool {
	i := strings.IndexRune(DayLetters, c)
	return i >= 0 && m&(1<<uint(i)) != 0
}

// Count returns the number of days in the mask.
func (m DayMask) Count() int {
	n := 0
	for ; m != 0; m &= m - 1 {
		n++
	}
	return n
}

// String renders the mask in canonical alphabet order.
func (m DayMask) String() string {
	var b strings.Builder
	for i, c := range DayLetters {
		if m&(1<<uint(i)) != 0 {
			b.WriteRune(c)
		}
	}
	return b.String()
}
