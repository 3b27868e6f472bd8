package model

import "fmt"

// InstructorMode selects how preferred-instructor data is applied. Both
// interpretations are in use, so each is exposed explicitly.
type InstructorMode int

const (
	// InstructorRank awards a score bonus for preferred instructors but
	// never removes candidates.
	InstructorRank InstructorMode = iota
	// InstructorFilter restricts candidates to preferred instructors when a
	// preference list exists for the course.
	InstructorFilter
)

// String returns a human-readable representation of the mode.
func (m InstructorMode) String() string {
	switch m {
	case InstructorRank:
		return "rank"
	case InstructorFilter:
		return "filter"
	default:
		return "unknown"
	}
}

// DefaultMaxResults caps generation when the request does not set a limit.
const DefaultMaxResults = 200

// Request describes one generation call. It is an immutable value built per
// call; the engine never mutates it and no state survives between requests.
type Request struct {
	// Courses lists the required course codes in search order. Lab codes may
	// be listed; the pairing table pulls in the counterpart either way.
	Courses []string
	// Preferred maps course code to instructor identifiers. Interpretation
	// depends on Mode. Lab courses never consult this map.
	Preferred map[string][]string
	Mode      InstructorMode
	// EarliestStart and LatestEnd bound section times in minutes since
	// midnight. Zero values disable a bound. With StrictTimeBounds the
	// bounds filter candidates; otherwise they only penalise the score.
	EarliestStart    int
	LatestEnd        int
	StrictTimeBounds bool
	// ExactDays constrains the weekly day count to a cluster combination.
	// Zero disables the constraint; otherwise it must be 4, 5 or 6.
	ExactDays int
	// MaxResults caps the number of returned schedules. Zero means
	// DefaultMaxResults.
	MaxResults int
	// Ranking toggles.
	PreferFewerGaps    bool
	PreferBalancedLoad bool
}

// Cap returns the effective result cap.
func (r Request) Cap() int {
	if r.MaxResults <= 0 {
		return DefaultMaxResults
	}
	return r.MaxResults
}

// Validate checks request-level constraints that do not need the catalog.
func (r Request) Validate() error {
	if len(r.Courses) == 0 {
		return &InvalidRequestError{Reason: "no required courses"}
	}
	if r.ExactDays != 0 && (r.ExactDays < 4 || r.ExactDays > 6) {
		return &InvalidRequestError{Reason: fmt.Sprintf("exact day count %d not in {4,5,6}", r.ExactDays)}
	}
	if r.EarliestStart < 0 || r.LatestEnd < 0 {
		return &InvalidRequestError{Reason: "negative time bound"}
	}
	if r.LatestEnd != 0 && r.EarliestStart >= r.LatestEnd {
		return &InvalidRequestError{Reason: "earliest start not before latest end"}
	}
	return nil
}

// PreferredSet returns the preference list for a course as a set.
func (r Request) PreferredSet(course string) map[string]bool {
	list := r.Preferred[course]
	if len(list) == 0 {
		return nil
	}
	set := make(map[string]bool, len(list))
	for _, f := range list {
		set[f] = true
	}
	return set
}
