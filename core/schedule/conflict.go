// Package schedule implements the schedule generation engine: conflict
// detection, theory/lab pairing, day-cluster budgets, the backtracking
// generator and the scoring policy.
package schedule

import "github.com/batsched/batsched/core/model"

// Conflicts reports whether two sections occupy overlapping day and time.
// Sections sharing no day never conflict regardless of time; otherwise the
// half-open interval test applies, so touching endpoints do not conflict.
// Malformed or missing time/day data is an error, distinct from the boolean
// outcome, never a silent "assume conflict".
func Conflicts(a, b model.Section) (bool, error) {
	if err := a.Validate(); err != nil {
		return false, err
	}
	if err := b.Validate(); err != nil {
		return false, err
	}
	if !a.DaySet.Intersects(b.DaySet) {
		return false, nil
	}
	return a.Range.Overlaps(b.Range), nil
}
