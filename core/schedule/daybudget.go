package schedule

import (
	"fmt"

	"github.com/batsched/batsched/core/model"
)

// The institution teaches on three fixed 2-day clusters. Sections either sit
// on one cluster or on a designated single-day slot within one.
var clusterStrings = [...]string{"ST", "RA", "MW"}

var (
	clusters    [3]model.DayMask
	combosByDay map[int][]model.DayMask
)

func init() {
	for i, s := range clusterStrings {
		m, err := model.ParseDaySet(s)
		if err != nil {
			panic(err)
		}
		clusters[i] = m
	}
	combosByDay = map[int][]model.DayMask{
		4: dayCombos4(),
		5: dayCombos5(),
		6: {clusters[0] | clusters[1] | clusters[2]},
	}
}

// dayCombos4 returns every union of two clusters.
func dayCombos4() []model.DayMask {
	var out []model.DayMask
	for i := 0; i < len(clusters); i++ {
		for j := i + 1; j < len(clusters); j++ {
			out = append(out, clusters[i]|clusters[j])
		}
	}
	return out
}

// dayCombos5 returns every union of two clusters plus one single day drawn
// from the remaining cluster.
func dayCombos5() []model.DayMask {
	var out []model.DayMask
	for i := 0; i < len(clusters); i++ {
		for j := i + 1; j < len(clusters); j++ {
			rest := clusters[3-i-j]
			for _, c := range model.DayLetters {
				if rest.Contains(c) {
					single, _ := model.ParseDaySet(string(c))
					out = append(out, clusters[i]|clusters[j]|single)
				}
			}
		}
	}
	return out
}

// DayCombinations returns the valid whole-week day sets for an exact day
// count k. Counts outside {4,5,6} are an InvalidRequestError.
func DayCombinations(k int) ([]model.DayMask, error) {
	combos, ok := combosByDay[k]
	if !ok {
		return nil, &model.InvalidRequestError{Reason: fmt.Sprintf("exact day count %d not in {4,5,6}", k)}
	}
	return combos, nil
}

// SectionFitsDayBudget reports whether the section's days are a subset of at
// least one valid combination for k. Used to prune candidates before search;
// a fitting section is necessary but not sufficient for a matching schedule.
func SectionFitsDayBudget(s model.Section, k int) (bool, error) {
	combos, err := DayCombinations(k)
	if err != nil {
		return false, err
	}
	for _, c := range combos {
		if s.DaySet.SubsetOf(c) {
			return true, nil
		}
	}
	return false, nil
}

// ScheduleMatchesDayBudget reports whether the union of the schedule's days
// equals exactly one valid combination for k. Applied to the final assembled
// schedule: unions of individually fitting sections do not necessarily cover
// a full combination.
func ScheduleMatchesDayBudget(s model.Schedule, k int) (bool, error) {
	combos, err := DayCombinations(k)
	if err != nil {
		return false, err
	}
	union := s.Days()
	for _, c := range combos {
		if union == c {
			return true, nil
		}
	}
	return false, nil
}
