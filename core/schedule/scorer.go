package schedule

import (
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/batsched/batsched/core/model"
)

// Scorer assigns a desirability score to a schedule. The weights can be
// tuned through configuration; NewScorer returns the defaults. Scores are
// derived output used only to order results.
type Scorer struct {
	BaseScore       int
	InstructorBonus int
	BoundPenalty    int
	// GapThresholdMin ignores idle stretches shorter than this many minutes.
	GapThresholdMin int
	// GapPenalty is subtracted per 30 idle minutes above the threshold.
	GapPenalty int
	// BalancePenalty is subtracted per unit of spread (max−min) in per-day
	// class counts.
	BalancePenalty int

	pairs Pairings
}

// NewScorer returns a scorer with the default weights.
func NewScorer(pairs Pairings) *Scorer {
	return &Scorer{
		BaseScore:       100,
		InstructorBonus: 20,
		BoundPenalty:    10,
		GapThresholdMin: 20,
		GapPenalty:      5,
		BalancePenalty:  10,
		pairs:           pairs,
	}
}

// Score computes the integer score for a schedule under the given request.
// The floor is 0; a schedule never scores negative.
func (sc *Scorer) Score(s model.Schedule, req model.Request) int {
	score := sc.BaseScore
	for _, sec := range s.Sections {
		// Lab sections carry no independent instructor preference.
		if !sc.pairs.IsLab(sec.Course) {
			if prefs := req.PreferredSet(sec.Course); prefs[sec.Instructor] {
				score += sc.InstructorBonus
			}
		}
		if req.EarliestStart > 0 && sec.Range.Start < req.EarliestStart {
			score -= sc.BoundPenalty
		}
		if req.LatestEnd > 0 && sec.Range.End > req.LatestEnd {
			score -= sc.BoundPenalty
		}
	}
	if req.PreferFewerGaps {
		score -= sc.GapPenalty * sc.idleMinutes(s) / 30
	}
	if req.PreferBalancedLoad {
		score -= sc.BalancePenalty * dailyLoadSpread(s)
	}
	if score < 0 {
		return 0
	}
	return score
}

// idleMinutes sums the gaps between consecutive classes on the same day,
// ignoring gaps under the threshold as negligible.
func (sc *Scorer) idleMinutes(s model.Schedule) int {
	total := 0
	for _, day := range model.DayLetters {
		var ranges []model.TimeRange
		for _, sec := range s.Sections {
			if sec.DaySet.Contains(day) {
				ranges = append(ranges, sec.Range)
			}
		}
		if len(ranges) < 2 {
			continue
		}
		sort.Slice(ranges, func(i, j int) bool { return ranges[i].Start < ranges[j].Start })
		for i := 1; i < len(ranges); i++ {
			if gap := ranges[i].Start - ranges[i-1].End; gap > sc.GapThresholdMin {
				total += gap
			}
		}
	}
	return total
}

// dailyLoadSpread returns max−min of per-day class counts across the days
// the schedule touches.
func dailyLoadSpread(s model.Schedule) int {
	var counts []float64
	for _, day := range model.DayLetters {
		n := 0
		for _, sec := range s.Sections {
			if sec.DaySet.Contains(day) {
				n++
			}
		}
		if n > 0 {
			counts = append(counts, float64(n))
		}
	}
	if len(counts) < 2 {
		return 0
	}
	return int(floats.Max(counts) - floats.Min(counts))
}

// Rank orders schedules by descending score. The sort is stable so ties keep
// discovery order, which makes generation deterministic end to end.
func (sc *Scorer) Rank(schedules []model.Schedule, req model.Request) []model.RankedSchedule {
	ranked := make([]model.RankedSchedule, len(schedules))
	for i, s := range schedules {
		ranked[i] = model.RankedSchedule{Schedule: s, Score: sc.Score(s, req)}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })
	return ranked
}
