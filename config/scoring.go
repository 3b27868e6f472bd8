package config

import (
	"fmt"

	"github.com/batsched/batsched/core/schedule"
)

// ScoringConfig tunes the scorer weights. Zero values take the defaults.
type ScoringConfig struct {
	BaseScore       int `json:"base_score"`
	InstructorBonus int `json:"instructor_bonus"`
	BoundPenalty    int `json:"bound_penalty"`
	// GapThresholdMin is the idle-minutes threshold below which gaps are
	// ignored.
	GapThresholdMin int `json:"gap_threshold_min"`
	GapPenalty      int `json:"gap_penalty"`
	BalancePenalty  int `json:"balance_penalty"`
}

// SetDefaults applies the default weights for unset fields.
func (c *ScoringConfig) SetDefaults() {
	if c.BaseScore == 0 {
		c.BaseScore = 100
	}
	if c.InstructorBonus == 0 {
		c.InstructorBonus = 20
	}
	if c.BoundPenalty == 0 {
		c.BoundPenalty = 10
	}
	if c.GapThresholdMin == 0 {
		c.GapThresholdMin = 20
	}
	if c.GapPenalty == 0 {
		c.GapPenalty = 5
	}
	if c.BalancePenalty == 0 {
		c.BalancePenalty = 10
	}
}

// Validate checks the weights are sane.
func (c ScoringConfig) Validate() error {
	if c.BaseScore < 0 || c.InstructorBonus < 0 || c.BoundPenalty < 0 ||
		c.GapThresholdMin < 0 || c.GapPenalty < 0 || c.BalancePenalty < 0 {
		return fmt.Errorf("scoring weights must not be negative")
	}
	return nil
}

// Scorer builds a schedule.Scorer carrying these weights.
func (c ScoringConfig) Scorer(pairs schedule.Pairings) *schedule.Scorer {
	s := schedule.NewScorer(pairs)
	s.BaseScore = c.BaseScore
	s.InstructorBonus = c.InstructorBonus
	s.BoundPenalty = c.BoundPenalty
	s.GapThresholdMin = c.GapThresholdMin
	s.GapPenalty = c.GapPenalty
	s.BalancePenalty = c.BalancePenalty
	return s
}
