package events

import (
	"time"

	"github.com/batsched/batsched/core/model"
)

// RequestEvent is published when a generation request passes validation.
type RequestEvent struct {
	RequestID string
	Courses   []string
	ExactDays int
}

// ScheduleFoundEvent is published for each schedule in the ranked output.
type ScheduleFoundEvent struct {
	RequestID string
	Rank      int
	Score     int
	Entries   []model.PlanEntry
}

// DoneEvent is published once per request after generation completes.
type DoneEvent struct {
	RequestID string
	Count     int
	Elapsed   time.Duration
	Err       error
}
