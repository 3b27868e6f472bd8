package schedule

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/batsched/batsched/core/catalog"
	"github.com/batsched/batsched/core/events"
	"github.com/batsched/batsched/core/logger"
	"github.com/batsched/batsched/core/model"
	"github.com/batsched/batsched/internal/eventbus"
)

// Result captures one completed generation call for the request history.
type Result struct {
	RequestID string
	Request   model.Request
	Ranked    []model.RankedSchedule
	Elapsed   time.Duration
}

// Engine wires the generator and scorer with logging, metrics and the event
// bus. It is the single entry point consumers call: a full ranked list or an
// error, never both.
type Engine struct {
	generator *Generator
	scorer    *Scorer
	logger    logger.Logger
	bus       eventbus.EventBus
	history   []Result
	mu        sync.Mutex
}

// NewEngine creates an engine over a validated catalog and pairing table.
// The bus may be nil when no subscriber is interested in generation events.
func NewEngine(cat *catalog.Catalog, pairs Pairings, scorer *Scorer, log logger.Logger, bus eventbus.EventBus) (*Engine, error) {
	if cat == nil || scorer == nil || log == nil {
		return nil, fmt.Errorf("schedule: nil parameter provided to NewEngine")
	}
	if err := pairs.Validate(cat); err != nil {
		return nil, err
	}
	gen, err := NewGenerator(cat, pairs, log)
	if err != nil {
		return nil, err
	}
	return &Engine{generator: gen, scorer: scorer, logger: log, bus: bus}, nil
}

// Generate runs the search and returns the ranked schedules for the request.
func (e *Engine) Generate(ctx context.Context, req model.Request) ([]model.RankedSchedule, error) {
	id := uuid.NewString()
	start := time.Now()

	if err := req.Validate(); err != nil {
		requestsTotal.WithLabelValues("invalid").Inc()
		e.publish(events.DoneEvent{RequestID: id, Err: err, Elapsed: time.Since(start)})
		return nil, err
	}
	e.publish(events.RequestEvent{RequestID: id, Courses: req.Courses, ExactDays: req.ExactDays})
	e.logger.Debugw("generation started", map[string]any{
		"request_id": id,
		"courses":    req.Courses,
		"exact_days": req.ExactDays,
		"cap":        req.Cap(),
	})

	found, err := e.generator.Generate(ctx, req)
	if err != nil {
		outcome := "error"
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			outcome = "canceled"
		}
		requestsTotal.WithLabelValues(outcome).Inc()
		e.logger.Warnf("generation %s failed: %v", id, err)
		e.publish(events.DoneEvent{RequestID: id, Err: err, Elapsed: time.Since(start)})
		return nil, err
	}

	ranked := e.scorer.Rank(found, req)
	elapsed := time.Since(start)

	generationDuration.Observe(elapsed.Seconds())
	schedulesFound.Add(float64(len(ranked)))
	requestsTotal.WithLabelValues("ok").Inc()

	for i, r := range ranked {
		e.publish(events.ScheduleFoundEvent{
			RequestID: id,
			Rank:      i + 1,
			Score:     r.Score,
			Entries:   r.Schedule.Entries(),
		})
	}
	e.publish(events.DoneEvent{RequestID: id, Count: len(ranked), Elapsed: elapsed})
	e.logger.Infof("generation %s produced %d schedules in %s", id, len(ranked), elapsed)

	e.mu.Lock()
	e.history = append(e.history, Result{RequestID: id, Request: req, Ranked: ranked, Elapsed: elapsed})
	e.mu.Unlock()
	return ranked, nil
}

// History returns a copy of all completed results since the engine started.
func (e *Engine) History() []Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Result(nil), e.history...)
}

// Close releases resources held by the engine.
func (e *Engine) Close() error {
	if e.bus != nil {
		e.bus.Close()
	}
	return nil
}

func (e *Engine) publish(ev eventbus.Event) {
	if e.bus != nil {
		e.bus.Publish(ev)
	}
}
