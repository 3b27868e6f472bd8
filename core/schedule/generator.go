package schedule

import (
	"context"
	"fmt"
	"sort"

	"github.com/batsched/batsched/core/catalog"
	"github.com/batsched/batsched/core/logger"
	"github.com/batsched/batsched/core/model"
)

// Generator explores combinations of one section per required course with
// depth-first backtracking, pruning on conflicts, pairing and day budgets.
// The catalog is read-only during generation and each call owns its own
// buffers, so concurrent calls never share mutable state.
type Generator struct {
	catalog *catalog.Catalog
	pairs   Pairings
	log     logger.Logger
}

// NewGenerator creates a generator over a validated catalog.
func NewGenerator(cat *catalog.Catalog, pairs Pairings, log logger.Logger) (*Generator, error) {
	if cat == nil || log == nil {
		return nil, fmt.Errorf("schedule: nil parameter provided to NewGenerator")
	}
	return &Generator{catalog: cat, pairs: pairs, log: log}, nil
}

// Generate returns every valid schedule for the request up to the result
// cap, in discovery order. A required course with no surviving candidates
// yields an empty result, not an error. Cancellation is checked between
// course placements; on cancellation no partial results are returned.
func (g *Generator) Generate(ctx context.Context, req model.Request) ([]model.Schedule, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	order := g.pairs.Expand(req.Courses)
	for _, course := range order {
		if !g.catalog.Has(course) {
			return nil, &model.InvalidRequestError{Reason: fmt.Sprintf("course %s not in catalog", course)}
		}
	}

	s := &searcher{
		req:   req,
		order: order,
		cands: make([][]model.Section, len(order)),
		labs:  make([]map[int][]model.Section, len(order)),
		limit: req.Cap(),
	}
	for i, course := range order {
		list, err := g.candidates(course, req)
		if err != nil {
			return nil, err
		}
		if len(list) == 0 {
			g.log.Infof("course %s has no candidates after filtering", course)
			return nil, nil
		}
		s.cands[i] = list
		if lab, ok := g.pairs.LabFor(course); ok {
			byNumber, err := g.labCandidates(lab, req)
			if err != nil {
				return nil, err
			}
			s.labs[i] = byNumber
		}
	}

	if err := s.place(ctx, 0); err != nil {
		return nil, err
	}
	return s.out, nil
}

// candidates filters and orders the sections of one theory course. The order
// only affects which results are found first under the cap: preferred
// instructors first, then earlier start, then lower section number.
func (g *Generator) candidates(course string, req model.Request) ([]model.Section, error) {
	prefs := req.PreferredSet(course)
	var out []model.Section
	for _, sec := range g.catalog.Sections(course) {
		keep, err := g.admit(sec, req)
		if err != nil {
			return nil, err
		}
		if keep && req.Mode == model.InstructorFilter && prefs != nil && !prefs[sec.Instructor] {
			keep = false
		}
		if !keep {
			candidatesPruned.Inc()
			continue
		}
		out = append(out, sec)
	}
	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := prefs[out[i].Instructor], prefs[out[j].Instructor]
		if pi != pj {
			return pi
		}
		if out[i].Range.Start != out[j].Range.Start {
			return out[i].Range.Start < out[j].Range.Start
		}
		return out[i].Number < out[j].Number
	})
	return out, nil
}

// labCandidates groups a lab course's admissible sections by section number.
// Instructor preferences never apply to the lab side.
func (g *Generator) labCandidates(lab string, req model.Request) (map[int][]model.Section, error) {
	out := make(map[int][]model.Section)
	for _, sec := range g.catalog.Sections(lab) {
		keep, err := g.admit(sec, req)
		if err != nil {
			return nil, err
		}
		if !keep {
			candidatesPruned.Inc()
			continue
		}
		out[sec.Number] = append(out[sec.Number], sec)
	}
	return out, nil
}

// admit applies the request filters shared by theory and lab candidates:
// strict time bounds and the per-section day-budget pruning.
func (g *Generator) admit(sec model.Section, req model.Request) (bool, error) {
	if req.StrictTimeBounds {
		if req.EarliestStart > 0 && sec.Range.Start < req.EarliestStart {
			return false, nil
		}
		if req.LatestEnd > 0 && sec.Range.End > req.LatestEnd {
			return false, nil
		}
	}
	if req.ExactDays != 0 {
		fits, err := SectionFitsDayBudget(sec, req.ExactDays)
		if err != nil || !fits {
			return false, err
		}
	}
	return true, nil
}

// searcher holds the owned-by-caller state of one generation call: the
// partial schedule buffer is reused and restored on every backtrack step.
type searcher struct {
	req   model.Request
	order []string
	cands [][]model.Section
	labs  []map[int][]model.Section
	buf   []model.Section
	out   []model.Schedule
	limit int
}

func (s *searcher) place(ctx context.Context, idx int) error {
	if len(s.out) >= s.limit {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if idx == len(s.order) {
		return s.accept()
	}
	for _, cand := range s.cands[idx] {
		ok, err := s.fits(cand)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		s.buf = append(s.buf, cand)
		if s.labs[idx] != nil {
			// Every number-matched lab is attempted in turn; a theory
			// section without a compatible lab is abandoned.
			for _, lab := range s.labs[idx][cand.Number] {
				ok, err := s.fits(lab)
				if err != nil {
					return err
				}
				if !ok {
					continue
				}
				s.buf = append(s.buf, lab)
				err = s.place(ctx, idx+1)
				s.buf = s.buf[:len(s.buf)-1]
				if err != nil {
					return err
				}
			}
		} else {
			err = s.place(ctx, idx+1)
		}
		s.buf = s.buf[:len(s.buf)-1]
		if err != nil {
			return err
		}
		if len(s.out) >= s.limit {
			break
		}
	}
	return nil
}

// fits reports whether the section conflicts with the current partial
// schedule.
func (s *searcher) fits(sec model.Section) (bool, error) {
	for _, placed := range s.buf {
		bad, err := Conflicts(placed, sec)
		if err != nil {
			return false, err
		}
		if bad {
			return false, nil
		}
	}
	return true, nil
}

// accept validates the assembled schedule and emits a copy. The pairwise
// audit repeats the incremental checks so an accepted schedule is valid on
// its own terms, independent of search order.
func (s *searcher) accept() error {
	for i := 0; i < len(s.buf); i++ {
		for j := i + 1; j < len(s.buf); j++ {
			bad, err := Conflicts(s.buf[i], s.buf[j])
			if err != nil {
				return err
			}
			if bad {
				return nil
			}
		}
	}
	sched := model.Schedule{Sections: append([]model.Section(nil), s.buf...)}
	if s.req.ExactDays != 0 {
		ok, err := ScheduleMatchesDayBudget(sched, s.req.ExactDays)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
	s.out = append(s.out, sched)
	return nil
}
