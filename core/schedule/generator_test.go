package schedule

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/batsched/batsched/core/catalog"
	"github.com/batsched/batsched/core/logger"
	"github.com/batsched/batsched/core/model"
	infralog "github.com/batsched/batsched/infra/logger"
)

func buildCatalog(t *testing.T, entries []catalog.Entry) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Build(entries)
	if err != nil {
		t.Fatal(err)
	}
	return cat
}

func newTestGenerator(t *testing.T, entries []catalog.Entry, pairs map[string]string) *Generator {
	t.Helper()
	p, err := NewPairings(pairs)
	if err != nil {
		t.Fatal(err)
	}
	gen, err := NewGenerator(buildCatalog(t, entries), p, infralog.NopLogger{})
	if err != nil {
		t.Fatal(err)
	}
	return gen
}

var basicEntries = []catalog.Entry{
	{Course: "ENG111", Section: 1, Instructor: "T. Hossain", Time: "08:00 AM - 09:30 AM", Days: "ST", Seats: 30},
	{Course: "ENG111", Section: 2, Instructor: "S. Akter", Time: "09:40 AM - 11:10 AM", Days: "ST", Seats: 30},
	{Course: "CSE373", Section: 1, Instructor: "A. Rahman", Time: "08:00 AM - 09:30 AM", Days: "ST", Seats: 35},
	{Course: "CSE373", Section: 2, Instructor: "A. Rahman", Time: "09:40 AM - 11:10 AM", Days: "MW", Seats: 35},
}

func TestGenerateBasic(t *testing.T) {
	gen := newTestGenerator(t, basicEntries, nil)
	out, err := gen.Generate(context.Background(), model.Request{Courses: []string{"ENG111", "CSE373"}})
	if err != nil {
		t.Fatal(err)
	}
	// ENG111/1 conflicts with CSE373/1; the other three pairs are free.
	if len(out) != 3 {
		t.Fatalf("got %d schedules, want 3", len(out))
	}
	for _, s := range out {
		if len(s.Sections) != 2 {
			t.Fatalf("schedule has %d sections", len(s.Sections))
		}
		bad, err := Conflicts(s.Sections[0], s.Sections[1])
		if err != nil {
			t.Fatal(err)
		}
		if bad {
			t.Errorf("emitted conflicting schedule: %v vs %v", s.Sections[0].Key(), s.Sections[1].Key())
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	gen := newTestGenerator(t, basicEntries, nil)
	req := model.Request{Courses: []string{"ENG111", "CSE373"}}
	a, err := gen.Generate(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	b, err := gen.Generate(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("repeated generation differed")
	}
}

func TestGenerateUnknownCourse(t *testing.T) {
	gen := newTestGenerator(t, basicEntries, nil)
	_, err := gen.Generate(context.Background(), model.Request{Courses: []string{"PHY101"}})
	if err == nil {
		t.Fatal("expected error")
	}
	var ire *model.InvalidRequestError
	if !errors.As(err, &ire) {
		t.Fatalf("expected InvalidRequestError, got %T", err)
	}
}

func TestGenerateNoCandidatesIsEmptyNotError(t *testing.T) {
	gen := newTestGenerator(t, basicEntries, nil)
	req := model.Request{
		Courses:          []string{"ENG111"},
		Mode:             model.InstructorFilter,
		Preferred:        map[string][]string{"ENG111": {"Nobody"}},
		StrictTimeBounds: false,
	}
	out, err := gen.Generate(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if out != nil {
		t.Fatalf("expected empty result, got %d schedules", len(out))
	}
}

func TestGenerateInstructorFilter(t *testing.T) {
	gen := newTestGenerator(t, basicEntries, nil)
	req := model.Request{
		Courses:   []string{"ENG111"},
		Mode:      model.InstructorFilter,
		Preferred: map[string][]string{"ENG111": {"S. Akter"}},
	}
	out, err := gen.Generate(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].Sections[0].Number != 2 {
		t.Fatalf("got %+v", out)
	}
}

func TestGeneratePreferredOrderedFirst(t *testing.T) {
	gen := newTestGenerator(t, basicEntries, nil)
	req := model.Request{
		Courses:   []string{"ENG111"},
		Preferred: map[string][]string{"ENG111": {"S. Akter"}},
	}
	out, err := gen.Generate(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d schedules, want 2", len(out))
	}
	if out[0].Sections[0].Number != 2 {
		t.Errorf("preferred instructor not discovered first: %+v", out[0].Sections[0])
	}
}

func TestGenerateRespectsCap(t *testing.T) {
	gen := newTestGenerator(t, basicEntries, nil)
	req := model.Request{Courses: []string{"ENG111", "CSE373"}, MaxResults: 1}
	out, err := gen.Generate(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 {
		t.Fatalf("got %d schedules, want 1", len(out))
	}
}

func TestGenerateStrictTimeBounds(t *testing.T) {
	gen := newTestGenerator(t, basicEntries, nil)
	req := model.Request{
		Courses:          []string{"ENG111"},
		EarliestStart:    9 * 60,
		StrictTimeBounds: true,
	}
	out, err := gen.Generate(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].Sections[0].Number != 2 {
		t.Fatalf("got %+v", out)
	}
}

func TestGenerateExactDays(t *testing.T) {
	gen := newTestGenerator(t, basicEntries, nil)
	req := model.Request{Courses: []string{"ENG111", "CSE373"}, ExactDays: 4}
	out, err := gen.Generate(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	// Only the ST+MW pairs span exactly four days; ST-only unions are pruned
	// at acceptance even though each section fits a combination on its own.
	if len(out) != 2 {
		t.Fatalf("got %d schedules, want 2", len(out))
	}
	for _, s := range out {
		if s.Days().Count() != 4 {
			t.Errorf("schedule spans %d days: %s", s.Days().Count(), s.Days())
		}
	}
}

func TestGenerateLabPairing(t *testing.T) {
	entries := []catalog.Entry{
		{Course: "EEE111", Section: 1, Instructor: "K. Alam", Time: "08:00 AM - 09:30 AM", Days: "ST", Seats: 30},
		{Course: "EEE111", Section: 2, Instructor: "K. Alam", Time: "08:00 AM - 09:30 AM", Days: "MW", Seats: 30},
		{Course: "EEE111", Section: 3, Instructor: "K. Alam", Time: "09:40 AM - 11:10 AM", Days: "ST", Seats: 30},
		{Course: "EEE111L", Section: 1, Instructor: "TBA", Time: "08:00 AM - 11:00 AM", Days: "R", Seats: 30},
		{Course: "EEE111L", Section: 2, Instructor: "TBA", Time: "08:00 AM - 11:00 AM", Days: "A", Seats: 30},
	}
	gen := newTestGenerator(t, entries, map[string]string{"EEE111": "EEE111L"})

	out, err := gen.Generate(context.Background(), model.Request{Courses: []string{"EEE111"}})
	if err != nil {
		t.Fatal(err)
	}
	// Section 3 has no matching lab and is abandoned.
	if len(out) != 2 {
		t.Fatalf("got %d schedules, want 2", len(out))
	}
	for _, s := range out {
		theory, ok := s.Find("EEE111")
		if !ok {
			t.Fatal("schedule missing theory section")
		}
		lab, ok := s.Find("EEE111L")
		if !ok {
			t.Fatal("schedule missing lab section")
		}
		if theory.Number != lab.Number {
			t.Errorf("lab %d paired with theory %d", lab.Number, theory.Number)
		}
	}
}

func TestGenerateLabCodeInRequest(t *testing.T) {
	entries := []catalog.Entry{
		{Course: "EEE111", Section: 1, Instructor: "K. Alam", Time: "08:00 AM - 09:30 AM", Days: "ST", Seats: 30},
		{Course: "EEE111L", Section: 1, Instructor: "TBA", Time: "08:00 AM - 11:00 AM", Days: "R", Seats: 30},
	}
	gen := newTestGenerator(t, entries, map[string]string{"EEE111": "EEE111L"})

	out, err := gen.Generate(context.Background(), model.Request{Courses: []string{"EEE111L"}})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || len(out[0].Sections) != 2 {
		t.Fatalf("got %+v", out)
	}
}

func TestGenerateCanceledContext(t *testing.T) {
	gen := newTestGenerator(t, basicEntries, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out, err := gen.Generate(ctx, model.Request{Courses: []string{"ENG111", "CSE373"}})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if out != nil {
		t.Fatal("partial results returned after cancellation")
	}
}

func TestNewGeneratorNilParams(t *testing.T) {
	var log logger.Logger
	if _, err := NewGenerator(nil, Pairings{}, infralog.NopLogger{}); err == nil {
		t.Fatal("expected error for nil catalog")
	}
	if _, err := NewGenerator(buildCatalog(t, basicEntries), Pairings{}, log); err == nil {
		t.Fatal("expected error for nil logger")
	}
}
