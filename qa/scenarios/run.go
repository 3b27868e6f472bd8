package scenarios

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/batsched/batsched/core/catalog"
	"github.com/batsched/batsched/core/schedule"
	"github.com/batsched/batsched/infra/logger"
	"github.com/batsched/batsched/internal/eventbus"
)

// RunScenario builds an engine from the scenario definition and checks the
// generation output against the expectations.
func RunScenario(t *testing.T, sc *Scenario) {
	t.Helper()

	schedule.ResetMetrics(prometheus.NewRegistry())

	cat, err := catalog.Build(sc.Catalog)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	pairs, err := schedule.NewPairings(sc.Pairings)
	if err != nil {
		t.Fatalf("pairings: %v", err)
	}

	bus := eventbus.New()
	engine, err := schedule.NewEngine(cat, pairs, schedule.NewScorer(pairs), logger.NopLogger{}, bus)
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	defer func() {
		if err := engine.Close(); err != nil {
			t.Errorf("engine close: %v", err)
		}
	}()

	req, err := sc.Request.ToModel()
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	ranked, err := engine.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(ranked) != sc.Expected.Plans {
		t.Errorf("scenario %s expected %d plans, got %d", sc.Name, sc.Expected.Plans, len(ranked))
	}
	if len(sc.Expected.First) > 0 {
		if len(ranked) == 0 {
			t.Fatalf("scenario %s expected a first plan, got none", sc.Name)
		}
		first := ranked[0].Schedule
		for _, ref := range sc.Expected.First {
			sec, ok := first.Find(ref.Course)
			if !ok {
				t.Errorf("scenario %s: first plan missing course %s", sc.Name, ref.Course)
				continue
			}
			if sec.Number != ref.Section {
				t.Errorf("scenario %s: first plan has %s section %d, want %d", sc.Name, ref.Course, sec.Number, ref.Section)
			}
		}
	}
}
