package app

import (
	"fmt"

	"github.com/batsched/batsched/config"
	"github.com/batsched/batsched/core/catalog"
	"github.com/batsched/batsched/core/schedule"
	"github.com/batsched/batsched/infra/logger"
	"github.com/batsched/batsched/internal/eventbus"
)

// Service wires the catalog, pairing table, scorer and engine from the
// configuration.
type Service struct {
	Catalog *catalog.Catalog
	Engine  *schedule.Engine
	Bus     eventbus.EventBus
	log     logger.Logger
}

// New creates a Service from the configuration. The catalog preflight runs
// here, so malformed entries surface before any request is accepted.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New(cfg.Logging.Component)

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	logg.Infof("catalog loaded: %d sections, %d courses", cat.Len(), len(cat.Courses()))

	pairs, err := schedule.NewPairings(cfg.Pairings)
	if err != nil {
		return nil, fmt.Errorf("pairing table: %w", err)
	}

	bus := eventbus.New()
	engine, err := schedule.NewEngine(cat, pairs, cfg.Scoring.Scorer(pairs), logg, bus)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	return &Service{Catalog: cat, Engine: engine, Bus: bus, log: logg}, nil
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	return s.Engine.Close()
}
