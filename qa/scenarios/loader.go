package scenarios

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/batsched/batsched/core/catalog"
	"github.com/batsched/batsched/core/model"
)

// RequestDef mirrors model.Request in scenario files.
type RequestDef struct {
	Courses            []string            `yaml:"courses"`
	Preferred          map[string][]string `yaml:"preferred,omitempty"`
	Mode               string              `yaml:"mode,omitempty"`
	EarliestStart      string              `yaml:"earliest_start,omitempty"`
	LatestEnd          string              `yaml:"latest_end,omitempty"`
	StrictTimeBounds   bool                `yaml:"strict_time_bounds,omitempty"`
	ExactDays          int                 `yaml:"exact_days,omitempty"`
	MaxResults         int                 `yaml:"max_results,omitempty"`
	PreferFewerGaps    bool                `yaml:"prefer_fewer_gaps,omitempty"`
	PreferBalancedLoad bool                `yaml:"prefer_balanced_load,omitempty"`
}

// ToModel converts the definition to a request value.
func (r RequestDef) ToModel() (model.Request, error) {
	req := model.Request{
		Courses:            r.Courses,
		Preferred:          r.Preferred,
		StrictTimeBounds:   r.StrictTimeBounds,
		ExactDays:          r.ExactDays,
		MaxResults:         r.MaxResults,
		PreferFewerGaps:    r.PreferFewerGaps,
		PreferBalancedLoad: r.PreferBalancedLoad,
	}
	if r.Mode == "filter" {
		req.Mode = model.InstructorFilter
	}
	if r.EarliestStart != "" {
		m, err := model.ParseClockTime(r.EarliestStart)
		if err != nil {
			return model.Request{}, err
		}
		req.EarliestStart = m
	}
	if r.LatestEnd != "" {
		m, err := model.ParseClockTime(r.LatestEnd)
		if err != nil {
			return model.Request{}, err
		}
		req.LatestEnd = m
	}
	return req, nil
}

// SectionRef identifies one expected section in the first-ranked plan.
type SectionRef struct {
	Course  string `yaml:"course"`
	Section int    `yaml:"section"`
}

type Expected struct {
	Plans int          `yaml:"plans"`
	First []SectionRef `yaml:"first,omitempty"`
}

type Scenario struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description,omitempty"`
	Catalog     []catalog.Entry   `yaml:"catalog"`
	Pairings    map[string]string `yaml:"pairings,omitempty"`
	Request     RequestDef        `yaml:"request"`
	Expected    Expected          `yaml:"expected"`
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}
