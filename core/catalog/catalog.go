// Package catalog holds the static course catalog consumed by the schedule
// generation engine. The catalog is supplied wholesale before any request and
// is read-only during generation.
package catalog

import (
	"errors"
	"fmt"

	"github.com/batsched/batsched/core/model"
)

// Catalog is an ordered collection of validated sections with a per-course
// index. Catalog order is preserved so generation stays deterministic.
type Catalog struct {
	sections []model.Section
	byCourse map[string][]model.Section
}

// New builds a catalog from validated sections. Use Load or Build for raw
// catalog data.
func New(sections []model.Section) *Catalog {
	c := &Catalog{
		sections: append([]model.Section(nil), sections...),
		byCourse: make(map[string][]model.Section),
	}
	for _, s := range c.sections {
		c.byCourse[s.Course] = append(c.byCourse[s.Course], s)
	}
	return c
}

// Entry is one raw catalog record before validation.
type Entry struct {
	Course     string `yaml:"course" json:"course"`
	Section    int    `yaml:"section" json:"section"`
	Instructor string `yaml:"instructor" json:"instructor"`
	Time       string `yaml:"time" json:"time"`
	Days       string `yaml:"days" json:"days"`
	Seats      int    `yaml:"seats" json:"seats"`
}

// Build validates all entries in a single preflight pass and returns the
// catalog. Every malformed entry is reported; format errors never leak into
// the search loop where a silent "assume conflict" could mask data bugs.
func Build(entries []Entry) (*Catalog, error) {
	sections := make([]model.Section, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	var errs []error
	for _, e := range entries {
		s, err := model.NewSection(e.Course, e.Section, e.Instructor, e.Time, e.Days, e.Seats)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if seen[s.Key()] {
			errs = append(errs, fmt.Errorf("duplicate section %s", s.Key()))
			continue
		}
		seen[s.Key()] = true
		sections = append(sections, s)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return New(sections), nil
}

// Sections returns the sections offered for a course in catalog order.
func (c *Catalog) Sections(course string) []model.Section {
	return c.byCourse[course]
}

// Has reports whether the course code appears in the catalog.
func (c *Catalog) Has(course string) bool {
	return len(c.byCourse[course]) > 0
}

// All returns every section in catalog order.
func (c *Catalog) All() []model.Section {
	return c.sections
}

// Courses returns the distinct course codes in first-appearance order.
func (c *Catalog) Courses() []string {
	var out []string
	seen := make(map[string]bool, len(c.byCourse))
	for _, s := range c.sections {
		if !seen[s.Course] {
			seen[s.Course] = true
			out = append(out, s.Course)
		}
	}
	return out
}

// Len returns the number of sections.
func (c *Catalog) Len() int { return len(c.sections) }
