package schedule

import (
	"fmt"

	"github.com/batsched/batsched/core/catalog"
)

// Pairings is the fixed theory course to lab course mapping. The table is
// explicit rather than inferred from a course-code suffix and is validated
// against the catalog at load time.
type Pairings struct {
	labByTheory map[string]string
	theoryByLab map[string]string
}

// NewPairings builds the bidirectional table from theory→lab pairs.
func NewPairings(pairs map[string]string) (Pairings, error) {
	p := Pairings{
		labByTheory: make(map[string]string, len(pairs)),
		theoryByLab: make(map[string]string, len(pairs)),
	}
	for theory, lab := range pairs {
		if theory == "" || lab == "" {
			return Pairings{}, fmt.Errorf("pairing with empty course code")
		}
		if theory == lab {
			return Pairings{}, fmt.Errorf("course %s paired with itself", theory)
		}
		if other, ok := p.theoryByLab[lab]; ok {
			return Pairings{}, fmt.Errorf("lab %s paired with both %s and %s", lab, other, theory)
		}
		if _, ok := p.labByTheory[lab]; ok {
			return Pairings{}, fmt.Errorf("course %s used as both theory and lab", lab)
		}
		if _, ok := p.theoryByLab[theory]; ok {
			return Pairings{}, fmt.Errorf("course %s used as both theory and lab", theory)
		}
		p.labByTheory[theory] = lab
		p.theoryByLab[lab] = theory
	}
	return p, nil
}

// LabFor returns the lab code paired with a theory course.
func (p Pairings) LabFor(theory string) (string, bool) {
	lab, ok := p.labByTheory[theory]
	return lab, ok
}

// TheoryFor returns the theory code paired with a lab course.
func (p Pairings) TheoryFor(lab string) (string, bool) {
	theory, ok := p.theoryByLab[lab]
	return theory, ok
}

// IsLab reports whether the course code is the lab side of a pairing.
func (p Pairings) IsLab(course string) bool {
	_, ok := p.theoryByLab[course]
	return ok
}

// Expand resolves a required course list into the ordered top-level search
// list. Selecting either side of a pairing implicitly requires the other;
// lab codes are replaced by their theory counterpart since labs are consumed
// inside the theory placement step, never iterated at top level.
func (p Pairings) Expand(courses []string) []string {
	var out []string
	seen := make(map[string]bool, len(courses))
	for _, c := range courses {
		if theory, ok := p.TheoryFor(c); ok {
			c = theory
		}
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

// Validate checks that every paired code exists in the catalog. Theory
// sections without a number-matched lab are legal in the catalog; the
// generator skips them during search.
func (p Pairings) Validate(cat *catalog.Catalog) error {
	for theory, lab := range p.labByTheory {
		if !cat.Has(theory) {
			return fmt.Errorf("pairing %s-%s: %s not in catalog", theory, lab, theory)
		}
		if !cat.Has(lab) {
			return fmt.Errorf("pairing %s-%s: %s not in catalog", theory, lab, lab)
		}
	}
	return nil
}
