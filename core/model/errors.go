package model

import "fmt"

// FormatError reports a malformed time or day string in the catalog. It is
// raised during the preflight validation pass, never inside the search loop.
type FormatError struct {
	Course  string
	Section int
	Field   string
	Value   string
	Reason  string
}

func (e *FormatError) Error() string {
	if e.Course == "" {
		return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("%s section %d: invalid %s %q: %s", e.Course, e.Section, e.Field, e.Value, e.Reason)
}

// InvalidRequestError reports a request that cannot be generated for:
// an unsupported exact-day count or a course code absent from the catalog.
type InvalidRequestError struct {
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return "invalid request: " + e.Reason
}
