package model

import (
	"errors"
	"testing"
)

func TestParseClockTime(t *testing.T) {
	cases := map[string]int{
		"12:00 AM": 0,
		"12:00 PM": 720,
		"09:40 AM": 9*60 + 40,
		"01:00 PM": 13 * 60,
		"11:59 PM": 23*60 + 59,
	}
	for text, want := range cases {
		got, err := ParseClockTime(text)
		if err != nil {
			t.Fatalf("%s: %v", text, err)
		}
		if got != want {
			t.Errorf("%s = %d, want %d", text, got, want)
		}
	}
}

func TestParseClockTimeInvalid(t *testing.T) {
	for _, text := range []string{"", "9:40 AM", "09:40AM", "09:40 XM", "00:10 AM", "13:00 PM", "09:70 AM"} {
		_, err := ParseClockTime(text)
		if err == nil {
			t.Errorf("%q: expected error", text)
			continue
		}
		var fe *FormatError
		if !errors.As(err, &fe) {
			t.Errorf("%q: expected FormatError, got %T", text, err)
		}
	}
}

func TestParseTimeRange(t *testing.T) {
	r, err := ParseTimeRange("09:40 AM - 11:10 AM")
	if err != nil {
		t.Fatal(err)
	}
	if r.Start != 580 || r.End != 670 {
		t.Fatalf("got %+v", r)
	}
	if r.Duration() != 90 {
		t.Errorf("duration = %d, want 90", r.Duration())
	}
}

func TestParseTimeRangeInvalid(t *testing.T) {
	for _, text := range []string{"", "09:40 AM", "09:40 AM-11:10 AM", "11:10 AM - 09:40 AM", "09:40 AM - 09:40 AM"} {
		if _, err := ParseTimeRange(text); err == nil {
			t.Errorf("%q: expected error", text)
		}
	}
}

func TestTimeRangeOverlaps(t *testing.T) {
	a := TimeRange{Start: 580, End: 670}
	cases := []struct {
		name string
		b    TimeRange
		want bool
	}{
		{"disjoint after", TimeRange{Start: 680, End: 770}, false},
		{"touching end", TimeRange{Start: 670, End: 760}, false},
		{"partial", TimeRange{Start: 660, End: 750}, true},
		{"contained", TimeRange{Start: 590, End: 600}, true},
		{"identical", a, true},
		{"before", TimeRange{Start: 480, End: 580}, false},
	}
	for _, tc := range cases {
		if got := a.Overlaps(tc.b); got != tc.want {
			t.Errorf("%s: overlaps = %v, want %v", tc.name, got, tc.want)
		}
		if got := tc.b.Overlaps(a); got != tc.want {
			t.Errorf("%s: reversed overlaps = %v, want %v", tc.name, got, tc.want)
		}
	}
}
