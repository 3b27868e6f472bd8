package catalog

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/batsched/batsched/core/model"
)

var entries = []Entry{
	{Course: "ENG111", Section: 1, Instructor: "T. Hossain", Time: "08:00 AM - 09:30 AM", Days: "ST", Seats: 30},
	{Course: "CSE373", Section: 1, Instructor: "A. Rahman", Time: "09:40 AM - 11:10 AM", Days: "MW", Seats: 35},
	{Course: "ENG111", Section: 2, Instructor: "S. Akter", Time: "09:40 AM - 11:10 AM", Days: "ST", Seats: 30},
}

func TestBuild(t *testing.T) {
	cat, err := Build(entries)
	if err != nil {
		t.Fatal(err)
	}
	if cat.Len() != 3 {
		t.Fatalf("len = %d", cat.Len())
	}
	if !cat.Has("ENG111") || cat.Has("PHY101") {
		t.Error("Has misreported")
	}
	if got := len(cat.Sections("ENG111")); got != 2 {
		t.Errorf("ENG111 has %d sections", got)
	}
	if got := cat.Courses(); !reflect.DeepEqual(got, []string{"ENG111", "CSE373"}) {
		t.Errorf("courses = %v", got)
	}
	if got := len(cat.All()); got != 3 {
		t.Errorf("all = %d sections", got)
	}
}

func TestBuildReportsEveryBadEntry(t *testing.T) {
	bad := []Entry{
		{Course: "ENG111", Section: 1, Instructor: "A", Time: "busy", Days: "ST", Seats: 30},
		{Course: "CSE373", Section: 1, Instructor: "B", Time: "09:40 AM - 11:10 AM", Days: "XY", Seats: 35},
		{Course: "CSE323", Section: 1, Instructor: "C", Time: "09:40 AM - 11:10 AM", Days: "MW", Seats: 40},
	}
	_, err := Build(bad)
	if err == nil {
		t.Fatal("expected error")
	}
	var fe *model.FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FormatError, got %T", err)
	}
	msg := err.Error()
	for _, want := range []string{"ENG111 section 1", "CSE373 section 1"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error does not name %s: %s", want, msg)
		}
	}
}

func TestBuildRejectsDuplicates(t *testing.T) {
	dup := append([]Entry{}, entries...)
	dup = append(dup, entries[0])
	_, err := Build(dup)
	if err == nil || !strings.Contains(err.Error(), "duplicate section ENG111/1") {
		t.Fatalf("got %v", err)
	}
}
