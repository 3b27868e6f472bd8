// Package export serialises ranked schedules for external rendering or
// storage.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/batsched/batsched/core/model"
)

// Plan is the serialised form of one ranked schedule.
type Plan struct {
	Rank     int               `json:"rank"`
	Score    int               `json:"score"`
	Days     string            `json:"days"`
	Sections []model.PlanEntry `json:"sections"`
}

// Plans converts a ranked list into serialisable plans.
func Plans(ranked []model.RankedSchedule) []Plan {
	out := make([]Plan, len(ranked))
	for i, r := range ranked {
		out[i] = Plan{
			Rank:     i + 1,
			Score:    r.Score,
			Days:     r.Schedule.Days().String(),
			Sections: r.Schedule.Entries(),
		}
	}
	return out
}

// WriteJSON writes the ranked schedules to w in JSON format.
func WriteJSON(w io.Writer, ranked []model.RankedSchedule) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Plans(ranked))
}

// WriteCSV writes the ranked schedules to w in CSV format, one row per
// scheduled section.
func WriteCSV(w io.Writer, ranked []model.RankedSchedule) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"plan", "score", "course", "section", "instructor", "days", "time"}); err != nil {
		return err
	}
	for i, r := range ranked {
		for _, e := range r.Schedule.Entries() {
			rec := []string{
				strconv.Itoa(i + 1),
				strconv.Itoa(r.Score),
				e.Course,
				strconv.Itoa(e.Section),
				e.Instructor,
				e.Days,
				e.Time,
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
