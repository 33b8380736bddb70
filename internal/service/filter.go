package service

import (
	"time"

	"github.com/ardhian127/bike-rental-analyst/internal/domain"
)

// FilterByDate returns the rows whose date lies in [start, end], bounds included.
// A reversed range yields an empty slice. The input is never modified.
func FilterByDate[T domain.Dated](rows []T, start, end time.Time) []T {
	out := make([]T, 0)
	if start.After(end) {
		return out
	}
	r := domain.DateRange{Start: start, End: end}
	for _, row := range rows {
		if r.Contains(row.Day()) {
			out = append(out, row)
		}
	}
	return out
}

// FilterTables applies the same range to both tables
func FilterTables(t domain.Tables, r domain.DateRange) domain.Tables {
	return domain.Tables{
		Days:  FilterByDate(t.Days, r.Start, r.End),
		Hours: FilterByDate(t.Hours, r.Start, r.End),
	}
}
