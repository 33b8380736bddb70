package domain

import (
	"strings"
	"time"
)

// Season is the categorical label assigned to each calendar day
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
	SeasonWinter Season = "winter"
)

// ParseSeason normalizes a raw season label. Unknown labels are kept as-is.
func ParseSeason(raw string) Season {
	return Season(strings.ToLower(strings.TrimSpace(raw)))
}

// DateLayout is the calendar date format used by the input files and query strings
const DateLayout = "2006-01-02"

// ParseDate parses a calendar date, accepting an optional time part which is dropped
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if len(raw) > len(DateLayout) {
		raw = raw[:len(DateLayout)]
	}
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// DateOf truncates t to midnight UTC of its calendar day
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Dated is implemented by every row carrying a calendar date
type Dated interface {
	Day() time.Time
}

// DayRecord is one row of the daily table
type DayRecord struct {
	Date   time.Time `json:"date"`
	Season Season    `json:"season"`
	Total  int64     `json:"total"`
}

// Day returns the row date
func (r DayRecord) Day() time.Time { return r.Date }

// HourRecord is one row of the hourly table, one per (day, hour)
type HourRecord struct {
	Date  time.Time `json:"date"`
	Hour  int       `json:"hour"`
	Total int64     `json:"total"`
}

// Day returns the row date
func (r HourRecord) Day() time.Time { return r.Date }

// Tables holds both source tables. Loaded once, never mutated afterwards.
type Tables struct {
	Days  []DayRecord
	Hours []HourRecord
}

// DateBounds returns the earliest and latest date of the daily table
func (t Tables) DateBounds() (first, last time.Time, ok bool) {
	for i, r := range t.Days {
		if i == 0 || r.Date.Before(first) {
			first = r.Date
		}
		if i == 0 || r.Date.After(last) {
			last = r.Date
		}
	}
	return first, last, len(t.Days) > 0
}

// DateRange is an inclusive calendar date range
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether d falls within the range, bounds included
func (r DateRange) Contains(d time.Time) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}
