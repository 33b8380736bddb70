package domain

import "errors"

// ErrEmptyAggregate is returned when an extreme is requested from an empty aggregate
var ErrEmptyAggregate = errors.New("aggregate is empty")

// HourlyTotal is the summed rental total for one hour of day
type HourlyTotal struct {
	Hour  int   `json:"hour"`
	Total int64 `json:"total"`
}

// SeasonTotal is the summed rental total for one season
type SeasonTotal struct {
	Season  Season  `json:"season"`
	Total   int64   `json:"total"`
	Percent float64 `json:"percent"`
}

// PeakTrough holds the busiest and quietest hour of an hourly aggregate
type PeakTrough struct {
	PeakHour  int   `json:"peak_hour"`
	PeakValue int64 `json:"peak_value"`
	LowHour   int   `json:"low_hour"`
	LowValue  int64 `json:"low_value"`
}
