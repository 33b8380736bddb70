package domain

import (
	"context"
)

// DashboardData is the result of one pipeline run over the selected range
type DashboardData struct {
	Range      DateRange     `json:"range"`
	DayCount   int           `json:"day_count"`
	HourCount  int           `json:"hour_count"`
	GrandTotal int64         `json:"grand_total"`
	Seasonal   []SeasonTotal `json:"seasonal"`
	Hourly     []HourlyTotal `json:"hourly"`
	PeakTrough *PeakTrough   `json:"peak_trough,omitempty"`
}

// TableRepository defines where the daily and hourly tables come from
// The domain defines the interface, repositories implement it
type TableRepository interface {
	// LoadDays reads the whole daily table
	LoadDays(ctx context.Context) ([]DayRecord, error)

	// LoadHours reads the whole hourly table
	LoadHours(ctx context.Context) ([]HourRecord, error)

	// Health checks the underlying source
	Health(ctx context.Context) error
}
