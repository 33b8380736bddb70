package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ardhian127/bike-rental-analyst/internal/domain"
)

// LoadTables reads both tables from repo. Called once at startup.
func LoadTables(ctx context.Context, repo TableRepository) (domain.Tables, error) {
	days, err := repo.LoadDays(ctx)
	if err != nil {
		return domain.Tables{}, fmt.Errorf("service: failed to load days table: %w", err)
	}
	hours, err := repo.LoadHours(ctx)
	if err != nil {
		return domain.Tables{}, fmt.Errorf("service: failed to load hours table: %w", err)
	}
	return domain.Tables{Days: days, Hours: hours}, nil
}

// DashboardService runs the filter and aggregate pipeline over the session tables
type DashboardService struct {
	tables  domain.Tables
	repo    TableRepository
	metrics *PipelineMetrics
	log     zerolog.Logger
}

// NewDashboardService creates a new dashboard service. tables must not be
// modified after this call.
func NewDashboardService(
	tables domain.Tables,
	repo TableRepository,
	metrics *PipelineMetrics,
	log zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		tables:  tables,
		repo:    repo,
		metrics: metrics,
		log:     log,
	}
}

// DefaultRange spans the earliest to the latest date of the daily table
func (s *DashboardService) DefaultRange() domain.DateRange {
	first, last, _ := s.tables.DateBounds()
	return domain.DateRange{Start: first, End: last}
}

// Build filters both tables by r and computes every aggregate shown on the dashboard.
// An empty selection is not an error: aggregates come back empty and PeakTrough is nil.
func (s *DashboardService) Build(ctx context.Context, r domain.DateRange) (domain.DashboardData, error) {
	start := time.Now()

	filtered := FilterTables(s.tables, r)
	hourly := AggregateByHour(filtered.Hours)
	seasonal := SeasonShares(AggregateBySeason(filtered.Days))

	data := domain.DashboardData{
		Range:     r,
		DayCount:  len(filtered.Days),
		HourCount: len(filtered.Hours),
		Seasonal:  seasonal,
		Hourly:    hourly,
	}
	for _, st := range seasonal {
		data.GrandTotal += st.Total
	}

	outcome := OutcomeOK
	pt, err := LocatePeakTrough(hourly)
	switch {
	case errors.Is(err, domain.ErrEmptyAggregate):
		outcome = OutcomeEmpty
	case err != nil:
		return domain.DashboardData{}, fmt.Errorf("service: failed to locate peak hour: %w", err)
	default:
		data.PeakTrough = &pt
	}

	elapsed := time.Since(start)
	s.metrics.ObserveRun(outcome, elapsed, data.DayCount, data.HourCount)
	s.log.Debug().
		Str("start", r.Start.Format(domain.DateLayout)).
		Str("end", r.End.Format(domain.DateLayout)).
		Int("days", data.DayCount).
		Int("hours", data.HourCount).
		Str("outcome", outcome).
		Dur("elapsed", elapsed).
		Msg("dashboard pipeline run")

	return data, nil
}

// Health checks the table source
func (s *DashboardService) Health(ctx context.Context) error {
	return s.repo.Health(ctx)
}
