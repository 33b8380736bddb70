package memory

import (
	"context"
	"time"

	"github.com/ardhian127/bike-rental-analyst/internal/domain"
)

// Repository implements domain.TableRepository over rows held in memory
type Repository struct {
	days  []domain.DayRecord
	hours []domain.HourRecord
}

// NewRepository creates a repository serving the given rows
func NewRepository(days []domain.DayRecord, hours []domain.HourRecord) *Repository {
	return &Repository{days: days, hours: hours}
}

// LoadDays returns a copy of the daily rows
func (r *Repository) LoadDays(ctx context.Context) ([]domain.DayRecord, error) {
	return append([]domain.DayRecord(nil), r.days...), nil
}

// LoadHours returns a copy of the hourly rows
func (r *Repository) LoadHours(ctx context.Context) ([]domain.HourRecord, error) {
	return append([]domain.HourRecord(nil), r.hours...), nil
}

// Health always returns nil
func (r *Repository) Health(ctx context.Context) error {
	return nil
}

// demoDays lists one sample day per season
var demoDays = []struct {
	date   string
	season domain.Season
	scale  int64
}{
	{"2012-03-21", domain.SeasonSpring, 2},
	{"2012-06-21", domain.SeasonSummer, 4},
	{"2012-09-22", domain.SeasonFall, 5},
	{"2012-12-21", domain.SeasonWinter, 3},
}

// hourProfile is a typical weekday demand curve, indexed by hour
var hourProfile = [24]int64{
	16, 8, 5, 3, 1, 4, 25, 70, 120, 60, 40, 50,
	65, 62, 58, 60, 90, 150, 130, 85, 60, 45, 35, 22,
}

// NewDemoRepository returns a small built-in dataset for running without input files
func NewDemoRepository() *Repository {
	var (
		days  []domain.DayRecord
		hours []domain.HourRecord
	)
	for _, d := range demoDays {
		date, _ := time.Parse(domain.DateLayout, d.date)
		var total int64
		for h, base := range hourProfile {
			v := base * d.scale
			total += v
			hours = append(hours, domain.HourRecord{Date: date, Hour: h, Total: v})
		}
		days = append(days, domain.DayRecord{Date: date, Season: d.season, Total: total})
	}
	return NewRepository(days, hours)
}
