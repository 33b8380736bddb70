// Package csvfile loads the daily and hourly rental tables from flat CSV files.
package csvfile

import (
	"context"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/ardhian127/bike-rental-analyst/internal/domain"
)

// Column names of the input files
const (
	ColDate   = "dateday"
	ColSeason = "season"
	ColHour   = "hours"
	ColTotal  = "grand_total"
)

// Repository implements domain.TableRepository over two CSV files
type Repository struct {
	daysPath  string
	hoursPath string
}

// NewRepository creates a repository reading the given files
func NewRepository(daysPath, hoursPath string) *Repository {
	return &Repository{daysPath: daysPath, hoursPath: hoursPath}
}

// LoadDays reads and parses the daily table
func (r *Repository) LoadDays(ctx context.Context) ([]domain.DayRecord, error) {
	df, err := readFrame(r.daysPath, map[string]series.Type{
		ColDate:   series.String,
		ColSeason: series.String,
		ColTotal:  series.Float,
	})
	if err != nil {
		return nil, err
	}

	dates, err := parseDates(df.Col(ColDate).Records())
	if err != nil {
		return nil, fmt.Errorf("csvfile: %s: %w", r.daysPath, err)
	}
	seasons := df.Col(ColSeason).Records()
	totals := df.Col(ColTotal).Float()

	out := make([]domain.DayRecord, 0, df.Nrow())
	for i := range dates {
		out = append(out, domain.DayRecord{
			Date:   dates[i],
			Season: domain.ParseSeason(seasons[i]),
			Total:  toCount(totals[i]),
		})
	}
	return out, nil
}

// LoadHours reads and parses the hourly table
func (r *Repository) LoadHours(ctx context.Context) ([]domain.HourRecord, error) {
	df, err := readFrame(r.hoursPath, map[string]series.Type{
		ColDate:  series.String,
		ColHour:  series.Int,
		ColTotal: series.Float,
	})
	if err != nil {
		return nil, err
	}

	dates, err := parseDates(df.Col(ColDate).Records())
	if err != nil {
		return nil, fmt.Errorf("csvfile: %s: %w", r.hoursPath, err)
	}
	hours, err := df.Col(ColHour).Int()
	if err != nil {
		return nil, fmt.Errorf("csvfile: %s: column %q: %w", r.hoursPath, ColHour, err)
	}
	totals := df.Col(ColTotal).Float()

	out := make([]domain.HourRecord, 0, df.Nrow())
	for i := range dates {
		out = append(out, domain.HourRecord{
			Date:  dates[i],
			Hour:  hours[i],
			Total: toCount(totals[i]),
		})
	}
	return out, nil
}

// Health checks that both files are still readable
func (r *Repository) Health(ctx context.Context) error {
	for _, p := range []string{r.daysPath, r.hoursPath} {
		if _, err := os.Stat(p); err != nil {
			return fmt.Errorf("csvfile: health check failed: %w", err)
		}
	}
	return nil
}

func readFrame(path string, types map[string]series.Type) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("csvfile: failed to open %s: %w", path, err)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f, dataframe.WithTypes(types))
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("csvfile: failed to read %s: %w", path, df.Err)
	}

	present := make(map[string]bool, df.Ncol())
	for _, name := range df.Names() {
		present[name] = true
	}
	for name := range types {
		if !present[name] {
			return dataframe.DataFrame{}, fmt.Errorf("csvfile: %s: missing column %q", path, name)
		}
	}
	return df, nil
}

func parseDates(raw []string) ([]time.Time, error) {
	out := make([]time.Time, len(raw))
	for i, s := range raw {
		d, err := domain.ParseDate(s)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid %s %q: %w", i+1, ColDate, s, err)
		}
		out[i] = d
	}
	return out, nil
}

// toCount rounds a parsed total; NaN (empty cell) counts as zero
func toCount(v float64) int64 {
	if math.IsNaN(v) {
		return 0
	}
	return int64(math.Round(v))
}
