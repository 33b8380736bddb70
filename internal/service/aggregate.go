package service

import (
	"sort"

	"github.com/ardhian127/bike-rental-analyst/internal/domain"
	"github.com/ardhian127/bike-rental-analyst/pkg/utils"
)

// AggregateByHour sums totals per hour of day across all dates.
// Only hours present in rows appear. The result is ordered by total
// descending; equal totals are ordered by hour ascending.
func AggregateByHour(rows []domain.HourRecord) []domain.HourlyTotal {
	sums := make(map[int]int64)
	for _, r := range rows {
		sums[r.Hour] += r.Total
	}

	out := make([]domain.HourlyTotal, 0, len(sums))
	for h, total := range sums {
		out = append(out, domain.HourlyTotal{Hour: h, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Hour < out[j].Hour
	})
	return out
}

// SortByHour returns a copy of hourly ordered by hour ascending, for charting
func SortByHour(hourly []domain.HourlyTotal) []domain.HourlyTotal {
	out := append([]domain.HourlyTotal(nil), hourly...)
	sort.Slice(out, func(i, j int) bool { return out[i].Hour < out[j].Hour })
	return out
}

// AggregateBySeason sums totals per season. The result is ordered by
// total descending, then by season name.
func AggregateBySeason(rows []domain.DayRecord) []domain.SeasonTotal {
	sums := make(map[domain.Season]int64)
	for _, r := range rows {
		sums[r.Season] += r.Total
	}

	out := make([]domain.SeasonTotal, 0, len(sums))
	for s, total := range sums {
		out = append(out, domain.SeasonTotal{Season: s, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Season < out[j].Season
	})
	return out
}

// SeasonShares fills in each season's share of the grand total, in percent
// rounded to one decimal. A zero grand total leaves every share at zero.
func SeasonShares(seasonal []domain.SeasonTotal) []domain.SeasonTotal {
	var grand int64
	for _, s := range seasonal {
		grand += s.Total
	}

	out := append([]domain.SeasonTotal(nil), seasonal...)
	if grand == 0 {
		return out
	}
	for i := range out {
		out[i].Percent = utils.RoundTo(float64(out[i].Total)*100/float64(grand), 1)
	}
	return out
}

// LocatePeakTrough finds the hours with the highest and lowest total.
// Ties go to the lowest hour.
func LocatePeakTrough(hourly []domain.HourlyTotal) (domain.PeakTrough, error) {
	if len(hourly) == 0 {
		return domain.PeakTrough{}, domain.ErrEmptyAggregate
	}

	first := hourly[0]
	pt := domain.PeakTrough{
		PeakHour:  first.Hour,
		PeakValue: first.Total,
		LowHour:   first.Hour,
		LowValue:  first.Total,
	}
	for _, h := range hourly[1:] {
		if h.Total > pt.PeakValue || (h.Total == pt.PeakValue && h.Hour < pt.PeakHour) {
			pt.PeakHour, pt.PeakValue = h.Hour, h.Total
		}
		if h.Total < pt.LowValue || (h.Total == pt.LowValue && h.Hour < pt.LowHour) {
			pt.LowHour, pt.LowValue = h.Hour, h.Total
		}
	}
	return pt, nil
}
