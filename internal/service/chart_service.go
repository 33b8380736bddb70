package service

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/ardhian127/bike-rental-analyst/internal/domain"
	"github.com/ardhian127/bike-rental-analyst/pkg/utils"
)

// emptySubtitle is shown on a chart whose aggregate has no entries
const emptySubtitle = "No rentals in the selected range"

var (
	seasonPalette = opts.Colors{"#FF6F61", "#6B5B95", "#88B04B", "#F7CAC9", "#92A8D1"}
	linePalette   = opts.Colors{"#555555"}
)

// ChartService renders dashboard aggregates as standalone HTML charts
type ChartService struct {
	width  string
	height string
}

// NewChartService creates a chart renderer producing charts of the given CSS size
func NewChartService(width, height string) *ChartService {
	return &ChartService{width: width, height: height}
}

// RenderSeasonPie writes a pie chart of seasonal totals with percentage labels
func (s *ChartService) RenderSeasonPie(w io.Writer, seasonal []domain.SeasonTotal) error {
	subtitle := ""
	if len(seasonal) == 0 {
		subtitle = emptySubtitle
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Rentals by season",
			Width:     s.width,
			Height:    s.height,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Bike rental distribution by season",
			Subtitle: subtitle,
		}),
		charts.WithColorsOpts(seasonPalette),
	)

	items := make([]opts.PieData, 0, len(seasonal))
	for _, st := range seasonal {
		items = append(items, opts.PieData{Name: string(st.Season), Value: st.Total})
	}
	pie.AddSeries("Rentals", items).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Formatter: "{b}: {d}%"}))

	if err := pie.Render(w); err != nil {
		return fmt.Errorf("chart: failed to render season pie: %w", err)
	}
	return nil
}

// RenderHourlyLine writes a line chart of hourly totals ordered by hour,
// with peak and low hour callouts when pt is set
func (s *ChartService) RenderHourlyLine(w io.Writer, hourly []domain.HourlyTotal, pt *domain.PeakTrough) error {
	subtitle := ""
	if len(hourly) == 0 {
		subtitle = emptySubtitle
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Rentals by hour",
			Width:     s.width,
			Height:    s.height,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Bike rentals by hour",
			Subtitle: subtitle,
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Hour"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Renters"}),
		charts.WithColorsOpts(linePalette),
	)

	ordered := SortByHour(hourly)
	labels := make([]string, 0, len(ordered))
	points := make([]opts.LineData, 0, len(ordered))
	for _, h := range ordered {
		labels = append(labels, utils.HourLabel(h.Hour))
		points = append(points, opts.LineData{Value: h.Total})
	}

	var seriesOpts []charts.SeriesOpts
	if pt != nil {
		seriesOpts = append(seriesOpts, charts.WithMarkPointNameCoordItemOpts(
			opts.MarkPointNameCoordItem{
				Name:       "Peak",
				Coordinate: []interface{}{utils.HourLabel(pt.PeakHour), pt.PeakValue},
				Value:      "Peak: " + utils.FormatCount(pt.PeakValue),
			},
			opts.MarkPointNameCoordItem{
				Name:       "Low",
				Coordinate: []interface{}{utils.HourLabel(pt.LowHour), pt.LowValue},
				Value:      "Low: " + utils.FormatCount(pt.LowValue),
			},
		))
	}
	line.SetXAxis(labels).AddSeries("Rentals", points, seriesOpts...)

	if err := line.Render(w); err != nil {
		return fmt.Errorf("chart: failed to render hourly line: %w", err)
	}
	return nil
}
