package http

import (
	"html/template"

	"github.com/ardhian127/bike-rental-analyst/internal/domain"
	"github.com/ardhian127/bike-rental-analyst/pkg/utils"
)

// Explanation panels revealed by the toggle buttons
const (
	explainSeason = "season"
	explainHourly = "hourly"

	seasonExplanation = `Fall is the season with the highest number of bike rentals. ` +
		`Cooler temperatures and more comfortable weather most likely draw more people ` +
		`to spend time outdoors.`
	hourlyExplanation = `Rentals peak at 17.00, when many people ride after finishing work ` +
		`and use the late afternoon to exercise or unwind. Demand bottoms out at 04.00, ` +
		`while most people are still asleep. The curve follows the usual daily rhythm: ` +
		`little need for bikes from late evening through the early morning.`
)

type seasonRow struct {
	Season  string
	Total   string
	Percent string
}

type pageView struct {
	Start, End       string
	MinDate, MaxDate string
	GrandTotal       string
	DayCount         int
	Seasons          []seasonRow
	HasPeak          bool
	PeakHour         string
	PeakValue        string
	LowHour          string
	LowValue         string
	Explain          string
	SeasonText       string
	HourlyText       string
}

func newPageView(data domain.DashboardData, bounds domain.DateRange, explain string) pageView {
	v := pageView{
		Start:      data.Range.Start.Format(domain.DateLayout),
		End:        data.Range.End.Format(domain.DateLayout),
		MinDate:    bounds.Start.Format(domain.DateLayout),
		MaxDate:    bounds.End.Format(domain.DateLayout),
		GrandTotal: utils.FormatCount(data.GrandTotal),
		DayCount:   data.DayCount,
		Explain:    explain,
	}
	for _, st := range data.Seasonal {
		v.Seasons = append(v.Seasons, seasonRow{
			Season:  string(st.Season),
			Total:   utils.FormatCount(st.Total),
			Percent: utils.FormatPercent(st.Percent),
		})
	}
	if pt := data.PeakTrough; pt != nil {
		v.HasPeak = true
		v.PeakHour = utils.HourLabel(pt.PeakHour)
		v.PeakValue = utils.FormatCount(pt.PeakValue)
		v.LowHour = utils.HourLabel(pt.LowHour)
		v.LowValue = utils.FormatCount(pt.LowValue)
	}
	switch explain {
	case explainSeason:
		v.SeasonText = seasonExplanation
	case explainHourly:
		v.HourlyText = hourlyExplanation
	}
	return v
}

var pageTemplate = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Bike Rental Data</title>
<style>
body { font-family: sans-serif; margin: 0; display: flex; }
aside { width: 240px; padding: 1rem; background: #f0f2f6; min-height: 100vh; }
main { flex: 1; padding: 1rem 2rem; }
iframe { width: 100%; height: 560px; border: 0; }
.note { background: #eef6ee; padding: .75rem 1rem; border-radius: 4px; }
</style>
</head>
<body>
<aside>
<form method="get" action="/">
<h3>Date range</h3>
<label>From <input type="date" name="start" value="{{.Start}}" min="{{.MinDate}}" max="{{.MaxDate}}"></label><br>
<label>To <input type="date" name="end" value="{{.End}}" min="{{.MinDate}}" max="{{.MaxDate}}"></label><br>
<button type="submit">Apply</button>
<h3>Explanations</h3>
<button type="submit" name="explain" value="season">Seasonal rentals explained</button><br>
<button type="submit" name="explain" value="hourly">Hourly rentals explained</button>
</form>
</aside>
<main>
<h1>Bike Rental Data</h1>
<p>Total rentals: <strong>{{.GrandTotal}}</strong> over {{.DayCount}} days</p>

<h2>Bike rentals by season</h2>
{{if .Seasons}}<table>
<tr><th>Season</th><th>Rentals</th><th>Share</th></tr>
{{range .Seasons}}<tr><td>{{.Season}}</td><td>{{.Total}}</td><td>{{.Percent}}</td></tr>
{{end}}</table>{{else}}<p>No rentals in the selected range.</p>{{end}}
<iframe src="/charts/season?start={{.Start}}&end={{.End}}" title="Rentals by season"></iframe>
{{if .SeasonText}}<p class="note">{{.SeasonText}}</p>{{end}}

<h2>Bike rentals by hour</h2>
{{if .HasPeak}}<p>Peak: {{.PeakHour}} ({{.PeakValue}}) &middot; Low: {{.LowHour}} ({{.LowValue}})</p>{{end}}
<iframe src="/charts/hourly?start={{.Start}}&end={{.End}}" title="Rentals by hour"></iframe>
{{if .HourlyText}}<p class="note">{{.HourlyText}}</p>{{end}}
</main>
</body>
</html>
`))
