package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeason(t *testing.T) {
	assert.Equal(t, SeasonFall, ParseSeason(" Fall "))
	assert.Equal(t, SeasonWinter, ParseSeason("WINTER"))
	assert.Equal(t, Season("monsoon"), ParseSeason("Monsoon"))
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{name: "date", in: "2012-06-21", want: time.Date(2012, 6, 21, 0, 0, 0, 0, time.UTC)},
		{name: "datetime drops time", in: "2012-06-21 13:45:00", want: time.Date(2012, 6, 21, 0, 0, 0, 0, time.UTC)},
		{name: "padded", in: " 2012-06-21 ", want: time.Date(2012, 6, 21, 0, 0, 0, 0, time.UTC)},
		{name: "wrong layout", in: "21/06/2012", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDateOf(t *testing.T) {
	in := time.Date(2012, 6, 21, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, time.Date(2012, 6, 21, 0, 0, 0, 0, time.UTC), DateOf(in))
}

func TestDateBounds(t *testing.T) {
	d := func(day int) time.Time { return time.Date(2012, 1, day, 0, 0, 0, 0, time.UTC) }
	tables := Tables{Days: []DayRecord{{Date: d(5)}, {Date: d(2)}, {Date: d(9)}}}

	first, last, ok := tables.DateBounds()

	assert.True(t, ok)
	assert.Equal(t, d(2), first)
	assert.Equal(t, d(9), last)

	_, _, ok = Tables{}.DateBounds()
	assert.False(t, ok)
}

func TestDateRangeContains(t *testing.T) {
	d := func(day int) time.Time { return time.Date(2012, 1, day, 0, 0, 0, 0, time.UTC) }
	r := DateRange{Start: d(2), End: d(4)}

	assert.False(t, r.Contains(d(1)))
	assert.True(t, r.Contains(d(2)))
	assert.True(t, r.Contains(d(3)))
	assert.True(t, r.Contains(d(4)))
	assert.False(t, r.Contains(d(5)))
}
