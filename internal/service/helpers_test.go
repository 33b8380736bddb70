package service

import (
	"time"

	"github.com/ardhian127/bike-rental-analyst/internal/domain"
)

func date(s string) time.Time {
	d, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func sampleTables() domain.Tables {
	return domain.Tables{
		Days: []domain.DayRecord{
			{Date: date("2012-01-01"), Season: domain.SeasonWinter, Total: 200},
			{Date: date("2012-01-02"), Season: domain.SeasonWinter, Total: 100},
			{Date: date("2012-10-01"), Season: domain.SeasonFall, Total: 500},
		},
		Hours: []domain.HourRecord{
			{Date: date("2012-01-01"), Hour: 8, Total: 100},
			{Date: date("2012-01-01"), Hour: 17, Total: 100},
			{Date: date("2012-01-02"), Hour: 8, Total: 50},
			{Date: date("2012-01-02"), Hour: 4, Total: 50},
			{Date: date("2012-10-01"), Hour: 17, Total: 300},
			{Date: date("2012-10-01"), Hour: 4, Total: 200},
		},
	}
}
