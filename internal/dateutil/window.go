package dateutil

import (
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultRadius is the number of days shown on each side of the selected day.
const DefaultRadius = 3

// Day is one entry of the day selector.
type Day struct {
	Date     time.Time
	Name     string // short weekday, upper-cased ("MON")
	Number   int    // day of month
	Selected bool
	Today    bool
}

// DayWindow returns the 2*radius+1 days centered on selected.
// A negative radius is treated as zero.
func DayWindow(selected, today time.Time, radius int, lang language.Tag) []Day {
	if radius < 0 {
		radius = 0
	}
	upper := cases.Upper(lang)
	selected = TruncateToDay(selected)

	days := make([]Day, 0, 2*radius+1)
	for i := -radius; i <= radius; i++ {
		date := AddDays(selected, i)
		days = append(days, Day{
			Date:     date,
			Name:     upper.String(date.Format("Mon")),
			Number:   date.Day(),
			Selected: i == 0,
			Today:    IsToday(date, today),
		})
	}
	return days
}

// MonthTitle formats the header title for the selected date ("January 2025").
func MonthTitle(t time.Time) string {
	return t.Format("January 2006")
}
