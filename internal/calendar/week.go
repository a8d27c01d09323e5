// Package calendar implements the showtime aggregation pipeline: the
// movie-week window, per-day and per-week aggregation of screening
// documents, theater normalization and the calendar view filters.
package calendar

import (
	"fmt"
	"time"
)

// dayKeyLayout is the canonical day-key format.  It round-trips losslessly
// and sorts lexicographically in date order.
const dayKeyLayout = "2006-01-02"

// paris is the fixed civil timezone against which "today" is computed.
// The server's own timezone must never leak into the calendar, so every
// date boundary in this package goes through it.
var paris = mustLocation("Europe/Paris")

func mustLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(fmt.Sprintf("calendar: load location %s: %v", name, err))
	}
	return loc
}

// StartOfTodayInParis returns midnight, Paris time, for the current wall
// clock.  It is the anchor for all "upcoming" decisions and is recomputed
// on every call; any caching belongs to the layers above.
func StartOfTodayInParis() time.Time {
	return startOfDayInParis(time.Now())
}

func startOfDayInParis(t time.Time) time.Time {
	t = t.In(paris)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, paris)
}

// NextMovieWeek returns the 7 dates of the current programming week.  The
// cinema industry releases films on Wednesday, so the window starts on the
// first Wednesday on or after today: on a Wednesday the week starts today,
// on a Tuesday it starts tomorrow, on a Thursday it starts six days out.
func NextMovieWeek() []time.Time {
	return nextMovieWeekFrom(StartOfTodayInParis())
}

func nextMovieWeekFrom(today time.Time) []time.Time {
	start := today
	for start.Weekday() != time.Wednesday {
		start = start.AddDate(0, 0, 1)
	}
	week := make([]time.Time, 7)
	for i := range week {
		week[i] = start.AddDate(0, 0, i)
	}
	return week
}

// DayKey formats a date as its canonical YYYY-MM-DD key, evaluated in
// Paris time.  The key doubles as the store query parameter and as the
// showtimes_by_day map key.
func DayKey(t time.Time) string {
	return t.In(paris).Format(dayKeyLayout)
}

// ParseDayKey parses a canonical day-key back into midnight Paris time.
func ParseDayKey(key string) (time.Time, error) {
	return time.ParseInLocation(dayKeyLayout, key, paris)
}

// IsSameOrAfterToday reports whether the date of t, at day granularity,
// is today or later.  Equality counts: a screening earlier today is still
// "today" here, hour-level filtering is a separate concern.
func IsSameOrAfterToday(t time.Time) bool {
	return !startOfDayInParis(t).Before(StartOfTodayInParis())
}

// FloatHourToString renders a fractional hour the way the site prints
// showtimes: 19.5 becomes "19h30", 14 becomes "14h00".
func FloatHourToString(hour float64) string {
	h := int(hour)
	m := int((hour-float64(h))*60 + 0.5)
	if m == 60 {
		h++
		m = 0
	}
	return fmt.Sprintf("%dh%02d", h, m)
}
