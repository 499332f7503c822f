// Package dates implements the calendar math used across the planner:
// Monday-anchored week numbering, week date ranges, week-to-month markers, and
// the seasonal month groupings used by the overview page.
//
// Week numbering is Monday-based and covers every date of a year: week 1 is
// the Monday-to-Sunday span containing January 1, so it may begin in December
// of the previous year. A year has 52 or 53 weeks; in a leap year whose
// January 1 is a Sunday, December 31 lands one day past week 53 and is
// absorbed into it rather than opening a one-day week 54. This is
// deliberately NOT ISO 8601 (which can assign early-January dates to the
// previous year's last week); the planner needs every date of year Y to map
// to a week of year Y.
//
// All functions are pure. Dates are normalized to UTC midnight internally, so
// any wall-clock time in any location can be passed in.
package dates

import (
	"time"

	"github.com/andynu/bujo-pdf/pkg/errors"
)

// WeekRange describes one planner week. It is derived on demand, never
// stored.
type WeekRange struct {
	WeekNumber int
	Year       int
	StartDate  time.Time // Monday
	EndDate    time.Time // usually the following Sunday; see WeekEnd
}

// midnight truncates a time to UTC midnight of its calendar date.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// YearStartMonday returns the Monday of the week containing January 1.
// This anchor is at most six days before January 1 and may fall in December
// of the previous year.
func YearStartMonday(year int) time.Time {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	// Weekday is Sunday=0..Saturday=6; remap to a Monday-origin offset.
	daysBack := (int(jan1.Weekday()) + 6) % 7
	return jan1.AddDate(0, 0, -daysBack)
}

// WeekNumber returns the 1-based week of year containing d.
// The year is taken from d itself. The result never exceeds
// TotalWeeks(year): December 31 of a leap year beginning on a Sunday maps
// to week 53, the week that absorbs it.
func WeekNumber(d time.Time) int {
	d = midnight(d)
	n := rawWeekNumber(d)
	if total := TotalWeeks(d.Year()); n > total {
		n = total
	}
	return n
}

// rawWeekNumber is WeekNumber without the terminal-week clamp.
func rawWeekNumber(d time.Time) int {
	anchor := YearStartMonday(d.Year())
	days := int(d.Sub(anchor) / (24 * time.Hour))
	return days/7 + 1
}

// TotalWeeks returns the number of planner weeks in year. The result is
// always 52 or 53: a leap year whose January 1 is a Sunday (1928, 1956,
// 1984, 2012, 2040, ...) spreads its 366 days over 53 full weeks plus a
// lone December 31, which belongs to week 53.
func TotalWeeks(year int) int {
	dec31 := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	total := rawWeekNumber(dec31)
	if total > 53 {
		total = 53
	}
	return total
}

// WeekStart returns the Monday beginning week n of year.
// n outside [1, TotalWeeks(year)] is an out-of-range error.
func WeekStart(year, n int) (time.Time, error) {
	if err := checkWeek(year, n); err != nil {
		return time.Time{}, err
	}
	return YearStartMonday(year).AddDate(0, 0, (n-1)*7), nil
}

// WeekEnd returns the last date of week n of year. This is the week's
// Sunday, except for the final week of a leap year beginning on a Sunday,
// which runs one extra day so December 31 stays in-year.
func WeekEnd(year, n int) (time.Time, error) {
	start, err := WeekStart(year, n)
	if err != nil {
		return time.Time{}, err
	}
	end := start.AddDate(0, 0, 6)
	if n == TotalWeeks(year) {
		if dec31 := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC); end.Before(dec31) {
			end = dec31
		}
	}
	return end, nil
}

// Week returns the full range for week n of year.
func Week(year, n int) (WeekRange, error) {
	start, err := WeekStart(year, n)
	if err != nil {
		return WeekRange{}, err
	}
	end, err := WeekEnd(year, n)
	if err != nil {
		return WeekRange{}, err
	}
	return WeekRange{
		WeekNumber: n,
		Year:       year,
		StartDate:  start,
		EndDate:    end,
	}, nil
}

// Days returns the dates of the week, Monday first. Usually seven; the
// terminal week of a leap year beginning on a Sunday has eight.
func (w WeekRange) Days() []time.Time {
	n := int(w.EndDate.Sub(w.StartDate)/(24*time.Hour)) + 1
	days := make([]time.Time, n)
	for i := range days {
		days[i] = w.StartDate.AddDate(0, 0, i)
	}
	return days
}

// Contains reports whether d falls inside the week.
func (w WeekRange) Contains(d time.Time) bool {
	d = midnight(d)
	return !d.Before(w.StartDate) && !d.After(w.EndDate)
}

// WeekToMonthMap returns, for each week that contains the first day of a
// month of year, that month's three-letter abbreviation. Sidebars use it to
// print a month marker next to the week entry.
//
// A week owns month M iff the first day of M falls inside the week's
// Monday-to-Sunday span. Week 1 therefore always owns January, even when its
// Monday lies in December of the previous year.
func WeekToMonthMap(year int) map[int]string {
	m := make(map[int]string, 12)
	for month := time.January; month <= time.December; month++ {
		first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		m[WeekNumber(first)] = month.String()[:3]
	}
	return m
}

func checkWeek(year, n int) error {
	if total := TotalWeeks(year); n < 1 || n > total {
		return errors.New(errors.ErrCodeOutOfRange, "week %d outside [1, %d] for year %d", n, total, year)
	}
	return nil
}
