package service

import (
	"berries/internal/domain/constant"
	"fmt"
	"time"
)

// NextOccurrence returns the occurrence one period after from.
// Monthly steps keep the day of month and clamp it to the last day of shorter
// months (Jan 31 becomes Feb 28 or 29). An unknown period is a programming
// error: callers validate periods at the boundary.
func NextOccurrence(period constant.Period, from time.Time) time.Time {
	switch period {
	case constant.PeriodDaily:
		return from.AddDate(0, 0, 1)
	case constant.PeriodWeekly:
		return from.AddDate(0, 0, 7)
	case constant.PeriodMonthly:
		return addMonths(from, 1)
	}
	panic(fmt.Sprintf("service: unknown period %q", period))
}

func addMonths(from time.Time, months int) time.Time {
	y, m, d := from.Date()
	target := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, from.Location())
	if last := daysIn(target.Year(), target.Month(), from.Location()); d > last {
		d = last
	}
	return time.Date(target.Year(), target.Month(), d,
		from.Hour(), from.Minute(), from.Second(), from.Nanosecond(), from.Location())
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	// Day 0 of the following month is the last day of month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

// reanchor moves the time of day of scheduled onto the calendar date of now,
// both seen in the location of scheduled.
func reanchor(scheduled, now time.Time) time.Time {
	loc := scheduled.Location()
	y, m, d := now.In(loc).Date()
	return time.Date(y, m, d,
		scheduled.Hour(), scheduled.Minute(), scheduled.Second(), scheduled.Nanosecond(), loc)
}
