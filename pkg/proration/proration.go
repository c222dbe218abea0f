// Package proration computes days remaining in differently-anchored
// billing cycles and prorates annual or quarterly charges across them.
// All functions are pure; the caller supplies the closing date.
package proration

import (
	"time"

	"github.com/flipmetrics/flipcalc/pkg/constants"
)

// midnight truncates a time to its calendar date.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetweenInclusive(from, through time.Time) int {
	from = midnight(from)
	through = midnight(through)
	if through.Before(from) {
		return 0
	}
	return int(through.Sub(from).Hours()/24) + 1
}

// DaysRemainingInYear returns the number of days from the closing date
// through December 31 of the same year, inclusive of the closing day.
func DaysRemainingInYear(closing time.Time) int {
	yearEnd := time.Date(closing.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
	return daysBetweenInclusive(closing, yearEnd)
}

// DaysRemainingInSchoolYear returns the number of days from the closing
// date through the end of the school year (June 30), inclusive. Closings
// in July through December run to June 30 of the following year.
func DaysRemainingInSchoolYear(closing time.Time) int {
	year := closing.Year()
	if closing.Month() >= time.July {
		year++
	}
	schoolYearEnd := time.Date(year, time.June, 30, 0, 0, 0, 0, time.UTC)
	return daysBetweenInclusive(closing, schoolYearEnd)
}

// QuarterDays returns the days remaining in the calendar quarter that
// contains the closing date (inclusive of the closing day) and the total
// day count of that quarter.
func QuarterDays(closing time.Time) (remaining, total int) {
	quarter := (int(closing.Month()) - 1) / 3
	start := time.Date(closing.Year(), time.Month(quarter*3+1), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 3, 0).AddDate(0, 0, -1)
	return daysBetweenInclusive(closing, end), daysBetweenInclusive(start, end)
}

// ProrateAnnual prorates an annual amount over the days remaining in a
// 365-day year. Leap years are deliberately not special-cased.
func ProrateAnnual(annualAmount float64, daysRemaining int) float64 {
	if annualAmount == 0 || daysRemaining <= 0 {
		return 0
	}
	return annualAmount / constants.DaysPerYear * float64(daysRemaining)
}

// ProrateQuarterly prorates one quarter's share of an annual amount over
// the days remaining in the quarter.
func ProrateQuarterly(annualAmount float64, daysRemaining, daysInQuarter int) float64 {
	if annualAmount == 0 || daysRemaining <= 0 || daysInQuarter <= 0 {
		return 0
	}
	return annualAmount / 4 / float64(daysInQuarter) * float64(daysRemaining)
}

// ParseClosingDate parses a closing date in the config layout. The second
// return value reports whether a usable date was supplied; an empty string
// is not an error, it simply disables proration.
func ParseClosingDate(date string) (time.Time, bool) {
	if date == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(constants.ClosingDateLayout, date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
