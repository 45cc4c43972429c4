package rule

import (
	"regexp"
	"strconv"
)

var (
	datePattern     = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	timePattern     = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9]):([0-5][0-9])$`)
	dateTimePattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2}) ([01][0-9]|2[0-3]):([0-5][0-9]):([0-5][0-9])$`)
)

// IsDate reports whether s is a YYYY-MM-DD string naming a real day.
func IsDate(s string) bool {
	m := datePattern.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	return calendarDate(m[1], m[2], m[3])
}

// IsTime reports whether s is HH:MM:SS on a 24 hour clock.
func IsTime(s string) bool {
	return timePattern.MatchString(s)
}

// IsDateTime reports whether s is "YYYY-MM-DD HH:MM:SS" naming a real day.
func IsDateTime(s string) bool {
	m := dateTimePattern.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	return calendarDate(m[1], m[2], m[3])
}

// IsValidCalendarDate reports whether the day exists in the proleptic
// Gregorian calendar. Years before 1 are rejected.
func IsValidCalendarDate(year, month, day int) bool {
	if year < 1 || month < 1 || month > 12 || day < 1 {
		return false
	}
	return day <= daysIn(year, month)
}

func calendarDate(y, m, d string) bool {
	// The patterns guarantee digits, so Atoi cannot fail here.
	year, _ := strconv.Atoi(y)
	month, _ := strconv.Atoi(m)
	day, _ := strconv.Atoi(d)
	return IsValidCalendarDate(year, month, day)
}

func daysIn(year, month int) int {
	switch month {
	case 2:
		if isLeap(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
