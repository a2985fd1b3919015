package study

import "time"

// DayStart returns midnight of now's calendar day in tz, converted to UTC.
func DayStart(now time.Time, tz *time.Location) time.Time {
	local := now.In(tz)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, tz).UTC()
}

// NextDayStart returns midnight of the following calendar day in tz, converted to UTC.
func NextDayStart(now time.Time, tz *time.Location) time.Time {
	return AddLocalDays(DayStart(now, tz), 1, tz)
}

// AddLocalDays moves a local midnight forward by n calendar days.
// AddDate keeps DST transitions right where Add(24h) would not.
func AddLocalDays(dayStart time.Time, n int, tz *time.Location) time.Time {
	next := dayStart.In(tz).AddDate(0, 0, n)
	return time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, tz).UTC()
}

// ParseTimezone parses an IANA zone name, returning UTC for empty or unknown names.
func ParseTimezone(tz string) *time.Location {
	if tz == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}
