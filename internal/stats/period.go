package stats

import "time"

// Range is an inclusive date window over match records. The zero
// value matches nothing; use PeriodRange to build one.
type Range struct {
	start time.Time
	end   time.Time
	all   bool
}

// PeriodRange maps a period token and a reference instant to a date
// range. "all", the empty token and any unrecognized token produce the
// permissive identity range. The relative tokens (1m, 3m, 6m, 1y) are
// calendar offsets from the reference day, compared date-only; the
// fixed-year tokens keep an end-of-day upper bound.
func PeriodRange(token string, now time.Time) Range {
	today := truncateDay(now)

	switch token {
	case "", "all":
		return Range{all: true}
	case "1m":
		return Range{start: today.AddDate(0, -1, 0), end: today}
	case "3m":
		return Range{start: today.AddDate(0, -3, 0), end: today}
	case "6m":
		return Range{start: today.AddDate(0, -6, 0), end: today}
	case "1y":
		return Range{start: today.AddDate(-1, 0, 0), end: today}
	case "2024":
		return yearRange(2024)
	case "2025":
		return yearRange(2025)
	default:
		// Invalid tokens are ignored rather than rejected.
		return Range{all: true}
	}
}

func yearRange(year int) Range {
	return Range{
		start: time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC),
		end:   time.Date(year, 12, 31, 23, 59, 59, 0, time.UTC),
	}
}

// Contains reports whether the instant falls in the range. The
// instant's time of day is zeroed before comparison.
func (r Range) Contains(t time.Time) bool {
	if r.all {
		return true
	}
	day := truncateDay(t)
	return !day.Before(r.start) && !day.After(r.end)
}

// ContainsDate applies Contains to a stored date string. Records with
// unparseable dates are excluded from every bounded window.
func (r Range) ContainsDate(date string) bool {
	if r.all {
		return true
	}
	t, ok := parseDate(date)
	if !ok {
		return false
	}
	return r.Contains(t)
}

// parseDate reads the leading yyyy-mm-dd of a stored date value,
// tolerating a trailing time component.
func parseDate(date string) (time.Time, bool) {
	if len(date) > 10 {
		date = date[:10]
	}
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
