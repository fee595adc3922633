package stats

import (
	"fmt"
	"sort"

	"github.com/glzpr1598/burn-to-win/internal/match"
)

// AttendanceRow is one member's attendance within a month, derived
// from match participation. Days holds the distinct days of the month
// the member played on, ascending.
type AttendanceRow struct {
	Name  string `json:"name"`
	Count int    `json:"attendanceCount"`
	Days  []int  `json:"attendedDays"`
}

// MonthlySheet builds the attendance sheet for one calendar month.
// A member attended a day if they occupied any slot of any match
// played that day; multiple matches on one day count once.
func MonthlySheet(members []string, records []match.Record, year, month int) []AttendanceRow {
	rows := make([]AttendanceRow, 0, len(members))
	for _, name := range members {
		days := make(map[int]bool)
		for _, r := range records {
			t, ok := parseDate(r.Date)
			if !ok || t.Year() != year || int(t.Month()) != month {
				continue
			}
			if _, played := r.Placement(name); played {
				days[t.Day()] = true
			}
		}
		rows = append(rows, AttendanceRow{Name: name, Count: len(days), Days: sortedDays(days)})
	}
	return rows
}

// MonthHistory is one month of a single member's attendance.
type MonthHistory struct {
	YearMonth string `json:"yearMonth"`
	Count     int    `json:"attendanceCount"`
	Days      []int  `json:"attendedDays"`
}

// MemberHistory groups one member's match participation by month,
// newest month first.
func MemberHistory(name string, records []match.Record) []MonthHistory {
	type monthKey struct {
		year  int
		month int
	}
	byMonth := make(map[monthKey]map[int]bool)

	for _, r := range records {
		if _, played := r.Placement(name); !played {
			continue
		}
		t, ok := parseDate(r.Date)
		if !ok {
			continue
		}
		key := monthKey{year: t.Year(), month: int(t.Month())}
		if byMonth[key] == nil {
			byMonth[key] = make(map[int]bool)
		}
		byMonth[key][t.Day()] = true
	}

	keys := make([]monthKey, 0, len(byMonth))
	for key := range byMonth {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year > keys[j].year
		}
		return keys[i].month > keys[j].month
	})

	out := make([]MonthHistory, 0, len(keys))
	for _, key := range keys {
		days := byMonth[key]
		out = append(out, MonthHistory{
			YearMonth: fmt.Sprintf("%d년 %d월", key.year, key.month),
			Count:     len(days),
			Days:      sortedDays(days),
		})
	}
	return out
}

func sortedDays(days map[int]bool) []int {
	out := make([]int, 0, len(days))
	for day := range days {
		out = append(out, day)
	}
	sort.Ints(out)
	return out
}
