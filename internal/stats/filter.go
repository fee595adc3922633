package stats

import (
	"strings"
	"time"

	"github.com/glzpr1598/burn-to-win/internal/match"
)

// Query-parameter defaults for the statistics views.
const (
	DefaultPeriod = "6m"

	// The five canonical categories shown on the player and chemistry
	// pages.
	DefaultTypes = "남단,여단,남복,여복,혼복"

	// The doubles categories used for pair statistics.
	DefaultPairTypes = "남복,여복,혼복,혼복(남3),혼복(여3),혼복(남vs여)"
)

// Filter narrows a match set by period, category and court. An empty
// Types or Courts list leaves that dimension unfiltered.
type Filter struct {
	Period string
	Types  []string
	Courts []string
}

// ParseList splits a comma-separated query parameter into a set,
// dropping blanks. An empty parameter yields nil, i.e. no filter.
func ParseList(csv string) []string {
	if csv == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Apply returns the records passing all filter dimensions, preserving
// input order.
func (f Filter) Apply(records []match.Record, now time.Time) []match.Record {
	period := PeriodRange(f.Period, now)
	types := toSet(f.Types)
	courts := toSet(f.Courts)

	var out []match.Record
	for _, r := range records {
		if !period.ContainsDate(r.Date) {
			continue
		}
		if types != nil && !types[r.Type] {
			continue
		}
		if courts != nil && !courts[r.Court] {
			continue
		}
		out = append(out, r)
	}
	return out
}

func toSet(items []string) map[string]bool {
	if len(items) == 0 {
		return nil
	}
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}
