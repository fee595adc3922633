package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/glzpr1598/burn-to-win/internal/club"
	"github.com/glzpr1598/burn-to-win/internal/match"
	"github.com/glzpr1598/burn-to-win/internal/stats"
)

// statsFilter builds the match filter from query parameters, falling
// back to the view's default period and categories.
func statsFilter(r *http.Request, defaultTypes string) stats.Filter {
	period := r.URL.Query().Get("period")
	if period == "" {
		period = stats.DefaultPeriod
	}
	types := r.URL.Query().Get("types")
	if types == "" {
		types = defaultTypes
	}
	return stats.Filter{
		Period: period,
		Types:  stats.ParseList(types),
		Courts: stats.ParseList(r.URL.Query().Get("courts")),
	}
}

// filteredRecords loads the completed matches and applies the filter.
func (s *Server) filteredRecords(f stats.Filter) ([]match.Record, error) {
	records, err := s.Matches.ListCompleted()
	if err != nil {
		return nil, err
	}
	return f.Apply(records, time.Now()), nil
}

func memberNames(members []club.Member) []string {
	names := make([]string, 0, len(members))
	for _, m := range members {
		names = append(names, m.Name)
	}
	return names
}

func (s *Server) PlayerScoresHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		s.Metrics.IncStatsRequests()

		members, err := s.Club.ListActive()
		if err != nil {
			respondStoreError(w, err)
			return
		}
		records, err := s.filteredRecords(statsFilter(r, stats.DefaultTypes))
		if err != nil {
			respondStoreError(w, err)
			return
		}

		scores := stats.PlayerScores(memberNames(members), records)
		s.Metrics.ObserveProcessingDuration(time.Since(start).Seconds())
		respondData(w, scores)
	}
}

func (s *Server) ChemistryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		base := r.URL.Query().Get("base")
		if base == "" {
			respondError(w, http.StatusBadRequest, "기준 회원을 지정해 주세요.")
			return
		}
		s.Metrics.IncStatsRequests()

		members, err := s.Club.ListActive()
		if err != nil {
			respondStoreError(w, err)
			return
		}
		records, err := s.filteredRecords(statsFilter(r, stats.DefaultTypes))
		if err != nil {
			respondStoreError(w, err)
			return
		}

		respondData(w, stats.Chemistry(base, memberNames(members), records))
	}
}

func (s *Server) PairScoresHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.Metrics.IncStatsRequests()

		regulars, err := s.Club.ListRegulars()
		if err != nil {
			respondStoreError(w, err)
			return
		}
		records, err := s.filteredRecords(statsFilter(r, stats.DefaultPairTypes))
		if err != nil {
			respondStoreError(w, err)
			return
		}

		respondData(w, stats.PairScores(memberNames(regulars), records))
	}
}

func (s *Server) PairMatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pair := r.URL.Query().Get("pair")
		a, b := match.SplitPairKey(pair)
		if a == "" || b == "" {
			respondError(w, http.StatusBadRequest, "잘못된 페어입니다.")
			return
		}

		records, err := s.filteredRecords(statsFilter(r, stats.DefaultPairTypes))
		if err != nil {
			respondStoreError(w, err)
			return
		}

		respondData(w, stats.PairMatches(a, b, records))
	}
}

func (s *Server) AttendanceSheetHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now()
		year, err := strconv.Atoi(r.URL.Query().Get("year"))
		if err != nil {
			year = now.Year()
		}
		month, err := strconv.Atoi(r.URL.Query().Get("month"))
		if err != nil || month < 1 || month > 12 {
			month = int(now.Month())
		}

		members, err := s.Club.ListActive()
		if err != nil {
			respondStoreError(w, err)
			return
		}
		records, err := s.Matches.ListAll()
		if err != nil {
			respondStoreError(w, err)
			return
		}

		respondData(w, stats.MonthlySheet(memberNames(members), records, year, month))
	}
}

func (s *Server) AttendanceHistoryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("name")
		if name == "" {
			respondError(w, http.StatusBadRequest, "회원 이름을 지정해 주세요.")
			return
		}

		records, err := s.Matches.ListAll()
		if err != nil {
			respondStoreError(w, err)
			return
		}

		respondData(w, stats.MemberHistory(name, records))
	}
}
