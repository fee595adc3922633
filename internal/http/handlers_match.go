package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/glzpr1598/burn-to-win/internal/match"
)

// matchRequest carries a submitted match. Scores arrive as strings so
// non-numeric input is rejected loudly instead of silently coerced.
type matchRequest struct {
	Date       string `json:"date"`
	Court      string `json:"court"`
	Team1Deuce string `json:"team1_deuce"`
	Team1Ad    string `json:"team1_ad"`
	Team2Deuce string `json:"team2_deuce"`
	Team2Ad    string `json:"team2_ad"`
	Team1Score string `json:"team1_score"`
	Team2Score string `json:"team2_score"`
	Video      string `json:"video"`
	Notes      string `json:"etc"`
}

func (req *matchRequest) toRecord() (*match.Record, string) {
	if req.Date == "" {
		return nil, "날짜를 입력해 주세요."
	}
	if req.Team1Deuce == "" || req.Team2Deuce == "" {
		return nil, "양 팀의 선수를 입력해 주세요."
	}
	s1, err := strconv.Atoi(req.Team1Score)
	if err != nil {
		return nil, "점수는 숫자여야 합니다."
	}
	s2, err := strconv.Atoi(req.Team2Score)
	if err != nil {
		return nil, "점수는 숫자여야 합니다."
	}
	return &match.Record{
		Date:       req.Date,
		Court:      req.Court,
		Team1Deuce: req.Team1Deuce,
		Team1Ad:    match.SlotOf(req.Team1Ad),
		Team2Deuce: req.Team2Deuce,
		Team2Ad:    match.SlotOf(req.Team2Ad),
		Team1Score: s1,
		Team2Score: s2,
		Video:      req.Video,
		Notes:      req.Notes,
	}, ""
}

func (s *Server) CreateMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req matchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "잘못된 요청입니다.")
			return
		}
		record, msg := req.toRecord()
		if msg != "" {
			respondError(w, http.StatusBadRequest, msg)
			return
		}

		if err := s.Matches.Create(record); err != nil {
			respondStoreError(w, err)
			return
		}
		s.Metrics.IncMatchesRecorded()

		if err := s.Notifier.NotifyMatchResult(record, isDryRunFromContext(r)); err != nil {
			log.Error("Failed to notify match result", "error", err, "matchID", record.ID)
		}

		respondData(w, record)
	}
}

func (s *Server) UpdateMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "잘못된 경기 번호입니다.")
			return
		}

		var req matchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "잘못된 요청입니다.")
			return
		}
		record, msg := req.toRecord()
		if msg != "" {
			respondError(w, http.StatusBadRequest, msg)
			return
		}
		record.ID = id

		if err := s.Matches.Update(record); err != nil {
			respondStoreError(w, err)
			return
		}
		respondData(w, record)
	}
}

func (s *Server) DeleteMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "잘못된 경기 번호입니다.")
			return
		}
		if err := s.Matches.Delete(id); err != nil {
			respondStoreError(w, err)
			return
		}
		respondOK(w, "경기 기록을 삭제했습니다.")
	}
}

func (s *Server) GetMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "잘못된 경기 번호입니다.")
			return
		}
		record, err := s.Matches.Get(id)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		respondData(w, record)
	}
}

func (s *Server) ListMatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := s.Matches.ListAll()
		if err != nil {
			respondStoreError(w, err)
			return
		}
		respondData(w, records)
	}
}

func (s *Server) ListCourtsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		courts, err := s.Matches.DistinctCourts()
		if err != nil {
			respondStoreError(w, err)
			return
		}
		respondData(w, courts)
	}
}
