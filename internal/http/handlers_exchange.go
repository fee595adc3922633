package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/glzpr1598/burn-to-win/internal/exchange"
)

func (s *Server) ListExchangeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		masters, err := s.Exchange.ListMasters()
		if err != nil {
			respondStoreError(w, err)
			return
		}
		respondData(w, masters)
	}
}

func (s *Server) CreateExchangeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			MatchDate string `json:"match_date"`
			Opponent  string `json:"opponent_team_name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.MatchDate == "" || req.Opponent == "" {
			respondError(w, http.StatusBadRequest, "날짜와 상대 팀을 입력해 주세요.")
			return
		}

		master, err := s.Exchange.CreateMaster(req.MatchDate, req.Opponent)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		respondData(w, master)
	}
}

func (s *Server) DeleteExchangeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "잘못된 교류전 번호입니다.")
			return
		}
		if err := s.Exchange.DeleteMaster(id); err != nil {
			respondStoreError(w, err)
			return
		}
		respondOK(w, "교류전을 삭제했습니다.")
	}
}

func (s *Server) ListExchangeDetailsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "잘못된 교류전 번호입니다.")
			return
		}
		details, err := s.Exchange.ListDetails(id)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		respondData(w, details)
	}
}

func (s *Server) UpdateExchangeDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "잘못된 교류전 번호입니다.")
			return
		}

		var d exchange.Detail
		if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
			respondError(w, http.StatusBadRequest, "잘못된 요청입니다.")
			return
		}
		d.MasterID = id
		if d.CourtNum < 1 || d.MatchRound < 1 {
			respondError(w, http.StatusBadRequest, "코트와 라운드를 지정해 주세요.")
			return
		}

		if err := s.Exchange.UpdateDetail(&d); err != nil {
			respondStoreError(w, err)
			return
		}
		respondData(w, d)
	}
}
