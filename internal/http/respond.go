package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/glzpr1598/burn-to-win/internal/board"
	"github.com/glzpr1598/burn-to-win/internal/club"
	"github.com/glzpr1598/burn-to-win/internal/exchange"
	"github.com/glzpr1598/burn-to-win/internal/match"
	"github.com/glzpr1598/burn-to-win/internal/schedule"
)

// envelope is the JSON shape every API response uses.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, env envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

func respondOK(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: message})
}

func respondData(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: data})
}

func respondError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Success: false, Message: message})
}

// respondStoreError maps the stores' sentinel errors onto HTTP statuses
// with distinct user-facing messages. Anything unmapped is a 500.
func respondStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, schedule.ErrScheduleFull):
		respondError(w, http.StatusConflict, "정원이 가득 찼습니다.")
	case errors.Is(err, schedule.ErrAlreadyRegistered):
		respondError(w, http.StatusConflict, "이미 신청한 회원입니다.")
	case errors.Is(err, schedule.ErrNotRegistered):
		respondError(w, http.StatusNotFound, "신청 내역이 없습니다.")
	case errors.Is(err, schedule.ErrNotEligible):
		respondError(w, http.StatusForbidden, "참가 대상이 아닙니다.")
	case errors.Is(err, schedule.ErrNotFound):
		respondError(w, http.StatusNotFound, "일정을 찾을 수 없습니다.")
	case errors.Is(err, match.ErrNotFound):
		respondError(w, http.StatusNotFound, "경기 기록을 찾을 수 없습니다.")
	case errors.Is(err, club.ErrDuplicateMember):
		respondError(w, http.StatusConflict, "이미 등록된 회원입니다.")
	case errors.Is(err, club.ErrDuplicateGroup):
		respondError(w, http.StatusConflict, "이미 존재하는 그룹입니다.")
	case errors.Is(err, club.ErrNotFound):
		respondError(w, http.StatusNotFound, "회원을 찾을 수 없습니다.")
	case errors.Is(err, board.ErrNotFound):
		respondError(w, http.StatusNotFound, "게시글을 찾을 수 없습니다.")
	case errors.Is(err, exchange.ErrNotFound):
		respondError(w, http.StatusNotFound, "교류전을 찾을 수 없습니다.")
	default:
		log.Error("Store operation failed", "error", err)
		respondError(w, http.StatusInternalServerError, "요청 처리에 실패했습니다.")
	}
}
