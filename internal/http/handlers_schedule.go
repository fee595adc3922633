package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/glzpr1598/burn-to-win/internal/schedule"
)

func (s *Server) ListSchedulesHandler() http.HandlerFunc {
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

		schedules, err := s.Schedules.ListByMonth(year, month)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		respondData(w, schedules)
	}
}

func (s *Server) CreateScheduleHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var sched schedule.Schedule
		if err := json.NewDecoder(r.Body).Decode(&sched); err != nil {
			respondError(w, http.StatusBadRequest, "잘못된 요청입니다.")
			return
		}
		if sched.Date == "" {
			respondError(w, http.StatusBadRequest, "날짜를 입력해 주세요.")
			return
		}

		if err := s.Schedules.Create(&sched); err != nil {
			respondStoreError(w, err)
			return
		}

		if err := s.Processor.PublishScheduleCreated(&sched); err != nil {
			log.Error("Failed to publish schedule announcement", "error", err, "scheduleID", sched.ID)
		}

		respondData(w, sched)
	}
}

func (s *Server) UpdateScheduleHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "잘못된 일정 번호입니다.")
			return
		}

		var sched schedule.Schedule
		if err := json.NewDecoder(r.Body).Decode(&sched); err != nil {
			respondError(w, http.StatusBadRequest, "잘못된 요청입니다.")
			return
		}
		sched.ID = id

		if err := s.Schedules.Update(&sched); err != nil {
			respondStoreError(w, err)
			return
		}
		respondData(w, sched)
	}
}

func (s *Server) DeleteScheduleHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "잘못된 일정 번호입니다.")
			return
		}
		if err := s.Schedules.Delete(id); err != nil {
			respondStoreError(w, err)
			return
		}
		respondOK(w, "일정을 삭제했습니다.")
	}
}

// attendRequest names the member a signup or cancellation applies to.
type attendRequest struct {
	Name string `json:"name"`
}

func decodeAttendRequest(r *http.Request) (int64, string, string) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, "", "잘못된 일정 번호입니다."
	}
	var req attendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		return 0, "", "회원 이름을 입력해 주세요."
	}
	return id, req.Name, ""
}

func (s *Server) AttendHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, name, msg := decodeAttendRequest(r)
		if msg != "" {
			respondError(w, http.StatusBadRequest, msg)
			return
		}

		if err := s.Schedules.Register(id, name); err != nil {
			if errors.Is(err, schedule.ErrScheduleFull) {
				s.Metrics.IncAttendanceConflicts()
			}
			respondStoreError(w, err)
			return
		}
		s.Metrics.IncAttendanceRegistered()
		s.notifyIfFull(id)
		respondOK(w, "참가 신청이 완료되었습니다.")
	}
}

func (s *Server) CancelAttendanceHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, name, msg := decodeAttendRequest(r)
		if msg != "" {
			respondError(w, http.StatusBadRequest, msg)
			return
		}

		if err := s.Schedules.Cancel(id, name); err != nil {
			respondStoreError(w, err)
			return
		}
		respondOK(w, "참가 신청을 취소했습니다.")
	}
}

func (s *Server) AdminAttendHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, name, msg := decodeAttendRequest(r)
		if msg != "" {
			respondError(w, http.StatusBadRequest, msg)
			return
		}

		if err := s.Schedules.AdminRegister(id, name); err != nil {
			if errors.Is(err, schedule.ErrScheduleFull) {
				s.Metrics.IncAttendanceConflicts()
			}
			respondStoreError(w, err)
			return
		}
		s.Metrics.IncAttendanceRegistered()
		s.notifyIfFull(id)
		respondOK(w, "참가 신청이 완료되었습니다.")
	}
}

func (s *Server) AdminCancelHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, name, msg := decodeAttendRequest(r)
		if msg != "" {
			respondError(w, http.StatusBadRequest, msg)
			return
		}

		if err := s.Schedules.AdminCancel(id, name); err != nil {
			respondStoreError(w, err)
			return
		}
		respondOK(w, "참가 신청을 취소했습니다.")
	}
}

// notifyIfFull publishes a schedule-full event when a registration
// just consumed the last seat. Lookup failures only log; the signup
// itself already committed.
func (s *Server) notifyIfFull(scheduleID int64) {
	sched, err := s.Schedules.Get(scheduleID)
	if err != nil {
		log.Error("Failed to load schedule after signup", "error", err, "scheduleID", scheduleID)
		return
	}
	if sched.Maximum <= 0 {
		return
	}
	count, err := s.Schedules.AttendeeCount(scheduleID)
	if err != nil {
		log.Error("Failed to count attendees after signup", "error", err, "scheduleID", scheduleID)
		return
	}
	if count >= sched.Maximum {
		if err := s.Processor.PublishScheduleFull(sched, count); err != nil {
			log.Error("Failed to publish schedule-full event", "error", err, "scheduleID", scheduleID)
		}
	}
}

func (s *Server) ToggleCalculatedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "잘못된 일정 번호입니다.")
			return
		}
		flag, err := s.Schedules.ToggleCalculated(id)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		respondData(w, map[string]string{"calculated": flag})
	}
}

func (s *Server) AttendeesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "잘못된 일정 번호입니다.")
			return
		}
		attendees, err := s.Schedules.Attendees(id)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		respondData(w, attendees)
	}
}

func (s *Server) AuditLogHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "잘못된 일정 번호입니다.")
			return
		}
		entries, err := s.Schedules.AuditLog(id)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		respondData(w, entries)
	}
}
