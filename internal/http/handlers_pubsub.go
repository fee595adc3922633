package http

import (
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/glzpr1598/burn-to-win/internal/processor"
	"github.com/glzpr1598/burn-to-win/internal/pubsub"
)

// decodePushEvent reads and unwraps one push delivery into ev.
func (s *Server) decodePushEvent(w http.ResponseWriter, r *http.Request, ev any) bool {
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		log.Error("Failed to read request body", "error", err)
		http.Error(w, "Failed to read request body", http.StatusInternalServerError)
		return false
	}
	log.Debug("Received push message", "body", string(bodyBytes))

	rawData, err := pubsub.DecodePushBody(bodyBytes)
	if err != nil {
		log.Error("Failed to decode push body", "error", err)
		http.Error(w, "Invalid push message", http.StatusBadRequest)
		return false
	}
	if err := s.pubsub.ProcessMessage(rawData, ev); err != nil {
		http.Error(w, "Invalid message payload", http.StatusBadRequest)
		return false
	}
	return true
}

func (s *Server) AnnounceScheduleHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ev processor.ScheduleEvent
		if !s.decodePushEvent(w, r, &ev) {
			return
		}
		if err := s.Processor.HandleScheduleAnnounce(&ev, isDryRunFromContext(r)); err != nil {
			log.Error("Failed to announce schedule", "error", err)
			http.Error(w, "Failed to announce schedule", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("OK"))
	}
}

func (s *Server) ScheduleFullHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ev processor.ScheduleEvent
		if !s.decodePushEvent(w, r, &ev) {
			return
		}
		if err := s.Processor.HandleScheduleFull(&ev, isDryRunFromContext(r)); err != nil {
			log.Error("Failed to notify schedule full", "error", err)
			http.Error(w, "Failed to notify schedule full", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("OK"))
	}
}

func (s *Server) ResultDigestHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ev processor.DigestEvent
		if !s.decodePushEvent(w, r, &ev) {
			return
		}
		if err := s.Processor.SendResultDigest(&ev, isDryRunFromContext(r)); err != nil {
			log.Error("Failed to send result digest", "error", err)
			http.Error(w, "Failed to send result digest", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("OK"))
	}
}
