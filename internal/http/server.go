package http

import (
	"net/http"

	"github.com/glzpr1598/burn-to-win/internal/board"
	"github.com/glzpr1598/burn-to-win/internal/club"
	"github.com/glzpr1598/burn-to-win/internal/config"
	"github.com/glzpr1598/burn-to-win/internal/exchange"
	"github.com/glzpr1598/burn-to-win/internal/match"
	"github.com/glzpr1598/burn-to-win/internal/metrics"
	"github.com/glzpr1598/burn-to-win/internal/notifier"
	"github.com/glzpr1598/burn-to-win/internal/processor"
	"github.com/glzpr1598/burn-to-win/internal/pubsub"
	"github.com/glzpr1598/burn-to-win/internal/schedule"
)

func NewServer(
	clubStore club.ClubStore,
	matchStore match.MatchStore,
	scheduleStore schedule.ScheduleStore,
	boardStore board.BoardStore,
	exchangeStore exchange.ExchangeStore,
	metricsSvc metrics.Metrics,
	metricsStore metrics.MetricsStore,
	metricsHandler http.Handler,
	cfg config.Config,
	notifier notifier.Notifier,
	processor *processor.Processor,
	pubsub pubsub.PubSubClient,
) *Server {
	server := &Server{
		Club:           clubStore,
		Matches:        matchStore,
		Schedules:      scheduleStore,
		Boards:         boardStore,
		Exchange:       exchangeStore,
		Metrics:        metricsSvc,
		MetricsStore:   metricsStore,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Processor:      processor,
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// Admin routes additionally pass through adminMiddleware, which
	// checks the shared key header.
	admin := adminMiddleware(s.Cfg.AdminKey)

	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("GET /admin/metrics", Chain(s.AdminMetricsHandler(), paramsMiddleware, admin))

	// Match records
	s.Router.Handle("GET /matches", Chain(s.ListMatchesHandler(), paramsMiddleware))
	s.Router.Handle("POST /matches", Chain(s.CreateMatchHandler(), paramsMiddleware))
	s.Router.Handle("GET /matches/{id}", Chain(s.GetMatchHandler(), paramsMiddleware))
	s.Router.Handle("PUT /matches/{id}", Chain(s.UpdateMatchHandler(), paramsMiddleware))
	s.Router.Handle("DELETE /matches/{id}", Chain(s.DeleteMatchHandler(), paramsMiddleware, admin))
	s.Router.Handle("GET /courts", Chain(s.ListCourtsHandler(), paramsMiddleware))

	// Statistics views
	s.Router.Handle("GET /score", Chain(s.PlayerScoresHandler(), paramsMiddleware))
	s.Router.Handle("GET /chemistry", Chain(s.ChemistryHandler(), paramsMiddleware))
	s.Router.Handle("GET /chemistry-score", Chain(s.PairScoresHandler(), paramsMiddleware))
	s.Router.Handle("GET /api/matches/pair", Chain(s.PairMatchesHandler(), paramsMiddleware))
	s.Router.Handle("GET /attendance", Chain(s.AttendanceSheetHandler(), paramsMiddleware))
	s.Router.Handle("GET /attendance/history", Chain(s.AttendanceHistoryHandler(), paramsMiddleware))

	// Schedules and attendance
	s.Router.Handle("GET /schedules", Chain(s.ListSchedulesHandler(), paramsMiddleware))
	s.Router.Handle("POST /schedules", Chain(s.CreateScheduleHandler(), paramsMiddleware, admin))
	s.Router.Handle("PUT /schedules/{id}", Chain(s.UpdateScheduleHandler(), paramsMiddleware, admin))
	s.Router.Handle("DELETE /schedules/{id}", Chain(s.DeleteScheduleHandler(), paramsMiddleware, admin))
	s.Router.Handle("POST /schedules/{id}/attend", Chain(s.AttendHandler(), paramsMiddleware))
	s.Router.Handle("POST /schedules/{id}/cancel", Chain(s.CancelAttendanceHandler(), paramsMiddleware))
	s.Router.Handle("POST /schedules/{id}/admin-attend", Chain(s.AdminAttendHandler(), paramsMiddleware, admin))
	s.Router.Handle("POST /schedules/{id}/admin-cancel", Chain(s.AdminCancelHandler(), paramsMiddleware, admin))
	s.Router.Handle("POST /schedules/{id}/toggle-calculated", Chain(s.ToggleCalculatedHandler(), paramsMiddleware, admin))
	s.Router.Handle("GET /schedules/{id}/attendees", Chain(s.AttendeesHandler(), paramsMiddleware))
	s.Router.Handle("GET /schedules/{id}/log", Chain(s.AuditLogHandler(), paramsMiddleware, admin))

	// Roster
	s.Router.Handle("GET /members", Chain(s.ListMembersHandler(), paramsMiddleware))
	s.Router.Handle("POST /members", Chain(s.AddMemberHandler(), paramsMiddleware, admin))
	s.Router.Handle("PUT /members/{name}", Chain(s.UpdateMemberHandler(), paramsMiddleware, admin))
	s.Router.Handle("DELETE /members/{name}", Chain(s.RemoveMemberHandler(), paramsMiddleware, admin))
	s.Router.Handle("GET /groups", Chain(s.ListGroupsHandler(), paramsMiddleware))
	s.Router.Handle("POST /groups", Chain(s.CreateGroupHandler(), paramsMiddleware, admin))
	s.Router.Handle("GET /groups/{id}/members", Chain(s.GroupMembersHandler(), paramsMiddleware))

	// Bulletin boards
	s.Router.Handle("GET /boards/{board}/posts", Chain(s.ListPostsHandler(), paramsMiddleware))
	s.Router.Handle("POST /boards/free/posts", Chain(s.CreateFreePostHandler(), paramsMiddleware))
	s.Router.Handle("POST /boards/notice/posts", Chain(s.CreateNoticePostHandler(), paramsMiddleware, admin))
	s.Router.Handle("GET /posts/{id}", Chain(s.GetPostHandler(), paramsMiddleware))
	s.Router.Handle("DELETE /posts/{id}", Chain(s.DeletePostHandler(), paramsMiddleware, admin))
	s.Router.Handle("POST /posts/{id}/comments", Chain(s.AddCommentHandler(), paramsMiddleware))

	// Exchange matches
	s.Router.Handle("GET /exchange", Chain(s.ListExchangeHandler(), paramsMiddleware))
	s.Router.Handle("POST /exchange", Chain(s.CreateExchangeHandler(), paramsMiddleware, admin))
	s.Router.Handle("DELETE /exchange/{id}", Chain(s.DeleteExchangeHandler(), paramsMiddleware, admin))
	s.Router.Handle("GET /exchange/{id}/details", Chain(s.ListExchangeDetailsHandler(), paramsMiddleware))
	s.Router.Handle("PUT /exchange/{id}/details", Chain(s.UpdateExchangeDetailHandler(), paramsMiddleware))

	// Pub/Sub push subscriptions
	s.Router.Handle("POST /announce-schedule", Chain(s.AnnounceScheduleHandler(), paramsMiddleware))
	s.Router.Handle("POST /schedule-full", Chain(s.ScheduleFullHandler(), paramsMiddleware))
	s.Router.Handle("POST /result-digest", Chain(s.ResultDigestHandler(), paramsMiddleware))

	// Slack slash commands
	s.Router.Handle("POST /slack/command/leaderboard", Chain(s.LeaderboardCommandHandler(), paramsMiddleware))
	s.Router.Handle("POST /slack/command/player-stats", Chain(s.PlayerStatsCommandHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
