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

type Server struct {
	Club           club.ClubStore
	Matches        match.MatchStore
	Schedules      schedule.ScheduleStore
	Boards         board.BoardStore
	Exchange       exchange.ExchangeStore
	Metrics        metrics.Metrics
	MetricsStore   metrics.MetricsStore
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Processor      *processor.Processor
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient
}
