package processor

import (
	"github.com/glzpr1598/burn-to-win/internal/metrics"
	"github.com/glzpr1598/burn-to-win/internal/pubsub"
)

// Processor handles the business logic behind pubsub events: schedule
// announcements, capacity alerts and the leaderboard digest.
type Processor struct {
	members  MemberSource
	matches  MatchSource
	pubsub   pubsub.PubSubClient
	notifier Notifier
	metrics  metrics.Metrics
}

// ScheduleEvent is the pubsub payload for schedule-announce and
// schedule-full messages.
type ScheduleEvent struct {
	ScheduleID int64  `msgpack:"schedule_id"`
	Date       string `msgpack:"date"`
	StartTime  string `msgpack:"start_time"`
	EndTime    string `msgpack:"end_time"`
	Location   string `msgpack:"location"`
	Price      int    `msgpack:"price"`
	Maximum    int    `msgpack:"maximum"`
	Attendees  int    `msgpack:"attendees"`
}

// DigestEvent is the pubsub payload for result-digest messages.
type DigestEvent struct {
	Period string `msgpack:"period"`
}
