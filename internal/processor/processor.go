package processor

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/glzpr1598/burn-to-win/internal/metrics"
	"github.com/glzpr1598/burn-to-win/internal/pubsub"
	"github.com/glzpr1598/burn-to-win/internal/schedule"
	"github.com/glzpr1598/burn-to-win/internal/stats"
)

// New creates a new Processor.
func New(members MemberSource, matches MatchSource, notifier Notifier, metrics metrics.Metrics, pubsub pubsub.PubSubClient) *Processor {
	return &Processor{
		members:  members,
		matches:  matches,
		pubsub:   pubsub,
		notifier: notifier,
		metrics:  metrics,
	}
}

// PublishScheduleCreated fans a new schedule out to the announce topic.
func (p *Processor) PublishScheduleCreated(sched *schedule.Schedule) error {
	return p.pubsub.SendMessage(pubsub.EventScheduleAnnounce, scheduleEvent(sched, 0))
}

// PublishScheduleFull fans a capacity hit out to the full topic.
func (p *Processor) PublishScheduleFull(sched *schedule.Schedule, attendees int) error {
	return p.pubsub.SendMessage(pubsub.EventScheduleFull, scheduleEvent(sched, attendees))
}

// HandleScheduleAnnounce reacts to a decoded schedule-announce event.
func (p *Processor) HandleScheduleAnnounce(ev *ScheduleEvent, dryRun bool) error {
	log.Info("Announcing schedule", "scheduleID", ev.ScheduleID, "date", ev.Date)
	return p.notifier.AnnounceSchedule(eventSchedule(ev), dryRun)
}

// HandleScheduleFull reacts to a decoded schedule-full event.
func (p *Processor) HandleScheduleFull(ev *ScheduleEvent, dryRun bool) error {
	log.Info("Schedule hit capacity", "scheduleID", ev.ScheduleID, "attendees", ev.Attendees)
	return p.notifier.NotifyScheduleFull(eventSchedule(ev), ev.Attendees, dryRun)
}

// SendResultDigest computes the leaderboard over the requested period
// and sends it. An empty period falls back to the default window.
func (p *Processor) SendResultDigest(ev *DigestEvent, dryRun bool) error {
	startTime := time.Now()

	period := ev.Period
	if period == "" {
		period = stats.DefaultPeriod
	}

	members, err := p.members.ListActive()
	if err != nil {
		log.Error("Failed to list members for digest", "error", err)
		return err
	}
	records, err := p.matches.ListCompleted()
	if err != nil {
		log.Error("Failed to list matches for digest", "error", err)
		return err
	}

	filter := stats.Filter{Period: period, Types: stats.ParseList(stats.DefaultTypes)}
	filtered := filter.Apply(records, time.Now())

	names := make([]string, 0, len(members))
	for _, m := range members {
		names = append(names, m.Name)
	}
	scores := stats.PlayerScores(names, filtered)

	p.metrics.ObserveProcessingDuration(time.Since(startTime).Seconds())
	log.Info("Computed result digest", "period", period, "members", len(names), "matches", len(filtered))

	return p.notifier.SendLeaderboard(scores, dryRun)
}

func scheduleEvent(sched *schedule.Schedule, attendees int) *ScheduleEvent {
	return &ScheduleEvent{
		ScheduleID: sched.ID,
		Date:       sched.Date,
		StartTime:  sched.StartTime,
		EndTime:    sched.EndTime,
		Location:   sched.Location,
		Price:      sched.Price,
		Maximum:    sched.Maximum,
		Attendees:  attendees,
	}
}

func eventSchedule(ev *ScheduleEvent) *schedule.Schedule {
	return &schedule.Schedule{
		ID:        ev.ScheduleID,
		Date:      ev.Date,
		StartTime: ev.StartTime,
		EndTime:   ev.EndTime,
		Location:  ev.Location,
		Price:     ev.Price,
		Maximum:   ev.Maximum,
	}
}
