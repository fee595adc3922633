package notifier

import (
	"github.com/glzpr1598/burn-to-win/internal/match"
	"github.com/glzpr1598/burn-to-win/internal/schedule"
	"github.com/glzpr1598/burn-to-win/internal/stats"
)

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For new schedules
	AnnounceSchedule(sched *schedule.Schedule, dryRun bool) error
	// When a schedule hits its attendance cap
	NotifyScheduleFull(sched *schedule.Schedule, attendees int, dryRun bool) error
	// For freshly recorded match results
	NotifyMatchResult(record *match.Record, dryRun bool) error
	// For the periodic leaderboard digest
	SendLeaderboard(scores []stats.PlayerScore, dryRun bool) error

	// For formatting responses for slash commands
	FormatLeaderboardResponse(scores []stats.PlayerScore) (any, error)
	FormatPlayerStatsResponse(score *stats.PlayerScore) (any, error)
	FormatPlayerNotFoundResponse(query string) (any, error)
}
