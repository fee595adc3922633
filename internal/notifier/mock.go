package notifier

import (
	"sync"

	"github.com/glzpr1598/burn-to-win/internal/match"
	"github.com/glzpr1598/burn-to-win/internal/schedule"
	"github.com/glzpr1598/burn-to-win/internal/stats"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Call records
	AnnounceScheduleCalls   []*schedule.Schedule
	NotifyScheduleFullCalls []ScheduleFullCall
	NotifyMatchResultCalls  []*match.Record
	SendLeaderboardCalls    [][]stats.PlayerScore

	// Spies for format functions
	FormatLeaderboardResponseFunc    func(scores []stats.PlayerScore) (any, error)
	FormatPlayerStatsResponseFunc    func(score *stats.PlayerScore) (any, error)
	FormatPlayerNotFoundResponseFunc func(query string) (any, error)
}

// ScheduleFullCall holds the arguments for a call to NotifyScheduleFull.
type ScheduleFullCall struct {
	Schedule  *schedule.Schedule
	Attendees int
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AnnounceScheduleCalls = nil
	m.NotifyScheduleFullCalls = nil
	m.NotifyMatchResultCalls = nil
	m.SendLeaderboardCalls = nil
}

func (m *Mock) AnnounceSchedule(sched *schedule.Schedule, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AnnounceScheduleCalls = append(m.AnnounceScheduleCalls, sched)
	return nil
}

func (m *Mock) NotifyScheduleFull(sched *schedule.Schedule, attendees int, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.NotifyScheduleFullCalls = append(m.NotifyScheduleFullCalls, ScheduleFullCall{sched, attendees})
	return nil
}

func (m *Mock) NotifyMatchResult(record *match.Record, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.NotifyMatchResultCalls = append(m.NotifyMatchResultCalls, record)
	return nil
}

func (m *Mock) SendLeaderboard(scores []stats.PlayerScore, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendLeaderboardCalls = append(m.SendLeaderboardCalls, scores)
	return nil
}

func (m *Mock) FormatLeaderboardResponse(scores []stats.PlayerScore) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FormatLeaderboardResponseFunc != nil {
		return m.FormatLeaderboardResponseFunc(scores)
	}
	return "formatted_leaderboard", nil
}

func (m *Mock) FormatPlayerStatsResponse(score *stats.PlayerScore) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FormatPlayerStatsResponseFunc != nil {
		return m.FormatPlayerStatsResponseFunc(score)
	}
	return "formatted_player_stats", nil
}

func (m *Mock) FormatPlayerNotFoundResponse(query string) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FormatPlayerNotFoundResponseFunc != nil {
		return m.FormatPlayerNotFoundResponseFunc(query)
	}
	return "formatted_player_not_found", nil
}
