package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                   sync.Mutex
	matchesRecorded      int
	statsRequests        int
	processingDurations  []float64
	attendanceRegistered int
	attendanceConflicts  int
	slackNotifSent       int
	slackNotifFailed     int
	startupTime          float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		processingDurations: make([]float64, 0),
	}
}

func (m *Mock) IncMatchesRecorded() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesRecorded++
}

func (m *Mock) IncStatsRequests() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statsRequests++
}

func (m *Mock) ObserveProcessingDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.processingDurations = append(m.processingDurations, duration)
}

func (m *Mock) IncAttendanceRegistered() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attendanceRegistered++
}

func (m *Mock) IncAttendanceConflicts() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attendanceConflicts++
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// MatchesRecorded returns the number of times IncMatchesRecorded was called.
func (m *Mock) MatchesRecorded() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchesRecorded
}

// StatsRequests returns the number of times IncStatsRequests was called.
func (m *Mock) StatsRequests() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.statsRequests
}

// AttendanceRegistered returns the number of times IncAttendanceRegistered was called.
func (m *Mock) AttendanceRegistered() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.attendanceRegistered
}

// AttendanceConflicts returns the number of times IncAttendanceConflicts was called.
func (m *Mock) AttendanceConflicts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.attendanceConflicts
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}
