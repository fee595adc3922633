package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncMatchesRecorded()
	IncStatsRequests()
	ObserveProcessingDuration(duration float64)
	IncAttendanceRegistered()
	IncAttendanceConflicts()
	IncSlackNotifSent()
	IncSlackNotifFailed()
	SetStartupTime(duration float64)
}

// MetricsStore persists simple named counters across restarts. It backs
// the admin metrics page rather than the Prometheus scrape endpoint.
type MetricsStore interface {
	Increment(key string)
	GetAll() (map[string]int, error)
}
