package schedule

// ScheduleStore defines the interface for schedules and the attendance
// ledger. Register and Cancel are all-or-nothing: the attendee change
// and its audit-log entry commit together or not at all.
type ScheduleStore interface {
	Create(s *Schedule) error
	Update(s *Schedule) error
	Delete(id int64) error
	Get(id int64) (*Schedule, error)
	ListByMonth(year, month int) ([]Schedule, error)

	Register(scheduleID int64, name string) error
	Cancel(scheduleID int64, name string) error
	AdminRegister(scheduleID int64, name string) error
	AdminCancel(scheduleID int64, name string) error
	ToggleCalculated(scheduleID int64) (string, error)

	Attendees(scheduleID int64) ([]string, error)
	AttendeeCount(scheduleID int64) (int, error)
	AuditLog(scheduleID int64) ([]LogEntry, error)
}
