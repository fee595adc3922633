package schedule

import (
	"database/sql"
	"errors"
	"sync"
	"time"
)

// store handles all database operations for schedules and attendance.
// Ledger mutations are serialized per schedule via keyed locks so two
// concurrent registrations can never both pass the capacity check.
type store struct {
	db *sql.DB
	mu sync.RWMutex

	lockMu sync.Mutex
	locks  map[int64]*sync.Mutex
}

var (
	ErrNotFound          = errors.New("schedule not found")
	ErrScheduleFull      = errors.New("schedule is full")
	ErrAlreadyRegistered = errors.New("member already registered")
	ErrNotRegistered     = errors.New("member not registered")
	ErrNotEligible       = errors.New("member not in schedule group")
)

// Schedule is one scheduled club event. Maximum bounds the attendee
// count when positive; zero or negative means unbounded. Calculated is
// the Y/N settlement flag. GroupID, when set, restricts self-service
// signup to the named member group.
type Schedule struct {
	ID         int64  `json:"id"`
	Date       string `json:"date"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Location   string `json:"location"`
	Notes      string `json:"notes"`
	Booker     string `json:"booker"`
	Price      int    `json:"price"`
	Maximum    int    `json:"maximum"`
	Calculated string `json:"calculated"`
	GroupID    *int64 `json:"groupId,omitempty"`
}

// Action tags an attendance audit-log entry.
type Action string

const (
	ActionAttend      Action = "attend"
	ActionCancel      Action = "cancel"
	ActionAttendAdmin Action = "attend(admin)"
	ActionCancelAdmin Action = "cancel(admin)"
)

// LogEntry is one append-only attendance audit record.
type LogEntry struct {
	ID         string    `json:"id"`
	ScheduleID int64     `json:"scheduleId"`
	MemberName string    `json:"memberName"`
	Action     Action    `json:"action"`
	CreatedAt  time.Time `json:"createdAt"`
}
