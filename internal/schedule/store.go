package schedule

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// NewStore creates a new ScheduleStore.
func NewStore(db *sql.DB) ScheduleStore {
	return &store{
		db:    db,
		locks: make(map[int64]*sync.Mutex),
	}
}

// lockFor returns the mutex serializing ledger mutations for one
// schedule. Registrations against different schedules do not contend.
func (s *store) lockFor(scheduleID int64) *sync.Mutex {
	s.lockMu.Lock()
	defer s.lockMu.Unlock()
	l, ok := s.locks[scheduleID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[scheduleID] = l
	}
	return l
}

func (s *store) Create(sched *Schedule) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`
		INSERT INTO schedules (date, start_time, end_time, location, notes, booker, price, maximum, calculated, group_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, 'N', ?)`,
		sched.Date, sched.StartTime, sched.EndTime, sched.Location, sched.Notes,
		sched.Booker, sched.Price, sched.Maximum, sched.GroupID,
	)
	if err != nil {
		return fmt.Errorf("failed to create schedule: %w", err)
	}
	sched.ID, err = res.LastInsertId()
	if err != nil {
		return err
	}
	sched.Calculated = "N"
	log.Info("Created schedule", "id", sched.ID, "date", sched.Date, "maximum", sched.Maximum)
	return nil
}

func (s *store) Update(sched *Schedule) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`
		UPDATE schedules SET date = ?, start_time = ?, end_time = ?, location = ?, notes = ?,
			booker = ?, price = ?, maximum = ?, group_id = ?
		WHERE id = ?`,
		sched.Date, sched.StartTime, sched.EndTime, sched.Location, sched.Notes,
		sched.Booker, sched.Price, sched.Maximum, sched.GroupID, sched.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update schedule: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *store) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("DELETE FROM schedules WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

const scheduleColumns = "id, date, start_time, end_time, location, notes, booker, price, maximum, calculated, group_id"

func (s *store) Get(id int64) (*Schedule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow("SELECT "+scheduleColumns+" FROM schedules WHERE id = ?", id)
	sched, err := scanSchedule(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}
	return sched, nil
}

func (s *store) ListByMonth(year, month int) ([]Schedule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	prefix := fmt.Sprintf("%04d-%02d-", year, month)
	rows, err := s.db.Query(
		"SELECT "+scheduleColumns+" FROM schedules WHERE date LIKE ? ORDER BY date ASC, start_time ASC",
		prefix+"%",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []Schedule
	for rows.Next() {
		sched, err := scanSchedule(rows)
		if err != nil {
			log.Error("Failed to scan schedule row", "error", err)
			continue
		}
		schedules = append(schedules, *sched)
	}
	return schedules, rows.Err()
}

func scanSchedule(scanner interface{ Scan(...any) error }) (*Schedule, error) {
	var sched Schedule
	var groupID sql.NullInt64
	err := scanner.Scan(
		&sched.ID, &sched.Date, &sched.StartTime, &sched.EndTime, &sched.Location,
		&sched.Notes, &sched.Booker, &sched.Price, &sched.Maximum, &sched.Calculated, &groupID,
	)
	if err != nil {
		return nil, err
	}
	if groupID.Valid {
		sched.GroupID = &groupID.Int64
	}
	return &sched, nil
}

func (s *store) Register(scheduleID int64, name string) error {
	return s.register(scheduleID, name, ActionAttend, false)
}

func (s *store) AdminRegister(scheduleID int64, name string) error {
	return s.register(scheduleID, name, ActionAttendAdmin, true)
}

// register is the capacity-safe signup path. Eligibility checks and
// the attendee insert run inside one transaction, under the schedule's
// lock, and the insert itself refuses to exceed the maximum, so the
// committed attendee count can never go over the cap.
func (s *store) register(scheduleID int64, name string, action Action, admin bool) error {
	lock := s.lockFor(scheduleID)
	lock.Lock()
	defer lock.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var maximum int
	var groupID sql.NullInt64
	err = tx.QueryRow("SELECT maximum, group_id FROM schedules WHERE id = ?", scheduleID).
		Scan(&maximum, &groupID)
	if err != nil {
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load schedule: %w", err)
	}

	// Group-restricted schedules take self-service signups only from
	// group members; admin overrides skip the restriction.
	if !admin && groupID.Valid {
		var inGroup bool
		err = tx.QueryRow(
			"SELECT EXISTS(SELECT 1 FROM member_group_members WHERE group_id = ? AND member_name = ?)",
			groupID.Int64, name,
		).Scan(&inGroup)
		if err != nil {
			return fmt.Errorf("failed to check group membership: %w", err)
		}
		if !inGroup {
			return ErrNotEligible
		}
	}

	var exists bool
	err = tx.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM schedule_attendees WHERE schedule_id = ? AND member_name = ?)",
		scheduleID, name,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check registration: %w", err)
	}
	if exists {
		return ErrAlreadyRegistered
	}

	// The capacity check lives inside the insert statement, so the cap
	// holds even when several server processes share the database.
	var res sql.Result
	if maximum > 0 {
		res, err = tx.Exec(
			`INSERT INTO schedule_attendees (schedule_id, member_name)
			 SELECT ?, ?
			 WHERE (SELECT COUNT(*) FROM schedule_attendees WHERE schedule_id = ?) < ?`,
			scheduleID, name, scheduleID, maximum,
		)
	} else {
		res, err = tx.Exec(
			"INSERT INTO schedule_attendees (schedule_id, member_name) VALUES (?, ?)",
			scheduleID, name,
		)
	}
	if err != nil {
		return fmt.Errorf("failed to insert attendee: %w", err)
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if inserted == 0 {
		return ErrScheduleFull
	}

	if err = appendLog(tx, scheduleID, name, action); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit registration: %w", err)
	}
	log.Info("Registered attendee", "scheduleID", scheduleID, "name", name, "action", action)
	return nil
}

func (s *store) Cancel(scheduleID int64, name string) error {
	return s.cancel(scheduleID, name, ActionCancel)
}

func (s *store) AdminCancel(scheduleID int64, name string) error {
	return s.cancel(scheduleID, name, ActionCancelAdmin)
}

func (s *store) cancel(scheduleID int64, name string, action Action) error {
	lock := s.lockFor(scheduleID)
	lock.Lock()
	defer lock.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		"DELETE FROM schedule_attendees WHERE schedule_id = ? AND member_name = ?",
		scheduleID, name,
	)
	if err != nil {
		return fmt.Errorf("failed to delete attendee: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotRegistered
	}

	if err = appendLog(tx, scheduleID, name, action); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cancellation: %w", err)
	}
	log.Info("Cancelled attendee", "scheduleID", scheduleID, "name", name, "action", action)
	return nil
}

// ToggleCalculated atomically flips the settlement flag and returns
// the new value.
func (s *store) ToggleCalculated(scheduleID int64) (string, error) {
	lock := s.lockFor(scheduleID)
	lock.Lock()
	defer lock.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var current string
	err = tx.QueryRow("SELECT calculated FROM schedules WHERE id = ?", scheduleID).Scan(&current)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to read settlement flag: %w", err)
	}

	next := "Y"
	if current == "Y" {
		next = "N"
	}
	if _, err = tx.Exec("UPDATE schedules SET calculated = ? WHERE id = ?", next, scheduleID); err != nil {
		return "", fmt.Errorf("failed to update settlement flag: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit settlement toggle: %w", err)
	}
	return next, nil
}

func appendLog(tx *sql.Tx, scheduleID int64, name string, action Action) error {
	_, err := tx.Exec(
		"INSERT INTO attendance_log (id, schedule_id, member_name, action, created_at) VALUES (?, ?, ?, ?, ?)",
		uuid.New().String(), scheduleID, name, action, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to append audit log: %w", err)
	}
	return nil
}

func (s *store) Attendees(scheduleID int64) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(
		"SELECT member_name FROM schedule_attendees WHERE schedule_id = ? ORDER BY member_name ASC",
		scheduleID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *store) AttendeeCount(scheduleID int64) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM schedule_attendees WHERE schedule_id = ?", scheduleID).
		Scan(&count)
	return count, err
}

func (s *store) AuditLog(scheduleID int64) ([]LogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(
		"SELECT id, schedule_id, member_name, action, created_at FROM attendance_log WHERE schedule_id = ? ORDER BY created_at ASC, id ASC",
		scheduleID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []LogEntry
	for rows.Next() {
		var e LogEntry
		var createdAt int64
		if err := rows.Scan(&e.ID, &e.ScheduleID, &e.MemberName, &e.Action, &createdAt); err != nil {
			return nil, err
		}
		e.CreatedAt = time.Unix(createdAt, 0)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
