package club

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// New creates a new ClubStore.
func New(db *sql.DB) ClubStore {
	return &store{
		db: db,
	}
}

func (s *store) AddMember(m Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var exists bool
	err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM members WHERE name = ?)", m.Name).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check member: %w", err)
	}
	if exists {
		return ErrDuplicateMember
	}

	_, err = s.db.Exec(`
		INSERT INTO members (name, gender, member_order, etc, birth, phone)
		VALUES (?, ?, ?, ?, ?, ?)`,
		m.Name, m.Gender, m.Order, m.Etc, m.Birth, m.Phone,
	)
	if err != nil {
		return fmt.Errorf("failed to add member: %w", err)
	}
	log.Info("Added member to roster", "name", m.Name, "gender", m.Gender, "order", m.Order)
	return nil
}

func (s *store) UpdateMember(m Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`
		UPDATE members SET gender = ?, member_order = ?, etc = ?, birth = ?, phone = ?
		WHERE name = ?`,
		m.Gender, m.Order, m.Etc, m.Birth, m.Phone, m.Name,
	)
	if err != nil {
		return fmt.Errorf("failed to update member: %w", err)
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

func (s *store) RemoveMember(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("DELETE FROM members WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	log.Info("Removed member from roster", "name", name)
	return nil
}

func (s *store) GetMember(name string) (*Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var m Member
	err := s.db.QueryRow(`
		SELECT name, gender, member_order, etc, birth, phone
		FROM members WHERE name = ?`, name,
	).Scan(&m.Name, &m.Gender, &m.Order, &m.Etc, &m.Birth, &m.Phone)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return &m, nil
}

func (s *store) ListMembers() ([]Member, error) {
	return s.listMembers("SELECT name, gender, member_order, etc, birth, phone FROM members ORDER BY member_order ASC, name ASC")
}

// ListActive returns the members shown on the statistics pages, i.e.
// those without a category tag.
func (s *store) ListActive() ([]Member, error) {
	return s.listMembers("SELECT name, gender, member_order, etc, birth, phone FROM members WHERE etc = '' ORDER BY name ASC")
}

// ListRegulars returns the full members (정회원) eligible for pair statistics.
func (s *store) ListRegulars() ([]Member, error) {
	return s.listMembers("SELECT name, gender, member_order, etc, birth, phone FROM members WHERE member_order = 0 ORDER BY name ASC")
}

func (s *store) listMembers(query string) ([]Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(query)
	if err != nil {
		log.Error("Failed to query members", "error", err)
		return nil, err
	}
	defer rows.Close()

	var members []Member
	for rows.Next() {
		var m Member
		var birth, phone sql.NullString
		if err := rows.Scan(&m.Name, &m.Gender, &m.Order, &m.Etc, &birth, &phone); err != nil {
			log.Error("Failed to scan member row", "error", err)
			continue
		}
		m.Birth = birth.String
		m.Phone = phone.String
		members = append(members, m)
	}
	return members, rows.Err()
}

// GenderMap resolves a set of member names to their genders in a single
// query. Duplicate names are collapsed; unknown names are simply absent
// from the result.
func (s *store) GenderMap(names []string) (map[string]Gender, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	unique := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		unique = append(unique, name)
	}

	genders := make(map[string]Gender, len(unique))
	if len(unique) == 0 {
		return genders, nil
	}

	placeholders := strings.Repeat("?,", len(unique))
	placeholders = placeholders[:len(placeholders)-1]
	query := fmt.Sprintf("SELECT name, gender FROM members WHERE name IN (%s)", placeholders)

	args := make([]any, len(unique))
	for i, name := range unique {
		args[i] = name
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query genders: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		var gender Gender
		if err := rows.Scan(&name, &gender); err != nil {
			return nil, err
		}
		genders[name] = gender
	}
	return genders, rows.Err()
}

func (s *store) CreateGroup(name string, members []string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var exists bool
	err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM member_groups WHERE name = ?)", name).Scan(&exists)
	if err != nil {
		return 0, fmt.Errorf("failed to check group: %w", err)
	}
	if exists {
		return 0, ErrDuplicateGroup
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec("INSERT INTO member_groups (name) VALUES (?)", name)
	if err != nil {
		return 0, fmt.Errorf("failed to create group: %w", err)
	}
	groupID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, member := range members {
		if _, err := tx.Exec(
			"INSERT INTO member_group_members (group_id, member_name) VALUES (?, ?)",
			groupID, member,
		); err != nil {
			return 0, fmt.Errorf("failed to add %s to group: %w", member, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit group transaction: %w", err)
	}
	log.Info("Created member group", "name", name, "members", len(members))
	return groupID, nil
}

func (s *store) ListGroups() ([]Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT id, name FROM member_groups ORDER BY name ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []Group
	for rows.Next() {
		var g Group
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func (s *store) GroupMembers(groupID int64) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(
		"SELECT member_name FROM member_group_members WHERE group_id = ? ORDER BY member_name ASC",
		groupID,
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

func (s *store) InGroup(groupID int64, name string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var exists bool
	err := s.db.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM member_group_members WHERE group_id = ? AND member_name = ?)",
		groupID, name,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check group membership: %w", err)
	}
	return exists, nil
}
