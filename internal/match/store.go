package match

import (
	"database/sql"
	"fmt"

	"github.com/charmbracelet/log"
)

// NewStore creates a new MatchStore backed by the given database.
func NewStore(db *sql.DB, genders GenderSource) MatchStore {
	return &store{
		db:      db,
		genders: genders,
	}
}

// classify fills in the derived fields of a record before it is written.
func (s *store) classify(r *Record) error {
	r.Team1Result, r.Team2Result = ComputeResult(r.Team1Score, r.Team2Score)

	genders, err := s.genders.GenderMap(r.Players())
	if err != nil {
		return fmt.Errorf("failed to resolve genders: %w", err)
	}
	r.Type = Classify(r.Slots(), genders)
	return nil
}

func (s *store) Create(r *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.classify(r); err != nil {
		return err
	}

	res, err := s.db.Exec(`
		INSERT INTO matchrecord
		(date, court, team1_deuce, team1_ad, team2_deuce, team2_ad, team1_score, team2_score, team1_result, team2_result, type, video, etc)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Date, r.Court, r.Team1Deuce, r.Team1Ad, r.Team2Deuce, r.Team2Ad,
		r.Team1Score, r.Team2Score, r.Team1Result, r.Team2Result, r.Type, r.Video, r.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to insert match record: %w", err)
	}
	r.ID, err = res.LastInsertId()
	if err != nil {
		return err
	}
	log.Info("Recorded match", "id", r.ID, "date", r.Date, "type", r.Type)
	return nil
}

func (s *store) Update(r *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.classify(r); err != nil {
		return err
	}

	res, err := s.db.Exec(`
		UPDATE matchrecord SET
			date = ?, court = ?,
			team1_deuce = ?, team1_ad = ?,
			team2_deuce = ?, team2_ad = ?,
			team1_score = ?, team2_score = ?,
			team1_result = ?, team2_result = ?,
			type = ?, video = ?, etc = ?
		WHERE id = ?`,
		r.Date, r.Court, r.Team1Deuce, r.Team1Ad, r.Team2Deuce, r.Team2Ad,
		r.Team1Score, r.Team2Score, r.Team1Result, r.Team2Result, r.Type, r.Video, r.Notes,
		r.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update match record: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	log.Info("Updated match", "id", r.ID, "type", r.Type)
	return nil
}

func (s *store) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("DELETE FROM matchrecord WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete match record: %w", err)
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

const recordColumns = `id, date, court, team1_deuce, team1_ad, team2_deuce, team2_ad,
	team1_score, team2_score, team1_result, team2_result, type, video, etc`

func (s *store) Get(id int64) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow("SELECT "+recordColumns+" FROM matchrecord WHERE id = ?", id)
	r, err := scanRecord(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get match record: %w", err)
	}
	return r, nil
}

func (s *store) ListAll() ([]Record, error) {
	return s.list("SELECT " + recordColumns + " FROM matchrecord ORDER BY date DESC, id DESC")
}

// ListCompleted returns the records that carry a result, i.e. the
// working set for every statistics view.
func (s *store) ListCompleted() ([]Record, error) {
	return s.list("SELECT " + recordColumns + " FROM matchrecord WHERE team1_result IS NOT NULL ORDER BY date DESC, id DESC")
}

func (s *store) list(query string) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(query)
	if err != nil {
		log.Error("Failed to query match records", "error", err)
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			log.Error("Failed to scan match record row", "error", err)
			continue
		}
		records = append(records, *r)
	}
	return records, rows.Err()
}

func (s *store) DistinctCourts() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT DISTINCT court FROM matchrecord WHERE court IS NOT NULL AND court != '' ORDER BY court ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courts []string
	for rows.Next() {
		var court string
		if err := rows.Scan(&court); err != nil {
			return nil, err
		}
		courts = append(courts, court)
	}
	return courts, rows.Err()
}

// scanRecord is a helper to scan a single match record row.
func scanRecord(scanner interface{ Scan(...any) error }) (*Record, error) {
	var r Record
	var team1Result, team2Result sql.NullString
	err := scanner.Scan(
		&r.ID, &r.Date, &r.Court,
		&r.Team1Deuce, &r.Team1Ad, &r.Team2Deuce, &r.Team2Ad,
		&r.Team1Score, &r.Team2Score,
		&team1Result, &team2Result,
		&r.Type, &r.Video, &r.Notes,
	)
	if err != nil {
		return nil, err
	}
	r.Team1Result = Result(team1Result.String)
	r.Team2Result = Result(team2Result.String)
	return &r, nil
}
