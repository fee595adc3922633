package exchange

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/glzpr1598/burn-to-win/internal/match"
)

func NewStore(db *sql.DB) ExchangeStore {
	return &store{db: db}
}

func (s *store) CreateMaster(matchDate, opponent string) (*Master, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`
		INSERT INTO ex_match_master (match_date, opponent_team_name)
		VALUES (?, ?)`, matchDate, opponent)
	if err != nil {
		return nil, fmt.Errorf("failed to create exchange match: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	log.Info("Created exchange match", "id", id, "date", matchDate, "opponent", opponent)
	return &Master{ID: id, MatchDate: matchDate, Opponent: opponent}, nil
}

func (s *store) ListMasters() ([]Master, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, match_date, opponent_team_name
		FROM ex_match_master ORDER BY match_date DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange matches: %w", err)
	}
	defer rows.Close()

	var masters []Master
	for rows.Next() {
		var m Master
		if err := rows.Scan(&m.ID, &m.MatchDate, &m.Opponent); err != nil {
			return nil, err
		}
		masters = append(masters, m)
	}
	return masters, rows.Err()
}

func (s *store) DeleteMaster(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`DELETE FROM ex_match_master WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete exchange match: %w", err)
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

func (s *store) ListDetails(masterID int64) ([]Detail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT `+detailColumns+`
		FROM ex_match_detail WHERE match_master_id = ?
		ORDER BY court_num, match_round`, masterID)
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange details: %w", err)
	}
	defer rows.Close()

	var details []Detail
	for rows.Next() {
		d, err := scanDetail(rows)
		if err != nil {
			return nil, err
		}
		details = append(details, *d)
	}
	return details, rows.Err()
}

func (s *store) GetDetail(masterID int64, courtNum, matchRound int) (*Detail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`
		SELECT `+detailColumns+`
		FROM ex_match_detail
		WHERE match_master_id = ? AND court_num = ? AND match_round = ?`,
		masterID, courtNum, matchRound)
	d, err := scanDetail(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return d, err
}

// UpdateDetail upserts one grid cell. The stored result is always
// recomputed from the scores, never taken from the caller.
func (s *store) UpdateDetail(d *Detail) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var exists bool
	err := s.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM ex_match_master WHERE id = ?)`, d.MasterID).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}

	myResult, _ := match.ComputeResult(d.MyTeamScore, d.OpTeamScore)
	d.MatchResult = string(myResult)

	_, err = s.db.Exec(`
		INSERT INTO ex_match_detail (match_master_id, court_num, match_round,
			deuce_player, ad_player, match_type, my_team_score, op_team_score,
			match_result, videographer)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (match_master_id, court_num, match_round) DO UPDATE SET
			deuce_player = excluded.deuce_player,
			ad_player = excluded.ad_player,
			match_type = excluded.match_type,
			my_team_score = excluded.my_team_score,
			op_team_score = excluded.op_team_score,
			match_result = excluded.match_result,
			videographer = excluded.videographer`,
		d.MasterID, d.CourtNum, d.MatchRound, d.DeucePlayer, d.AdPlayer,
		d.MatchType, d.MyTeamScore, d.OpTeamScore, d.MatchResult, d.Videographer,
	)
	if err != nil {
		return fmt.Errorf("failed to update exchange detail: %w", err)
	}
	return nil
}

const detailColumns = `match_master_id, court_num, match_round, deuce_player,
	ad_player, match_type, my_team_score, op_team_score, match_result, videographer`

func scanDetail(row interface{ Scan(...any) error }) (*Detail, error) {
	var d Detail
	err := row.Scan(&d.MasterID, &d.CourtNum, &d.MatchRound, &d.DeucePlayer,
		&d.AdPlayer, &d.MatchType, &d.MyTeamScore, &d.OpTeamScore,
		&d.MatchResult, &d.Videographer)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
