package exchange

import (
	"database/sql"
	"errors"
	"sync"
)

var ErrNotFound = errors.New("exchange match not found")

// Master is one exchange event against another club. Details hang off
// it keyed by court and round.
type Master struct {
	ID        int64  `json:"id"`
	MatchDate string `json:"match_date"`
	Opponent  string `json:"opponent_team_name"`
}

// Label is the display form used in pickers, "date opponent".
func (m Master) Label() string {
	return m.MatchDate + " " + m.Opponent
}

type Detail struct {
	MasterID     int64  `json:"match_master_id"`
	CourtNum     int    `json:"court_num"`
	MatchRound   int    `json:"match_round"`
	DeucePlayer  string `json:"deuce_player"`
	AdPlayer     string `json:"ad_player"`
	MatchType    string `json:"match_type"`
	MyTeamScore  int    `json:"my_team_score"`
	OpTeamScore  int    `json:"op_team_score"`
	MatchResult  string `json:"match_result"`
	Videographer string `json:"videographer"`
}

type store struct {
	db *sql.DB
	mu sync.RWMutex
}
