package match

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// store handles all database operations for match records.
type store struct {
	db      *sql.DB
	genders GenderSource
	mu      sync.RWMutex
}

var ErrNotFound = errors.New("match record not found")

// Result is a team's outcome for one match.
type Result string

const (
	ResultWin  Result = "승"
	ResultLoss Result = "패"
	ResultDraw Result = "무"
)

// Position is one of the two doubles court positions.
type Position string

const (
	PositionDeuce Position = "deuce"
	PositionAd    Position = "ad"
)

// Slot is an optional player-slot value. The zero value is the empty
// slot, used for the unoccupied ad positions of a singles match.
type Slot struct {
	name  string
	valid bool
}

// Some returns an occupied slot.
func Some(name string) Slot {
	return Slot{name: name, valid: true}
}

// SlotOf builds a slot from raw form input; blank input yields the
// empty slot rather than an occupied slot holding "".
func SlotOf(raw string) Slot {
	name := strings.TrimSpace(raw)
	if name == "" {
		return Slot{}
	}
	return Slot{name: name, valid: true}
}

// Get returns the occupant name and whether the slot is occupied.
func (s Slot) Get() (string, bool) {
	return s.name, s.valid
}

// IsSome reports whether the slot is occupied.
func (s Slot) IsSome() bool {
	return s.valid
}

func (s Slot) String() string {
	return s.name
}

// MarshalJSON emits the occupant name, or null for the empty slot.
func (s Slot) MarshalJSON() ([]byte, error) {
	if !s.valid {
		return []byte("null"), nil
	}
	return json.Marshal(s.name)
}

func (s *Slot) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = Slot{}
		return nil
	}
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	*s = SlotOf(name)
	return nil
}

// Scan implements sql.Scanner so nullable slot columns map directly.
func (s *Slot) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*s = Slot{}
	case string:
		*s = SlotOf(v)
	case []byte:
		*s = SlotOf(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Slot", src)
	}
	return nil
}

// Value implements driver.Valuer; the empty slot stores as NULL.
func (s Slot) Value() (driver.Value, error) {
	if !s.valid {
		return nil, nil
	}
	return s.name, nil
}

// Record is one match record. The two ad slots are empty for singles.
type Record struct {
	ID          int64  `json:"id"`
	Date        string `json:"date"`
	Court       string `json:"court"`
	Team1Deuce  string `json:"team1_deuce"`
	Team1Ad     Slot   `json:"team1_ad"`
	Team2Deuce  string `json:"team2_deuce"`
	Team2Ad     Slot   `json:"team2_ad"`
	Team1Score  int    `json:"team1_score"`
	Team2Score  int    `json:"team2_score"`
	Team1Result Result `json:"team1_result"`
	Team2Result Result `json:"team2_result"`
	Type        string `json:"type"`
	Video       string `json:"video"`
	Notes       string `json:"etc"`
}

// Slots returns the four player slots in fixed order: team1 deuce,
// team1 ad, team2 deuce, team2 ad.
func (r *Record) Slots() [4]Slot {
	return [4]Slot{SlotOf(r.Team1Deuce), r.Team1Ad, SlotOf(r.Team2Deuce), r.Team2Ad}
}

// Players returns the names occupying slots, in slot order.
func (r *Record) Players() []string {
	var names []string
	for _, s := range r.Slots() {
		if name, ok := s.Get(); ok {
			names = append(names, name)
		}
	}
	return names
}

// Team1 returns the occupied team 1 slots.
func (r *Record) Team1() []string {
	names := []string{r.Team1Deuce}
	if name, ok := r.Team1Ad.Get(); ok {
		names = append(names, name)
	}
	return names
}

// Team2 returns the occupied team 2 slots.
func (r *Record) Team2() []string {
	names := []string{r.Team2Deuce}
	if name, ok := r.Team2Ad.Get(); ok {
		names = append(names, name)
	}
	return names
}

// Doubles reports whether all four slots are occupied.
func (r *Record) Doubles() bool {
	return r.Team1Ad.IsSome() && r.Team2Ad.IsSome()
}

// Placement locates where a player sits in this match.
type Placement struct {
	Team     int // 1 or 2
	Position Position
}

// Placement returns the player's seat, or ok=false if they did not play.
func (r *Record) Placement(name string) (Placement, bool) {
	switch {
	case r.Team1Deuce == name:
		return Placement{Team: 1, Position: PositionDeuce}, true
	case r.Team1Ad.String() == name && r.Team1Ad.IsSome():
		return Placement{Team: 1, Position: PositionAd}, true
	case r.Team2Deuce == name:
		return Placement{Team: 2, Position: PositionDeuce}, true
	case r.Team2Ad.String() == name && r.Team2Ad.IsSome():
		return Placement{Team: 2, Position: PositionAd}, true
	}
	return Placement{}, false
}

// ResultFor returns the match outcome from the named player's side.
func (r *Record) ResultFor(name string) (Result, bool) {
	p, ok := r.Placement(name)
	if !ok {
		return "", false
	}
	if p.Team == 1 {
		return r.Team1Result, true
	}
	return r.Team2Result, true
}

// PairOnSameTeam reports whether the two players formed one team.
func (r *Record) PairOnSameTeam(a, b string) bool {
	t1 := r.Team1()
	t2 := r.Team2()
	return (contains(t1, a) && contains(t1, b)) || (contains(t2, a) && contains(t2, b))
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
