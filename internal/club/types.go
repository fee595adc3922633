package club

import (
	"database/sql"
	"errors"
	"sync"
)

// store handles all database operations for the club roster.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

var (
	ErrNotFound        = errors.New("member not found")
	ErrDuplicateMember = errors.New("member already exists")
	ErrDuplicateGroup  = errors.New("group name already exists")
)

// Gender is a member's registered gender.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

// Member represents one roster entry. Order 0 marks a regular member
// (정회원); any other value marks a guest. Etc is a free category tag,
// the empty tag meaning the member appears on the active roster.
type Member struct {
	Name   string `json:"name"`
	Gender Gender `json:"gender"`
	Order  int    `json:"order"`
	Etc    string `json:"etc"`
	Birth  string `json:"birth"`
	Phone  string `json:"phone"`
}

// Regular reports whether the member is a full club member.
func (m Member) Regular() bool {
	return m.Order == 0
}

// Group is a named subset of members, used to restrict schedule signup.
type Group struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
