package board

import (
	"database/sql"
	"errors"
	"sync"
	"time"
)

var ErrNotFound = errors.New("post not found")

// Kind selects which bulletin board a post belongs to.
type Kind string

const (
	KindFree   Kind = "free"
	KindNotice Kind = "notice"
)

// Valid reports whether the kind names a real board.
func (k Kind) Valid() bool {
	return k == KindFree || k == KindNotice
}

type Post struct {
	ID        string    `json:"id"`
	Board     Kind      `json:"board"`
	Author    string    `json:"author"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type store struct {
	db *sql.DB
	mu sync.RWMutex
}
