package board

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

func NewStore(db *sql.DB) BoardStore {
	return &store{db: db}
}

func (s *store) CreatePost(kind Kind, author, title, content string) (*Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !kind.Valid() {
		return nil, fmt.Errorf("unknown board %q", kind)
	}

	p := &Post{
		ID:        uuid.New().String(),
		Board:     kind,
		Author:    author,
		Title:     title,
		Content:   content,
		CreatedAt: time.Now(),
	}
	_, err := s.db.Exec(`
		INSERT INTO posts (id, board, author, title, content, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.Board, p.Author, p.Title, p.Content, p.CreatedAt.Unix(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	log.Info("Created post", "board", p.Board, "id", p.ID, "author", p.Author)
	return p, nil
}

func (s *store) ListPosts(kind Kind) ([]Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, board, author, title, content, created_at
		FROM posts WHERE board = ? ORDER BY created_at DESC, id`, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *p)
	}
	return posts, rows.Err()
}

func (s *store) GetPost(id string) (*Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`
		SELECT id, board, author, title, content, created_at
		FROM posts WHERE id = ?`, id)
	p, err := scanPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

func (s *store) DeletePost(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
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

func (s *store) AddComment(postID, author, content string) (*Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var exists bool
	err := s.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM posts WHERE id = ?)`, postID).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}

	c := &Comment{
		ID:        uuid.New().String(),
		PostID:    postID,
		Author:    author,
		Content:   content,
		CreatedAt: time.Now(),
	}
	_, err = s.db.Exec(`
		INSERT INTO comments (id, post_id, author, content, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.PostID, c.Author, c.Content, c.CreatedAt.Unix(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}
	return c, nil
}

func (s *store) ListComments(postID string) ([]Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, post_id, author, content, created_at
		FROM comments WHERE post_id = ? ORDER BY created_at, id`, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	var comments []Comment
	for rows.Next() {
		var c Comment
		var created int64
		if err := rows.Scan(&c.ID, &c.PostID, &c.Author, &c.Content, &created); err != nil {
			return nil, err
		}
		c.CreatedAt = time.Unix(created, 0)
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func scanPost(row interface{ Scan(...any) error }) (*Post, error) {
	var p Post
	var created int64
	if err := row.Scan(&p.ID, &p.Board, &p.Author, &p.Title, &p.Content, &created); err != nil {
		return nil, err
	}
	p.CreatedAt = time.Unix(created, 0)
	return &p, nil
}
