// Package store persists flattened posts so a revalidation pass only
// refetches blocks for pages whose edit timestamp moved.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"notionblog/internal/posts"
)

type SQLite struct {
	db *sql.DB
}

// Open opens the database at path and applies the idempotent migration.
func Open(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLite) Close() error { return s.db.Close() }

func (s *SQLite) migrate() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS posts (
        id TEXT PRIMARY KEY,
        slug TEXT,
        title TEXT,
        created_at TEXT,
        edited_at TEXT,
        content TEXT
    );`)
	if err != nil {
		return fmt.Errorf("exec migrate: %w", err)
	}

	return nil
}

// Get returns the cached post only when its stored edit timestamp matches
// editedAt exactly. A stale or absent row is a miss, not an error.
func (s *SQLite) Get(ctx context.Context, id string, editedAt string) (*posts.Post, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT slug, title, created_at, edited_at, content FROM posts WHERE id = ? AND edited_at = ?`,
		id, editedAt)

	var post posts.Post
	var content string
	err := row.Scan(&post.Slug, &post.Title, &post.CreatedAt, &post.EditedAt, &content)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("scan post %s: %w", id, err)
	}

	post.ID = id
	if err := json.Unmarshal([]byte(content), &post.Content); err != nil {
		return nil, false, fmt.Errorf("decode cached content %s: %w", id, err)
	}

	return &post, true, nil
}

func (s *SQLite) Put(ctx context.Context, post posts.Post) error {
	if post.ID == "" {
		return errors.New("post.id required")
	}

	content, err := json.Marshal(post.Content)
	if err != nil {
		return fmt.Errorf("encode content %s: %w", post.ID, err)
	}

	_, err = s.db.ExecContext(ctx, `INSERT INTO posts(id, slug, title, created_at, edited_at, content)
        VALUES(?,?,?,?,?,?)
        ON CONFLICT(id) DO UPDATE SET slug=excluded.slug, title=excluded.title,
            created_at=excluded.created_at, edited_at=excluded.edited_at, content=excluded.content`,
		post.ID, post.Slug, post.Title, post.CreatedAt, post.EditedAt, string(content))
	if err != nil {
		return fmt.Errorf("upsert post %s: %w", post.ID, err)
	}

	return nil
}
