package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notionblog/internal/posts"
)

func openTestStore(t *testing.T) *SQLite {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestPutGet_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	post := posts.Post{
		Summary: posts.Summary{
			ID:        "a",
			Slug:      "hello",
			Title:     "Hello",
			CreatedAt: "2024-03-01T10:00:00.000Z",
			EditedAt:  "2024-03-02T10:00:00.000Z",
		},
		Content: []posts.Content{
			{Type: posts.ContentParagraph, Text: "body"},
			{Type: posts.ContentCode, Text: "x := 1", Language: "go"},
		},
	}
	require.NoError(t, s.Put(ctx, post))

	got, ok, err := s.Get(ctx, "a", post.EditedAt)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, post, *got)
}

func TestGet_StaleEditTimeIsMiss(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	post := posts.Post{Summary: posts.Summary{ID: "a", EditedAt: "2024-03-02T10:00:00.000Z"}}
	require.NoError(t, s.Put(ctx, post))

	_, ok, err := s.Get(ctx, "a", "2024-03-03T10:00:00.000Z")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGet_AbsentIsMiss(t *testing.T) {
	s := openTestStore(t)

	_, ok, err := s.Get(context.Background(), "missing", "whenever")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPut_Upserts(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first := posts.Post{Summary: posts.Summary{ID: "a", Title: "Old", EditedAt: "e1"}}
	require.NoError(t, s.Put(ctx, first))

	second := posts.Post{Summary: posts.Summary{ID: "a", Title: "New", EditedAt: "e2"}}
	require.NoError(t, s.Put(ctx, second))

	got, ok, err := s.Get(ctx, "a", "e2")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "New", got.Title)
}

func TestPut_RequiresID(t *testing.T) {
	s := openTestStore(t)

	err := s.Put(context.Background(), posts.Post{})
	require.Error(t, err)
}
