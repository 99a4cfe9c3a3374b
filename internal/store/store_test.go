package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"leetcrawl/internal/domain"

	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "crawl.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSaveAllIgnoresDuplicateURLs(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	jan := time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)
	posts := []domain.Post{
		{Title: "Onsite", URL: "https://leetcode.com/discuss/1/", Tags: []string{"google"}, PostedAt: &jan},
		{Title: "Phone", URL: "https://leetcode.com/discuss/2/", Tags: []string{"google"}},
	}

	added, err := db.SaveAll(ctx, posts)
	require.NoError(t, err)
	require.Equal(t, 2, added)

	// same URLs again: nothing new
	added, err = db.SaveAll(ctx, posts)
	require.NoError(t, err)
	require.Equal(t, 0, added)

	var count int
	require.NoError(t, db.Pool.QueryRow(`SELECT COUNT(*) FROM posts`).Scan(&count))
	require.Equal(t, 2, count)
}

func TestInsertPostIfNewRequiresURL(t *testing.T) {
	db := openTestDB(t)

	_, err := db.InsertPostIfNew(context.Background(), domain.Post{Title: "no url"}, time.Now())
	require.Error(t, err)
}

func TestInsertStoresRenderedDate(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	feb := time.Date(2024, time.February, 1, 15, 4, 5, 0, time.UTC)
	ok, err := db.InsertPostIfNew(ctx, domain.Post{
		Title:       "L5 loop",
		URL:         "https://leetcode.com/discuss/3/",
		Tags:        []string{"google", "onsite"},
		PostedAt:    &feb,
		ProblemLink: "https://leetcode.com/problems/two-sum/",
	}, time.Now())
	require.NoError(t, err)
	require.True(t, ok)

	var postedAt, problemLink string
	require.NoError(t, db.Pool.QueryRow(
		`SELECT posted_at, problem_link FROM posts WHERE url = ?`,
		"https://leetcode.com/discuss/3/",
	).Scan(&postedAt, &problemLink))
	require.Equal(t, "2024-02-01", postedAt)
	require.Equal(t, "https://leetcode.com/problems/two-sum/", problemLink)
}
