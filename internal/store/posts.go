package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"leetcrawl/internal/domain"
)

// InsertPostIfNew records one crawled post, keyed by its thread URL. The
// store is a sink only; crawls never read it back.
func (d *DB) InsertPostIfNew(ctx context.Context, p domain.Post, crawledAt time.Time) (bool, error) {
	if p.URL == "" {
		return false, errors.New("missing url")
	}

	tagsB, _ := json.Marshal(p.Tags)

	res, err := d.Pool.ExecContext(ctx, `
INSERT OR IGNORE INTO posts(url, title, tags, posted_at, problem_link, crawled_at)
VALUES(?,?,?,?,?,?);`,
		p.URL,
		p.Title,
		string(tagsB),
		p.PostedDate(),
		p.ProblemLink,
		crawledAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// SaveAll inserts every post, returning how many were new. Individual insert
// failures stop the batch; the caller logs and moves on.
func (d *DB) SaveAll(ctx context.Context, posts []domain.Post) (int, error) {
	now := time.Now()
	added := 0
	for _, p := range posts {
		ok, err := d.InsertPostIfNew(ctx, p, now)
		if err != nil {
			return added, err
		}
		if ok {
			added++
		}
	}
	return added, nil
}
