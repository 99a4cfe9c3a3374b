package export

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"leetcrawl/internal/domain"
	"leetcrawl/internal/group"

	"golang.org/x/sync/errgroup"
)

// TagSeparator joins a post's tags into the single CSV tags field.
const TagSeparator = ";"

// Header is the fixed column order shared by every export target.
func Header() []string {
	return []string{"title", "url", "tags", "posted_at"}
}

// Row renders one post in Header() order.
func Row(p domain.Post) []string {
	return []string{
		p.Title,
		p.URL,
		strings.Join(p.Tags, TagSeparator),
		p.PostedDate(),
	}
}

// WriteCSV writes the header plus one row per post, replacing whatever was at
// path before. Output is byte-for-byte deterministic for the same input.
func WriteCSV(posts []domain.Post, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(Header()); err != nil {
		f.Close()
		return err
	}
	for _, p := range posts {
		if err := w.Write(Row(p)); err != nil {
			f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteMonthly writes one <key>.csv per group into dir, creating dir if
// needed. Each group's write is independent: a failure is logged, the first
// one is returned, and siblings still get written. Returns how many files
// landed on disk.
func WriteMonthly(groups []group.Group, dir string) (int, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("create output dir %s: %w", dir, err)
	}

	var (
		g        errgroup.Group
		mu       sync.Mutex
		written  int
		firstErr error
	)

	for _, grp := range groups {
		grp := grp
		g.Go(func() error {
			path := filepath.Join(dir, grp.Key.String()+".csv")
			if err := WriteCSV(grp.Posts, path); err != nil {
				log.Printf("[export] month=%s err=%v", grp.Key, err)
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return nil // best-effort: don't cancel siblings
			}
			mu.Lock()
			written++
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return written, firstErr
}
