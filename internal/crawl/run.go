package crawl

import (
	"context"
	"errors"
	"log"

	"leetcrawl/internal/crawl/leetcode"
	"leetcrawl/internal/domain"
)

type Options struct {
	Company string
	Hydrate bool // fetch per-topic details to backfill dates and problem links
	Verbose bool
}

// Run drives one crawl: page through the listing, filter to the company tag,
// optionally hydrate each post from its detail endpoint. Broken entries are
// skipped, never fatal.
func Run(ctx context.Context, c *leetcode.Client, maxPages int, opts Options) []domain.Post {
	topics := c.FetchPages(ctx, maxPages)

	var posts []domain.Post
	for _, t := range topics {
		p, err := Extract(c.BaseURL(), t, opts.Company)
		if errors.Is(err, ErrFiltered) {
			continue
		}
		if err != nil {
			log.Printf("[crawl] skip topic id=%d: %v", t.ID, err)
			continue
		}
		if opts.Hydrate {
			hydrate(ctx, c, t.ID, &p, opts.Verbose)
		}
		posts = append(posts, p)
	}

	log.Printf("[crawl] topics=%d kept=%d tag=%q", len(topics), len(posts), opts.Company)
	return posts
}

func hydrate(ctx context.Context, c *leetcode.Client, topicID int64, p *domain.Post, verbose bool) {
	d, err := c.Detail(ctx, topicID)
	if err != nil {
		if verbose {
			log.Printf("[crawl] hydrate id=%d err=%v", topicID, err)
		}
		return
	}

	if p.Title == "" && d.Title != "" {
		p.Title = d.Title
	}
	if p.PostedAt == nil {
		p.PostedAt = parsePostedAt(d.CreationDate)
	}
	p.ProblemLink = problemLink(c.BaseURL(), d.Content)
}
