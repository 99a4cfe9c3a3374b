package leetcode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"leetcrawl/internal/crawl/util"
)

type Config struct {
	BaseURL  string // default https://leetcode.com
	Category string // e.g. interview-question
	Tag      string // company tag passed to the listing endpoint
	PageSize int    // the site serves 15 topics per page
	Verbose  bool
}

type Client struct {
	cfg     Config
	hc      *http.Client
	limiter *util.Limiter
}

func New(cfg Config, limiter *util.Limiter) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://leetcode.com"
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.PageSize <= 0 {
		cfg.PageSize = 15
	}
	return &Client{
		cfg:     cfg,
		hc:      &http.Client{Timeout: 20 * time.Second},
		limiter: limiter,
	}
}

func (c *Client) BaseURL() string { return c.cfg.BaseURL }

// FetchPages walks the listing endpoint page by page, one request at a time.
// A failed or empty page ends the walk; whatever was collected so far is
// returned. Errors never propagate past this boundary.
func (c *Client) FetchPages(ctx context.Context, maxPages int) []Topic {
	var out []Topic
	for page := 1; page <= maxPages; page++ {
		topics, err := c.fetchPage(ctx, page)
		if err != nil {
			log.Printf("[leetcode] page=%d err=%v", page, err)
			break
		}
		if len(topics) == 0 {
			if c.cfg.Verbose {
				log.Printf("[leetcode] no more topics on page %d", page)
			}
			break
		}
		out = append(out, topics...)
		if c.cfg.Verbose {
			log.Printf("[leetcode] page=%d topics=%d", page, len(topics))
		}
	}
	return out
}

func (c *Client) fetchPage(ctx context.Context, page int) ([]Topic, error) {
	q := url.Values{}
	q.Set("categories", c.cfg.Category)
	q.Set("tags", c.cfg.Tag)
	q.Set("orderBy", "hot")
	q.Set("skip", fmt.Sprint((page-1)*c.cfg.PageSize))
	q.Set("limit", fmt.Sprint(c.cfg.PageSize))

	endpoint := c.cfg.BaseURL + "/discuss/api/topics?" + q.Encode()

	data, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var tr topicsResponse
	if err := json.Unmarshal(data, &tr); err != nil {
		return nil, fmt.Errorf("topics decode: %w body=%s", err, util.Truncate(string(data), 240))
	}
	return tr.Topics, nil
}

// Detail fetches the full record for one topic. The listing often omits the
// posting date, so callers use this to backfill it (and the post content).
func (c *Client) Detail(ctx context.Context, topicID int64) (Detail, error) {
	endpoint := fmt.Sprintf("%s/discuss/api/topic/%d/", c.cfg.BaseURL, topicID)

	data, err := c.get(ctx, endpoint)
	if err != nil {
		return Detail{}, err
	}

	var dr detailResponse
	if err := json.Unmarshal(data, &dr); err != nil {
		return Detail{}, fmt.Errorf("topic decode: %w body=%s", err, util.Truncate(string(data), 240))
	}
	return Detail{
		Title:        dr.Data.Post.Title,
		Content:      dr.Data.Post.Content,
		CreationDate: dr.Data.Post.CreationDate,
		Author:       dr.Data.Post.Author.Username,
	}, nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")
	req.Header.Set("Accept", "application/json, text/javascript, */*; q=0.01")
	req.Header.Set("Referer", c.cfg.BaseURL+"/discuss/"+c.cfg.Category+"/")

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("leetcode get: %w", err)
	}
	data, _ := io.ReadAll(res.Body)
	res.Body.Close()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("leetcode status %d body=%s", res.StatusCode, util.Truncate(string(data), 240))
	}
	return data, nil
}
