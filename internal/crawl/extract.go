package crawl

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"leetcrawl/internal/crawl/leetcode"
	"leetcrawl/internal/crawl/util"
	"leetcrawl/internal/domain"

	"github.com/PuerkitoBio/goquery"
)

// ErrFiltered marks an entry that parsed fine but doesn't carry the company
// tag we're crawling for. Callers drop these silently.
var ErrFiltered = errors.New("company tag not present")

// Extract turns one listing entry into a Post, or explains why it can't.
// A missing date is not an error; the post just lands in the unknown bucket.
func Extract(baseURL string, t leetcode.Topic, companyTag string) (domain.Post, error) {
	if t.ID == 0 {
		return domain.Post{}, errors.New("missing topic id")
	}

	title := util.CleanText(t.Title)
	if title == "" {
		return domain.Post{}, errors.New("missing title")
	}

	tags := tagLabels(t.Tags)
	if !hasTag(tags, companyTag) {
		return domain.Post{}, ErrFiltered
	}

	return domain.Post{
		Title:    title,
		URL:      fmt.Sprintf("%s/discuss/%d/", strings.TrimRight(baseURL, "/"), t.ID),
		Tags:     tags,
		PostedAt: parsePostedAt(t.CreationDate),
	}, nil
}

func tagLabels(tags []leetcode.TopicTag) []string {
	var out []string
	for _, t := range tags {
		label := strings.TrimSpace(t.Slug)
		if label == "" {
			label = strings.TrimSpace(t.Name)
		}
		if label == "" {
			continue
		}
		out = append(out, label)
	}
	return out
}

func hasTag(tags []string, want string) bool {
	want = strings.ToLower(strings.TrimSpace(want))
	for _, t := range tags {
		if strings.ToLower(t) == want {
			return true
		}
	}
	return false
}

func parsePostedAt(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t
	}
	// Sometimes it's epoch ms/seconds as a string.
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		var t time.Time
		if n >= 1_000_000_000_000 {
			t = time.UnixMilli(n).UTC()
		} else {
			t = time.Unix(n, 0).UTC()
		}
		return &t
	}
	return nil
}

// problemLink pulls the first linked problem out of a post's content HTML.
func problemLink(baseURL, content string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return ""
	}

	link := ""
	doc.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, ok := a.Attr("href")
		if !ok {
			return true
		}
		href = strings.TrimSpace(href)
		if !strings.Contains(href, "/problems/") {
			return true
		}
		if strings.HasPrefix(href, "/") {
			href = strings.TrimRight(baseURL, "/") + href
		}
		link = href
		return false
	})
	return link
}
