package domain

import (
	"fmt"
	"time"
)

// Post is one discussion thread pulled from the forum listing.
type Post struct {
	Title       string
	URL         string
	Tags        []string
	PostedAt    *time.Time
	ProblemLink string
}

// PostedDate renders the posting date the way exports expect it:
// YYYY-MM-DD, or the literal "unknown" when the source gave us nothing usable.
func (p Post) PostedDate() string {
	if p.PostedAt == nil || p.PostedAt.IsZero() {
		return "unknown"
	}
	return p.PostedAt.Format("2006-01-02")
}

// MonthKey is a (year, month) bucket. The zero value is the "unknown"
// bucket for posts without a parseable date.
type MonthKey struct {
	Year  int
	Month time.Month
}

func MonthOf(p Post) MonthKey {
	if p.PostedAt == nil || p.PostedAt.IsZero() {
		return MonthKey{}
	}
	return MonthKey{Year: p.PostedAt.Year(), Month: p.PostedAt.Month()}
}

func (k MonthKey) String() string {
	if k == (MonthKey{}) {
		return "unknown"
	}
	return fmt.Sprintf("%04d-%02d", k.Year, int(k.Month))
}
