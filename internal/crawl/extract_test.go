package crawl

import (
	"testing"
	"time"

	"leetcrawl/internal/crawl/leetcode"

	"github.com/stretchr/testify/require"
)

func topicWithTags(id int64, title string, slugs ...string) leetcode.Topic {
	t := leetcode.Topic{ID: id, Title: title}
	for _, s := range slugs {
		t.Tags = append(t.Tags, leetcode.TopicTag{Name: s, Slug: s})
	}
	return t
}

func TestExtractFiltersOnCompanyTag(t *testing.T) {
	cases := []struct {
		name string
		tags []string
		keep bool
	}{
		{"target tag present", []string{"google", "phone-screen"}, true},
		{"different company", []string{"facebook"}, false},
		{"no tags at all", nil, false},
		{"case-insensitive match", []string{"Google"}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			topic := topicWithTags(42, "Phone screen question", tc.tags...)
			_, err := Extract("https://leetcode.com", topic, "google")
			if tc.keep {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, ErrFiltered)
			}
		})
	}
}

func TestExtractBuildsPost(t *testing.T) {
	topic := topicWithTags(1234, "  Google | Onsite | L4  ", "google")
	topic.CreationDate = "2024-01-05T12:00:00Z"

	p, err := Extract("https://leetcode.com/", topic, "google")
	require.NoError(t, err)
	require.Equal(t, "Google | Onsite | L4", p.Title)
	require.Equal(t, "https://leetcode.com/discuss/1234/", p.URL)
	require.Equal(t, []string{"google"}, p.Tags)
	require.NotNil(t, p.PostedAt)
	require.Equal(t, 2024, p.PostedAt.Year())
	require.Equal(t, time.January, p.PostedAt.Month())
}

func TestExtractRejectsBrokenEntries(t *testing.T) {
	_, err := Extract("https://leetcode.com", leetcode.Topic{Title: "no id"}, "google")
	require.Error(t, err)

	_, err = Extract("https://leetcode.com", topicWithTags(7, "", "google"), "google")
	require.Error(t, err)
}

func TestParsePostedAt(t *testing.T) {
	cases := []struct {
		name   string
		in     string
		expect string // "" means nil
	}{
		{"rfc3339", "2024-02-01T08:00:00Z", "2024-02-01"},
		{"plain date", "2023-11-30", "2023-11-30"},
		{"epoch seconds", "1704499200", "2024-01-06"},
		{"epoch millis", "1704499200000", "2024-01-06"},
		{"garbage", "yesterday-ish", ""},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := parsePostedAt(tc.in)
			if tc.expect == "" {
				require.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			require.Equal(t, tc.expect, got.UTC().Format("2006-01-02"))
		})
	}
}

func TestProblemLink(t *testing.T) {
	content := `<p>Got asked <a href="/problems/two-sum/">this one</a> and
		<a href="https://leetcode.com/problems/lru-cache/">this</a>.</p>`

	require.Equal(t,
		"https://leetcode.com/problems/two-sum/",
		problemLink("https://leetcode.com", content))

	require.Equal(t, "", problemLink("https://leetcode.com", "<p>no links here</p>"))
}
