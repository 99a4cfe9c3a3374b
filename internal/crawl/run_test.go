package crawl

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"leetcrawl/internal/crawl/leetcode"

	"github.com/stretchr/testify/require"
)

func crawlServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if strings.HasPrefix(r.URL.Path, "/discuss/api/topic/") {
			id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/discuss/api/topic/"), "/")
			fmt.Fprintf(w, `{"data":{"post":{
				"title":"detail %s",
				"content":"<a href=\"/problems/two-sum/\">link</a>",
				"creationDate":"2024-01-05T00:00:00Z",
				"author":{"username":"alice"}}}}`, id)
			return
		}

		skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
		if skip > 0 {
			fmt.Fprint(w, `{"topics":[],"totalNum":3}`)
			return
		}
		fmt.Fprint(w, `{"topics":[
			{"id":1,"title":"Google onsite","tags":[{"name":"Google","slug":"google"}],"creationDate":"2024-01-05T00:00:00Z"},
			{"id":2,"title":"Meta phone","tags":[{"name":"Facebook","slug":"facebook"}],"creationDate":"2024-01-06T00:00:00Z"},
			{"id":3,"title":"Google L4","tags":[{"name":"Google","slug":"google"}],"creationDate":""}
		],"totalNum":3}`)
	}))
}

func TestRunFiltersAndHydrates(t *testing.T) {
	srv := crawlServer(t)
	defer srv.Close()

	c := leetcode.New(leetcode.Config{BaseURL: srv.URL, Category: "interview-question", Tag: "google", PageSize: 15}, nil)
	posts := Run(context.Background(), c, 5, Options{Company: "google", Hydrate: true})

	require.Len(t, posts, 2)

	require.Equal(t, "Google onsite", posts[0].Title)
	require.Equal(t, srv.URL+"/discuss/1/", posts[0].URL)
	require.Equal(t, srv.URL+"/problems/two-sum/", posts[0].ProblemLink)

	// topic 3 had no listing date; hydration backfilled it
	require.NotNil(t, posts[1].PostedAt)
	require.Equal(t, "2024-01-05", posts[1].PostedDate())
}

func TestRunWithoutHydration(t *testing.T) {
	srv := crawlServer(t)
	defer srv.Close()

	c := leetcode.New(leetcode.Config{BaseURL: srv.URL, Category: "interview-question", Tag: "google", PageSize: 15}, nil)
	posts := Run(context.Background(), c, 5, Options{Company: "google"})

	require.Len(t, posts, 2)
	require.Empty(t, posts[0].ProblemLink)
	require.Nil(t, posts[1].PostedAt) // no detail fetch, no backfill
}

func TestRunZeroPages(t *testing.T) {
	srv := crawlServer(t)
	defer srv.Close()

	c := leetcode.New(leetcode.Config{BaseURL: srv.URL, Category: "interview-question", Tag: "google"}, nil)
	posts := Run(context.Background(), c, 0, Options{Company: "google"})
	require.Empty(t, posts)
}
