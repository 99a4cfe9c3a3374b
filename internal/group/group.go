package group

import "leetcrawl/internal/domain"

type Group struct {
	Key   domain.MonthKey
	Posts []domain.Post
}

// ByMonth buckets posts by (year, month) of their posting date. Groups come
// out in first-seen order and posts keep their input order, so the same input
// always produces the same output. Undated posts share the "unknown" bucket.
func ByMonth(posts []domain.Post) []Group {
	idx := map[domain.MonthKey]int{}
	var out []Group
	for _, p := range posts {
		k := domain.MonthOf(p)
		i, ok := idx[k]
		if !ok {
			i = len(out)
			idx[k] = i
			out = append(out, Group{Key: k})
		}
		out[i].Posts = append(out[i].Posts, p)
	}
	return out
}
