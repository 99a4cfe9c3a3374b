package leetcode

// Topic is one listing entry from /discuss/api/topics.
type Topic struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Tags         []TopicTag `json:"tags"`
	CreationDate string     `json:"creationDate"`
}

type TopicTag struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type topicsResponse struct {
	Topics []Topic `json:"topics"`
	Total  int     `json:"totalNum"`
}

// Detail is the hydrated view of a single topic from /discuss/api/topic/<id>/.
type Detail struct {
	Title        string
	Content      string
	CreationDate string
	Author       string
}

// The detail endpoint nests everything under data.post.
type detailResponse struct {
	Data struct {
		Post struct {
			Title        string `json:"title"`
			Content      string `json:"content"`
			CreationDate string `json:"creationDate"`
			Author       struct {
				Username string `json:"username"`
			} `json:"author"`
		} `json:"post"`
	} `json:"data"`
}
