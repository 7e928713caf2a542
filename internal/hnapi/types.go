package hnapi

// searchResponse - ответ /search Algolia HN API (используемые поля).
type searchResponse struct {
	Hits    []rawStory `json:"hits"`
	Page    int        `json:"page"`
	NbPages int        `json:"nbPages"`
}

// rawStory - элемент hits. points и num_comments у комментариев бывают null.
type rawStory struct {
	ObjectID    string  `json:"objectID"`
	Title       *string `json:"title"`
	URL         *string `json:"url"`
	Author      string  `json:"author"`
	NumComments *int    `json:"num_comments"`
	Points      *int    `json:"points"`
}
