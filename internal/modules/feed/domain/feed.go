package domain

// FeedConfig describes the RSS feed of mirrored posts
type FeedConfig struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
	Limit       int    `json:"limit"`
}
