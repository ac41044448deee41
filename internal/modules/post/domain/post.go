package domain

// Draft is a post ready to be created on the publishing platform
type Draft struct {
	Title         string  `json:"title"`
	ContentHTML   string  `json:"content"`
	AttachmentIDs []int64 `json:"attachment_ids"`
}

// Published identifies a created post
type Published struct {
	ID   int64  `json:"id"`
	Link string `json:"link,omitempty"`
}
