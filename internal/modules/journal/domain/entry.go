package domain

import "time"

// Entry records one post the bridge created
type Entry struct {
	PostID          int64     `json:"post_id"`
	Link            string    `json:"link,omitempty"`
	Title           string    `json:"title"`
	Summary         string    `json:"summary,omitempty"`
	UpdateID        int64     `json:"update_id"`
	ChatID          int64     `json:"chat_id"`
	MessageID       int64     `json:"message_id"`
	AttachmentCount int       `json:"attachment_count"`
	PublishedAt     time.Time `json:"published_at"`
}
