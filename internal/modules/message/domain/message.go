package domain

import "encoding/json"

// Update is the envelope Telegram delivers to the webhook
type Update struct {
	UpdateID    int64    `json:"update_id"`
	Message     *Message `json:"message,omitempty"`
	ChannelPost *Message `json:"channel_post,omitempty"`
	Extra       Extra    `json:"-"`
}

// Message is the subset of a Telegram message the bridge understands
type Message struct {
	MessageID int64       `json:"message_id"`
	Chat      Chat        `json:"chat"`
	Text      *string     `json:"text,omitempty"`
	Caption   *string     `json:"caption,omitempty"`
	Photo     []PhotoSize `json:"photo,omitempty"`
	Video     *Video      `json:"video,omitempty"`
	Animation *Animation  `json:"animation,omitempty"`
	Document  *Document   `json:"document,omitempty"`
	Extra     Extra       `json:"-"`
}

// Chat identifies where a message was posted. Type is one of
// "private", "group", "supergroup" or "channel".
type Chat struct {
	ID    int64  `json:"id"`
	Type  string `json:"type"`
	Extra Extra  `json:"-"`
}

// PhotoSize is one resolution variant of a photo
type PhotoSize struct {
	FileID       string `json:"file_id"`
	FileUniqueID string `json:"file_unique_id,omitempty"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	Extra        Extra  `json:"-"`
}

// File holds the members shared by every downloadable attachment
type File struct {
	FileID       string `json:"file_id"`
	FileUniqueID string `json:"file_unique_id,omitempty"`
	FileName     string `json:"file_name,omitempty"`
	MimeType     string `json:"mime_type,omitempty"`
}

type Video struct {
	File
	Width    int   `json:"width,omitempty"`
	Height   int   `json:"height,omitempty"`
	Duration int   `json:"duration,omitempty"`
	Extra    Extra `json:"-"`
}

type Animation struct {
	File
	Width    int   `json:"width,omitempty"`
	Height   int   `json:"height,omitempty"`
	Duration int   `json:"duration,omitempty"`
	Extra    Extra `json:"-"`
}

type Document struct {
	File
	Extra Extra `json:"-"`
}

func (u *Update) UnmarshalJSON(data []byte) error {
	type plain Update
	return unmarshalWithExtra(data, (*plain)(u), &u.Extra)
}

func (u Update) MarshalJSON() ([]byte, error) {
	type plain Update
	return marshalWithExtra(plain(u), u.Extra)
}

func (m *Message) UnmarshalJSON(data []byte) error {
	type plain Message
	return unmarshalWithExtra(data, (*plain)(m), &m.Extra)
}

func (m Message) MarshalJSON() ([]byte, error) {
	type plain Message
	return marshalWithExtra(plain(m), m.Extra)
}

func (c *Chat) UnmarshalJSON(data []byte) error {
	type plain Chat
	return unmarshalWithExtra(data, (*plain)(c), &c.Extra)
}

func (c Chat) MarshalJSON() ([]byte, error) {
	type plain Chat
	return marshalWithExtra(plain(c), c.Extra)
}

func (p *PhotoSize) UnmarshalJSON(data []byte) error {
	type plain PhotoSize
	return unmarshalWithExtra(data, (*plain)(p), &p.Extra)
}

func (p PhotoSize) MarshalJSON() ([]byte, error) {
	type plain PhotoSize
	return marshalWithExtra(plain(p), p.Extra)
}

func (v *Video) UnmarshalJSON(data []byte) error {
	type plain Video
	return unmarshalWithExtra(data, (*plain)(v), &v.Extra)
}

func (v Video) MarshalJSON() ([]byte, error) {
	type plain Video
	return marshalWithExtra(plain(v), v.Extra)
}

func (a *Animation) UnmarshalJSON(data []byte) error {
	type plain Animation
	return unmarshalWithExtra(data, (*plain)(a), &a.Extra)
}

func (a Animation) MarshalJSON() ([]byte, error) {
	type plain Animation
	return marshalWithExtra(plain(a), a.Extra)
}

func (d *Document) UnmarshalJSON(data []byte) error {
	type plain Document
	return unmarshalWithExtra(data, (*plain)(d), &d.Extra)
}

func (d Document) MarshalJSON() ([]byte, error) {
	type plain Document
	return marshalWithExtra(plain(d), d.Extra)
}

// ParseUpdate decodes a webhook body.
func ParseUpdate(data []byte) (*Update, error) {
	var update Update
	if err := json.Unmarshal(data, &update); err != nil {
		return nil, err
	}
	return &update, nil
}
