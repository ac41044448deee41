package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const channelPostPayload = `{
	"update_id": 4242,
	"channel_post": {
		"message_id": 17,
		"date": 1700000000,
		"chat": {"id": -1001234, "type": "channel", "title": "My channel"},
		"caption": "#blog Holiday",
		"photo": [
			{"file_id": "small", "file_unique_id": "u1", "width": 90, "height": 60},
			{"file_id": "large", "file_unique_id": "u2", "width": 1280, "height": 853, "file_size": 1000}
		],
		"document": {"file_id": "doc", "file_name": "notes.txt", "mime_type": "text/plain", "file_size": 12}
	}
}`

func TestParseUpdate(t *testing.T) {
	update, err := ParseUpdate([]byte(channelPostPayload))
	require.NoError(t, err)

	assert.Equal(t, int64(4242), update.UpdateID)
	assert.Nil(t, update.Message)
	require.NotNil(t, update.ChannelPost)

	msg := update.ChannelPost
	assert.Equal(t, int64(17), msg.MessageID)
	assert.Equal(t, int64(-1001234), msg.Chat.ID)
	assert.Equal(t, "channel", msg.Chat.Type)
	assert.Nil(t, msg.Text)
	require.NotNil(t, msg.Caption)
	assert.Equal(t, "#blog Holiday", *msg.Caption)
	require.Len(t, msg.Photo, 2)
	assert.Equal(t, 1280, msg.Photo[1].Width)
	require.NotNil(t, msg.Document)
	assert.Equal(t, "notes.txt", msg.Document.FileName)
	assert.Equal(t, "text/plain", msg.Document.MimeType)
}

func TestUnknownMembersAreKept(t *testing.T) {
	update, err := ParseUpdate([]byte(channelPostPayload))
	require.NoError(t, err)

	msg := update.ChannelPost
	assert.Contains(t, msg.Extra, "date")
	assert.NotContains(t, msg.Extra, "caption")
	assert.JSONEq(t, `"My channel"`, string(msg.Chat.Extra["title"]))
	assert.Contains(t, msg.Photo[1].Extra, "file_size")
	assert.NotContains(t, msg.Photo[1].Extra, "file_unique_id")
	assert.Equal(t, "u2", msg.Photo[1].FileUniqueID)
	assert.Contains(t, msg.Document.Extra, "file_size")
	assert.NotContains(t, msg.Document.Extra, "file_name", "embedded members are modelled")
	assert.Nil(t, update.Extra)

	out, err := json.Marshal(update)
	require.NoError(t, err)

	var roundTrip map[string]any
	require.NoError(t, json.Unmarshal(out, &roundTrip))
	post := roundTrip["channel_post"].(map[string]any)
	assert.EqualValues(t, 1700000000, post["date"])
	assert.Equal(t, "My channel", post["chat"].(map[string]any)["title"])
}

func TestMemberNamesMatchCaseInsensitively(t *testing.T) {
	update, err := ParseUpdate([]byte(`{"update_id":1,"message":{"message_id":2,"chat":{"id":3,"type":"private"},"Text":"hi","Caption":"c"}}`))
	require.NoError(t, err)

	msg := update.Message
	require.NotNil(t, msg.Text)
	assert.Equal(t, "hi", *msg.Text)
	assert.NotContains(t, msg.Extra, "Text")
	assert.NotContains(t, msg.Extra, "Caption")

	out, err := json.Marshal(msg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"message_id":2,"chat":{"id":3,"type":"private"},"text":"hi","caption":"c"}`, string(out))
}

func TestEmptyTextIsDistinctFromMissing(t *testing.T) {
	update, err := ParseUpdate([]byte(`{"update_id":1,"message":{"message_id":2,"chat":{"id":3,"type":"private"},"text":"","caption":"c"}}`))
	require.NoError(t, err)

	require.NotNil(t, update.Message.Text)
	assert.Equal(t, "", *update.Message.Text)
	assert.Equal(t, "c", *update.Message.Caption)
}

func TestParseUpdateRejectsGarbage(t *testing.T) {
	_, err := ParseUpdate([]byte(`{"update_id": "nope"`))
	assert.Error(t, err)

	_, err = ParseUpdate([]byte(`[]`))
	assert.Error(t, err)
}
