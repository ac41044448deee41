package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	mediaDomain "github.com/reshetovitsme/tg-wp-bridge/internal/modules/media/domain"
)

func uploaded(kind mediaDomain.MediaKind, id int64, url string) mediaDomain.UploadedMedia {
	return mediaDomain.UploadedMedia{
		Descriptor: mediaDomain.Descriptor{Kind: kind, SourceID: "src"},
		Attachment: mediaDomain.Attachment{ID: id, SourceURL: url},
	}
}

func TestAssemble(t *testing.T) {
	draft := Assemble("Trip", "<p>Body</p>", []mediaDomain.UploadedMedia{
		uploaded(mediaDomain.MediaKindPhoto, 11, "https://blog.example/a.jpg"),
		uploaded(mediaDomain.MediaKindVideo, 12, "https://blog.example/b.mp4"),
		uploaded(mediaDomain.MediaKindDocument, 13, "https://blog.example/c.pdf"),
	})

	assert.Equal(t, "Trip", draft.Title)
	assert.Equal(t, []int64{11, 12, 13}, draft.AttachmentIDs)
	assert.Equal(t, "<p>Body</p>"+
		`<figure class="wp-block-image"><img src="https://blog.example/a.jpg" alt="photo"/></figure>`+
		`<figure class="wp-block-video"><video controls src="https://blog.example/b.mp4"><a href="https://blog.example/b.mp4">Download video</a></video></figure>`+
		`<p class="wp-block-file"><a href="https://blog.example/c.pdf">Download attachment</a></p>`,
		draft.ContentHTML)
}

func TestAssembleWithoutBody(t *testing.T) {
	draft := Assemble("", "", []mediaDomain.UploadedMedia{
		uploaded(mediaDomain.MediaKindPhoto, 5, "https://blog.example/a.jpg"),
	})

	assert.Equal(t, "(no title)", draft.Title)
	assert.True(t, strings.HasPrefix(draft.ContentHTML, "<figure"))
	assert.Equal(t, []int64{5}, draft.AttachmentIDs)
}

func TestAssembleTextOnly(t *testing.T) {
	draft := Assemble("Title", "<p>Only text</p>", nil)

	assert.Equal(t, "<p>Only text</p>", draft.ContentHTML)
	assert.Empty(t, draft.AttachmentIDs)
}

func TestMediaMarkup(t *testing.T) {
	t.Run("urls are escaped", func(t *testing.T) {
		got := MediaMarkup(uploaded(mediaDomain.MediaKindPhoto, 1, `https://blog.example/a.jpg?x=1&y="2"`))
		assert.Contains(t, got, `src="https://blog.example/a.jpg?x=1&amp;y=&#34;2&#34;"`)
	})

	t.Run("animation renders as video", func(t *testing.T) {
		got := MediaMarkup(uploaded(mediaDomain.MediaKindAnimation, 1, "https://blog.example/a.mp4"))
		assert.Contains(t, got, "<video controls")
		assert.Contains(t, got, "Download animation")
	})

	t.Run("missing public url renders nothing", func(t *testing.T) {
		assert.Empty(t, MediaMarkup(uploaded(mediaDomain.MediaKindPhoto, 1, "")))
	})
}
