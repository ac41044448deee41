package service

import (
	"fmt"
	"html"
	"strings"

	mediaDomain "github.com/reshetovitsme/tg-wp-bridge/internal/modules/media/domain"
	"github.com/reshetovitsme/tg-wp-bridge/internal/modules/message/parser"
	"github.com/reshetovitsme/tg-wp-bridge/internal/modules/post/domain"
	"github.com/samber/lo"
)

// Assemble builds the post for a title, a rendered body and the media
// that made it to the publishing platform. Media markup follows the body
// in upload order; bodyHTML may be empty.
func Assemble(title, bodyHTML string, uploaded []mediaDomain.UploadedMedia) *domain.Draft {
	if strings.TrimSpace(title) == "" {
		title = parser.NoTitle
	}

	var content strings.Builder
	content.WriteString(bodyHTML)
	for _, item := range uploaded {
		content.WriteString(MediaMarkup(item))
	}

	return &domain.Draft{
		Title:       title,
		ContentHTML: content.String(),
		AttachmentIDs: lo.Map(uploaded, func(item mediaDomain.UploadedMedia, _ int) int64 {
			return item.Attachment.ID
		}),
	}
}

// MediaMarkup renders one uploaded item. Items without a public URL
// render nothing.
func MediaMarkup(item mediaDomain.UploadedMedia) string {
	if item.Attachment.SourceURL == "" {
		return ""
	}

	src := html.EscapeString(item.Attachment.SourceURL)
	alt := html.EscapeString(item.Descriptor.Kind.String())

	switch item.Descriptor.Kind {
	case mediaDomain.MediaKindPhoto:
		return fmt.Sprintf(`<figure class="wp-block-image"><img src="%s" alt="%s"/></figure>`, src, alt)
	case mediaDomain.MediaKindVideo, mediaDomain.MediaKindAnimation:
		return fmt.Sprintf(`<figure class="wp-block-video"><video controls src="%s"><a href="%s">Download %s</a></video></figure>`, src, src, alt)
	default:
		return fmt.Sprintf(`<p class="wp-block-file"><a href="%s">Download attachment</a></p>`, src)
	}
}
