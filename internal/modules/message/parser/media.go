package parser

import (
	"github.com/reshetovitsme/tg-wp-bridge/internal/modules/message/domain"
	mediaDomain "github.com/reshetovitsme/tg-wp-bridge/internal/modules/media/domain"
	"github.com/samber/lo"
)

// FindPhotoWithMaxSize picks the photo variant with the largest area.
// The first variant wins on ties.
func FindPhotoWithMaxSize(msg *domain.Message) *domain.PhotoSize {
	if msg == nil || len(msg.Photo) == 0 {
		return nil
	}

	largest := lo.MaxBy(msg.Photo, func(a, b domain.PhotoSize) bool {
		return area(a) > area(b)
	})
	return &largest
}

// CollectSupportedMedia flattens the attachments of a message into
// descriptors ordered photo, video, animation, document. A source id is
// emitted once; later kinds carrying the same id are dropped.
func CollectSupportedMedia(msg *domain.Message) []mediaDomain.Descriptor {
	if msg == nil {
		return []mediaDomain.Descriptor{}
	}

	var candidates []mediaDomain.Descriptor
	if photo := FindPhotoWithMaxSize(msg); photo != nil {
		candidates = append(candidates, mediaDomain.Descriptor{
			Kind:     mediaDomain.MediaKindPhoto,
			SourceID: photo.FileID,
		})
	}
	if msg.Video != nil {
		candidates = append(candidates, fileDescriptor(mediaDomain.MediaKindVideo, msg.Video.File))
	}
	if msg.Animation != nil {
		candidates = append(candidates, fileDescriptor(mediaDomain.MediaKindAnimation, msg.Animation.File))
	}
	if msg.Document != nil {
		candidates = append(candidates, fileDescriptor(mediaDomain.MediaKindDocument, msg.Document.File))
	}

	return lo.UniqBy(candidates, func(d mediaDomain.Descriptor) string {
		return d.SourceID
	})
}

func fileDescriptor(kind mediaDomain.MediaKind, f domain.File) mediaDomain.Descriptor {
	return mediaDomain.Descriptor{
		Kind:     kind,
		SourceID: f.FileID,
		FileName: f.FileName,
		MimeType: f.MimeType,
	}
}

func area(p domain.PhotoSize) int {
	return p.Width * p.Height
}
