package service

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/reshetovitsme/tg-wp-bridge/internal/modules/media/domain"
	"github.com/samber/oops"
)

const fallbackContentType = "application/octet-stream"

// Source is the messaging platform side: it turns a file id into a
// short-lived URL and fetches its bytes. ResolveFetchURL returns "" with
// a nil error when the platform does not know the file.
type Source interface {
	ResolveFetchURL(ctx context.Context, fileID string) (string, error)
	Download(ctx context.Context, fileURL string) ([]byte, error)
}

// Uploader is the publishing platform side. It reports failure through
// ok=false instead of an error.
type Uploader interface {
	UploadMedia(ctx context.Context, filename, contentType string, data []byte) (domain.Attachment, bool)
}

// Service moves attachments from the source to the publishing platform
type Service struct {
	source   Source
	uploader Uploader
	logger   *slog.Logger
}

// New creates a new media service
func New(source Source, uploader Uploader) *Service {
	return &Service{
		source:   source,
		uploader: uploader,
		logger:   slog.Default(),
	}
}

// SetLogger sets the logger
func (s *Service) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Publish handles descriptors one at a time, in order. A failing item is
// logged and skipped; it never stops the remaining ones.
func (s *Service) Publish(ctx context.Context, descriptors []domain.Descriptor) *domain.Report {
	report := &domain.Report{Results: make([]domain.Result, 0, len(descriptors))}
	for _, d := range descriptors {
		report.Results = append(report.Results, s.publishOne(ctx, d))
	}
	return report
}

func (s *Service) publishOne(ctx context.Context, d domain.Descriptor) domain.Result {
	res := domain.Result{Descriptor: d, State: domain.ItemStatePending}
	log := s.logger.With("kind", d.Kind, "file_id", d.SourceID)

	fail := func(err error) domain.Result {
		log.Warn("Media skipped", "state", res.State, "error", err)
		res.State = domain.ItemStateFailed
		res.Err = err
		return res
	}

	fileURL, err := s.source.ResolveFetchURL(ctx, d.SourceID)
	if err != nil {
		return fail(oops.With("file_id", d.SourceID, "context", "failed to resolve file url").Wrap(err))
	}
	if fileURL == "" {
		return fail(oops.With("file_id", d.SourceID).Errorf("file not found on source platform"))
	}
	res.State = domain.ItemStateUrlResolved

	data, err := s.source.Download(ctx, fileURL)
	if err != nil {
		return fail(oops.With("file_id", d.SourceID, "context", "failed to download file").Wrap(err))
	}
	res.State = domain.ItemStateDownloaded

	res.FileName = FileName(d, fileURL)
	res.ContentType = ContentType(d, res.FileName)

	attachment, ok := s.uploader.UploadMedia(ctx, res.FileName, res.ContentType, data)
	if !ok {
		return fail(oops.With("filename", res.FileName).Errorf("upload rejected by publishing platform"))
	}

	res.State = domain.ItemStateUploaded
	res.Attachment = &attachment
	log.Info("Media uploaded", "attachment_id", attachment.ID, "filename", res.FileName, "bytes", len(data))
	return res
}

// FileName picks the upload filename: the one the sender supplied, else
// the last segment of the fetch URL, else one made from kind and id.
func FileName(d domain.Descriptor, fileURL string) string {
	if name := strings.TrimSpace(d.FileName); name != "" {
		return name
	}

	if u, err := url.Parse(fileURL); err == nil && !strings.HasSuffix(u.Path, "/") {
		if name := path.Base(u.Path); name != "." && name != "/" && name != "" {
			return name
		}
	}

	return fmt.Sprintf("telegram-%s-%s%s", d.Kind, shortID(d.SourceID), defaultExtension(d.Kind))
}

// ContentType picks the upload MIME type: the declared one, else a guess
// from the filename extension, else a generic binary type.
func ContentType(d domain.Descriptor, filename string) string {
	if d.MimeType != "" {
		return d.MimeType
	}
	if guessed := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename))); guessed != "" {
		mediaType, _, err := mime.ParseMediaType(guessed)
		if err == nil {
			return mediaType
		}
		return guessed
	}
	return fallbackContentType
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	if id == "" {
		return "file"
	}
	return id
}

func defaultExtension(kind domain.MediaKind) string {
	switch kind {
	case domain.MediaKindPhoto:
		return ".jpg"
	case domain.MediaKindVideo, domain.MediaKindAnimation:
		return ".mp4"
	default:
		return ""
	}
}
