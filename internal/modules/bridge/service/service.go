package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	filterDomain "github.com/reshetovitsme/tg-wp-bridge/internal/modules/filter/domain"
	filterService "github.com/reshetovitsme/tg-wp-bridge/internal/modules/filter/service"
	journalDomain "github.com/reshetovitsme/tg-wp-bridge/internal/modules/journal/domain"
	journalRepo "github.com/reshetovitsme/tg-wp-bridge/internal/modules/journal/repository"
	mediaDomain "github.com/reshetovitsme/tg-wp-bridge/internal/modules/media/domain"
	messageDomain "github.com/reshetovitsme/tg-wp-bridge/internal/modules/message/domain"
	"github.com/reshetovitsme/tg-wp-bridge/internal/modules/message/parser"
	postDomain "github.com/reshetovitsme/tg-wp-bridge/internal/modules/post/domain"
	postService "github.com/reshetovitsme/tg-wp-bridge/internal/modules/post/service"
	"github.com/samber/oops"
)

// MediaPublisher moves a message's attachments to the publishing platform
type MediaPublisher interface {
	Publish(ctx context.Context, descriptors []mediaDomain.Descriptor) *mediaDomain.Report
}

// PostCreator creates the post on the publishing platform
type PostCreator interface {
	CreatePost(ctx context.Context, draft *postDomain.Draft) (*postDomain.Published, error)
}

// Outcome describes what happened to one update
type Outcome struct {
	Rejection filterDomain.Rejection
	Draft     *postDomain.Draft
	Published *postDomain.Published
	Media     *mediaDomain.Report
}

// Service turns Telegram updates into WordPress posts
type Service struct {
	filters filterDomain.Context
	media   MediaPublisher
	posts   PostCreator
	journal journalRepo.Repository
	logger  *slog.Logger
	now     func() time.Time
}

// New creates a new bridge service. journal may be nil.
func New(filters filterDomain.Context, media MediaPublisher, posts PostCreator, journal journalRepo.Repository) *Service {
	return &Service{
		filters: filters,
		media:   media,
		posts:   posts,
		journal: journal,
		logger:  slog.Default(),
		now:     time.Now,
	}
}

// SetLogger sets the logger
func (s *Service) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// HandleUpdate publishes update under the configured filters. Filtered
// updates return nil; only a failed post creation is an error.
func (s *Service) HandleUpdate(ctx context.Context, update *messageDomain.Update) error {
	_, err := s.Process(ctx, update, s.filters)
	return err
}

// Process runs the whole pipeline for one update with an explicit policy.
func (s *Service) Process(ctx context.Context, update *messageDomain.Update, filters filterDomain.Context) (*Outcome, error) {
	msg := parser.ExtractMessageEntity(update)
	if msg == nil {
		s.logger.Info("Update has no message or channel post, ignoring", "update_id", updateID(update))
		return &Outcome{Rejection: filterDomain.RejectionNoMessage}, nil
	}

	log := s.logger.With("update_id", update.UpdateID, "chat_id", msg.Chat.ID, "message_id", msg.MessageID)

	text, _ := parser.MessageText(msg)
	descriptors := parser.CollectSupportedMedia(msg)

	in := filterService.InputFor(msg, text)
	verdict := filterService.Evaluate(in, filters)
	if !verdict.Accepted {
		log.Info("Message filtered out",
			"reason", verdict.Reason,
			"chat_type", msg.Chat.Type,
			"hashtags", in.Hashtags,
			"matched", verdict.Matched,
		)
		return &Outcome{Rejection: verdict.Reason}, nil
	}

	title := parser.BuildTitleFromText(text, parser.DefaultTitleLength)
	body := ""
	if strings.TrimSpace(text) != "" {
		body = parser.TextToHTML(text)
	}

	report := s.media.Publish(ctx, descriptors)
	draft := postService.Assemble(title, body, report.Uploaded())

	log.Info("Creating post",
		"title", draft.Title,
		"media_found", len(descriptors),
		"media_uploaded", len(draft.AttachmentIDs),
	)

	published, err := s.posts.CreatePost(ctx, draft)
	if err != nil {
		return nil, oops.
			With("update_id", update.UpdateID, "chat_id", msg.Chat.ID, "message_id", msg.MessageID).
			Wrapf(err, "failed to create post")
	}

	log.Info("Post created", "post_id", published.ID, "link", published.Link)
	s.record(update, msg, draft, published, text)

	return &Outcome{Draft: draft, Published: published, Media: report}, nil
}

func (s *Service) record(update *messageDomain.Update, msg *messageDomain.Message, draft *postDomain.Draft, published *postDomain.Published, text string) {
	if s.journal == nil {
		return
	}

	entry := &journalDomain.Entry{
		PostID:          published.ID,
		Link:            published.Link,
		Title:           draft.Title,
		Summary:         summarize(text),
		UpdateID:        update.UpdateID,
		ChatID:          msg.Chat.ID,
		MessageID:       msg.MessageID,
		AttachmentCount: len(draft.AttachmentIDs),
		PublishedAt:     s.now(),
	}
	if err := s.journal.SaveEntry(entry); err != nil {
		s.logger.Error("Failed to record published post", "post_id", published.ID, "error", err)
	}
}

func summarize(text string) string {
	const limit = 280
	runes := []rune(strings.TrimSpace(text))
	if len(runes) <= limit {
		return string(runes)
	}
	return string(runes[:limit]) + "…"
}

func updateID(update *messageDomain.Update) int64 {
	if update == nil {
		return 0
	}
	return update.UpdateID
}
