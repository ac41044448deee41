package service

import (
	"fmt"
	"time"

	"github.com/gorilla/feeds"
	"github.com/reshetovitsme/tg-wp-bridge/internal/modules/feed/domain"
	journalDomain "github.com/reshetovitsme/tg-wp-bridge/internal/modules/journal/domain"
	journalRepo "github.com/reshetovitsme/tg-wp-bridge/internal/modules/journal/repository"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// Service handles RSS feed generation
type Service struct {
	cfg         domain.FeedConfig
	journalRepo journalRepo.Repository
	now         func() time.Time
}

// New creates a new feed service
func New(cfg domain.FeedConfig, journalRepo journalRepo.Repository) *Service {
	return &Service{
		cfg:         cfg,
		journalRepo: journalRepo,
		now:         time.Now,
	}
}

// GenerateFeed builds a feed of the posts mirrored since startup. baseURL
// is where the feed itself is served from.
func (s *Service) GenerateFeed(baseURL string) (*feeds.Feed, error) {
	entries, err := s.journalRepo.GetRecentEntries(s.cfg.Limit)
	if err != nil {
		return nil, oops.With("context", "failed to get journal entries").Wrap(err)
	}

	link := s.cfg.Link
	if link == "" {
		link = baseURL
	}

	updated := s.now()
	if len(entries) > 0 {
		updated = entries[0].PublishedAt
	}

	feed := &feeds.Feed{
		Title:       s.cfg.Title,
		Link:        &feeds.Link{Href: link},
		Description: s.cfg.Description,
		Updated:     updated,
		Items: lo.Map(entries, func(e *journalDomain.Entry, _ int) *feeds.Item {
			return entryToFeedItem(e)
		}),
	}

	return feed, nil
}

func entryToFeedItem(e *journalDomain.Entry) *feeds.Item {
	return &feeds.Item{
		Title:       e.Title,
		Link:        &feeds.Link{Href: e.Link},
		Description: e.Summary,
		Created:     e.PublishedAt,
		Id:          fmt.Sprintf("wp-post-%d", e.PostID),
	}
}
