package repository

import (
	"github.com/reshetovitsme/tg-wp-bridge/internal/modules/journal/domain"
)

// Repository keeps the posts created by this process
type Repository interface {
	SaveEntry(entry *domain.Entry) error
	GetRecentEntries(limit int) ([]*domain.Entry, error)
}
