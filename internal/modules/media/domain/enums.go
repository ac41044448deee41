//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// MediaKind represents the type of an attachment carried by a message
// ENUM(photo,video,animation,document)
type MediaKind string

// ItemState tracks one descriptor through the fetch-and-publish pipeline
// ENUM(pending,url_resolved,downloaded,uploaded,failed)
type ItemState string
