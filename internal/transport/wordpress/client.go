package wordpress

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	mediaDomain "github.com/reshetovitsme/tg-wp-bridge/internal/modules/media/domain"
	"github.com/reshetovitsme/tg-wp-bridge/internal/modules/message/parser"
	postDomain "github.com/reshetovitsme/tg-wp-bridge/internal/modules/post/domain"
	"github.com/reshetovitsme/tg-wp-bridge/internal/shared/config"
	sharedErrors "github.com/reshetovitsme/tg-wp-bridge/internal/shared/errors"
	"github.com/samber/oops"
)

const (
	uploadTimeout = 60 * time.Second
	postTimeout   = 30 * time.Second
	checkTimeout  = 10 * time.Second
)

// SiteInfo is the subset of the REST API index the bridge shows
type SiteInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// UserInfo is the authenticated user as reported by /users/me
type UserInfo struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type postPayload struct {
	Title         string  `json:"title"`
	Content       string  `json:"content"`
	Status        string  `json:"status"`
	Categories    []int64 `json:"categories,omitempty"`
	FeaturedMedia int64   `json:"featured_media,omitempty"`
}

// Client talks to the WordPress REST API using an application password
type Client struct {
	cfg    *config.Config
	http   *resty.Client
	logger *slog.Logger
}

// NewClient creates a new WordPress client
func NewClient(cfg *config.Config) *Client {
	return &Client{
		cfg:    cfg,
		http:   resty.New().SetHeader("Accept", "application/json"),
		logger: slog.Default(),
	}
}

// SetLogger sets the logger
func (c *Client) SetLogger(logger *slog.Logger) {
	c.logger = logger
}

// MediaEndpoint is the media collection URL, empty when unconfigured.
func (c *Client) MediaEndpoint() string {
	return c.endpoint("/wp-json/wp/v2/media")
}

// PostsEndpoint is the posts collection URL, empty when unconfigured.
func (c *Client) PostsEndpoint() string {
	return c.endpoint("/wp-json/wp/v2/posts")
}

func (c *Client) endpoint(path string) string {
	if c.cfg.WPBaseURL == "" {
		return ""
	}
	return strings.TrimRight(c.cfg.WPBaseURL, "/") + path
}

func (c *Client) request(ctx context.Context, authenticated bool) (*resty.Request, error) {
	if c.cfg.WPBaseURL == "" {
		return nil, sharedErrors.ErrMissingWordPressURL
	}
	req := c.http.R().SetContext(ctx)
	if !authenticated {
		return req, nil
	}
	if c.cfg.WPUsername == "" || c.cfg.WPAppPassword == "" {
		return nil, sharedErrors.ErrMissingWordPressAuth
	}
	return req.SetBasicAuth(c.cfg.WPUsername, c.cfg.WPAppPassword), nil
}

// UploadMedia stores a file in the media library. Any failure is logged
// and reported as ok=false.
func (c *Client) UploadMedia(ctx context.Context, filename, contentType string, data []byte) (mediaDomain.Attachment, bool) {
	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	req, err := c.request(ctx, true)
	if err != nil {
		c.logger.Error("Failed to upload media to WordPress", "filename", filename, "error", err)
		return mediaDomain.Attachment{}, false
	}

	var media mediaDomain.Attachment
	resp, err := req.
		SetHeader("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, strings.ReplaceAll(filename, `"`, ""))).
		SetHeader("Content-Type", contentType).
		SetBody(data).
		SetResult(&media).
		Post(c.MediaEndpoint())
	if err != nil {
		c.logger.Error("Failed to upload media to WordPress", "filename", filename, "error", err)
		return mediaDomain.Attachment{}, false
	}
	if resp.IsError() {
		c.logger.Error("Failed to upload media to WordPress",
			"filename", filename,
			"status", resp.StatusCode(),
			"body", truncate(resp.String(), 500),
		)
		return mediaDomain.Attachment{}, false
	}
	if media.ID == 0 {
		c.logger.Error("WordPress media response has no id", "filename", filename)
		return mediaDomain.Attachment{}, false
	}

	c.logger.Info("Uploaded media to WordPress", "media_id", media.ID, "filename", filename)
	return media, true
}

// CreatePost creates a post. The first attachment becomes the featured
// media.
func (c *Client) CreatePost(ctx context.Context, draft *postDomain.Draft) (*postDomain.Published, error) {
	ctx, cancel := context.WithTimeout(ctx, postTimeout)
	defer cancel()

	req, err := c.request(ctx, true)
	if err != nil {
		return nil, err
	}

	payload := postPayload{
		Title:   draft.Title,
		Content: draft.ContentHTML,
		Status:  c.cfg.WPPublishStatus.String(),
	}
	if payload.Title == "" {
		payload.Title = parser.NoTitle
	}
	if payload.Status == "" {
		payload.Status = config.PublishStatusPublish.String()
	}
	if c.cfg.WPCategoryID != 0 {
		payload.Categories = []int64{c.cfg.WPCategoryID}
	}
	if len(draft.AttachmentIDs) > 0 {
		payload.FeaturedMedia = draft.AttachmentIDs[0]
	}

	var post postDomain.Published
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		SetResult(&post).
		Post(c.PostsEndpoint())
	if err != nil {
		return nil, oops.With("context", "post request failed").Wrap(err)
	}
	if resp.IsError() {
		c.logger.Error("Failed creating WordPress post", "status", resp.StatusCode(), "body", truncate(resp.String(), 500))
		return nil, oops.
			With("status", resp.StatusCode()).
			Errorf("wordpress rejected post: status %d", resp.StatusCode())
	}

	c.logger.Info("Created WordPress post", "post_id", post.ID)
	return &post, nil
}

// Ping fetches the REST API index without credentials.
func (c *Client) Ping(ctx context.Context) (*SiteInfo, error) {
	var info SiteInfo
	if err := c.get(ctx, false, "/wp-json", &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// CurrentUser verifies the credentials by fetching the authenticated user.
func (c *Client) CurrentUser(ctx context.Context) (*UserInfo, error) {
	var user UserInfo
	if err := c.get(ctx, true, "/wp-json/wp/v2/users/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) get(ctx context.Context, authenticated bool, path string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	req, err := c.request(ctx, authenticated)
	if err != nil {
		return err
	}

	resp, err := req.SetResult(out).Get(c.endpoint(path))
	if err != nil {
		return oops.With("path", path).Wrap(err)
	}
	if resp.IsError() {
		return oops.
			With("path", path, "status", resp.StatusCode()).
			Errorf("wordpress returned status %d for %s", resp.StatusCode(), path)
	}
	return nil
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
