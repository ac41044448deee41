package telegram

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/reshetovitsme/tg-wp-bridge/internal/shared/config"
	sharedErrors "github.com/reshetovitsme/tg-wp-bridge/internal/shared/errors"
	"github.com/samber/oops"
)

const (
	apiTimeout      = 10 * time.Second
	downloadTimeout = 30 * time.Second
)

// Client talks to the Telegram Bot API. The bot is created on first use
// so the server can start before credentials are configured.
type Client struct {
	cfg      *config.Config
	http     *resty.Client
	apiHTTP  *http.Client
	logger   *slog.Logger
	mu       sync.Mutex
	instance *bot.Bot
}

// NewClient creates a new Telegram client
func NewClient(cfg *config.Config) *Client {
	return &Client{
		cfg:     cfg,
		http:    resty.New().SetTimeout(downloadTimeout),
		apiHTTP: &http.Client{Timeout: apiTimeout},
		logger:  slog.Default(),
	}
}

// SetLogger sets the logger
func (c *Client) SetLogger(logger *slog.Logger) {
	c.logger = logger
}

// Bot returns the underlying bot, creating it if needed.
func (c *Client) Bot() (*bot.Bot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.instance != nil {
		return c.instance, nil
	}
	if c.cfg.TelegramBotToken == "" {
		return nil, sharedErrors.ErrMissingBotToken
	}

	b, err := bot.New(c.cfg.TelegramBotToken,
		bot.WithSkipGetMe(),
		bot.WithServerURL(c.cfg.TelegramAPIURL),
		bot.WithHTTPClient(apiTimeout, c.apiHTTP),
	)
	if err != nil {
		return nil, oops.With("context", "failed to create telegram bot").Wrap(err)
	}

	c.instance = b
	return b, nil
}

// ResolveFetchURL returns a temporary download URL for a file id. It
// returns "" with a nil error when Telegram reports the file unknown.
func (c *Client) ResolveFetchURL(ctx context.Context, fileID string) (string, error) {
	b, err := c.Bot()
	if err != nil {
		return "", err
	}

	f, err := b.GetFile(ctx, &bot.GetFileParams{FileID: fileID})
	if err != nil {
		if errors.Is(err, bot.ErrorBadRequest) || errors.Is(err, bot.ErrorNotFound) {
			c.logger.Warn("getFile failed", "file_id", fileID, "error", err)
			return "", nil
		}
		return "", oops.With("file_id", fileID, "context", "getFile request failed").Wrap(err)
	}
	if f == nil || f.FilePath == "" {
		c.logger.Warn("getFile returned no file path", "file_id", fileID)
		return "", nil
	}

	return b.FileDownloadLink(f), nil
}

// Download fetches a file from a URL produced by ResolveFetchURL. The URL
// embeds the bot token and is never logged.
func (c *Client) Download(ctx context.Context, fileURL string) ([]byte, error) {
	resp, err := c.http.R().SetContext(ctx).Get(fileURL)
	if err != nil {
		return nil, oops.With("context", "file download failed").Wrap(redact(err))
	}
	if resp.IsError() {
		return nil, oops.With("status", resp.StatusCode()).Errorf("file download failed with status %d", resp.StatusCode())
	}
	return resp.Body(), nil
}

// SetWebhook points Telegram at this service and returns the URL used.
func (c *Client) SetWebhook(ctx context.Context) (string, error) {
	b, err := c.Bot()
	if err != nil {
		return "", err
	}
	if c.cfg.PublicBaseURL == "" {
		return "", sharedErrors.ErrMissingPublicBaseURL
	}
	if c.cfg.TelegramWebhookSecret == "" {
		return "", sharedErrors.ErrMissingWebhookSecret
	}

	webhookURL := c.cfg.WebhookURL()
	c.logger.Info("Setting Telegram webhook", "public_base_url", c.cfg.PublicBaseURL)

	ok, err := b.SetWebhook(ctx, &bot.SetWebhookParams{URL: webhookURL})
	if err != nil {
		return "", oops.With("context", "setWebhook request failed").Wrap(err)
	}
	if !ok {
		return "", sharedErrors.ErrWebhookNotConfigured
	}

	return webhookURL, nil
}

// WebhookInfo returns the current webhook status.
func (c *Client) WebhookInfo(ctx context.Context) (*models.WebhookInfo, error) {
	b, err := c.Bot()
	if err != nil {
		return nil, err
	}

	info, err := b.GetWebhookInfo(ctx)
	if err != nil {
		return nil, oops.With("context", "getWebhookInfo request failed").Wrap(err)
	}
	return info, nil
}

// redact drops the request URL from transport errors.
func redact(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}
