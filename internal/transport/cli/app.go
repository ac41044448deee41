package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot/models"
	"github.com/reshetovitsme/tg-wp-bridge/internal/shared/config"
	"github.com/reshetovitsme/tg-wp-bridge/internal/transport/telegram"
	"github.com/reshetovitsme/tg-wp-bridge/internal/transport/wordpress"
	"github.com/samber/lo"
	"github.com/samber/oops"
	"github.com/urfave/cli/v2"
)

// TelegramAPI is the part of the Telegram client the commands use
type TelegramAPI interface {
	SetWebhook(ctx context.Context) (string, error)
	WebhookInfo(ctx context.Context) (*models.WebhookInfo, error)
}

// WordPressAPI is the part of the WordPress client the commands use
type WordPressAPI interface {
	Ping(ctx context.Context) (*wordpress.SiteInfo, error)
	CurrentUser(ctx context.Context) (*wordpress.UserInfo, error)
	MediaEndpoint() string
	PostsEndpoint() string
}

// Deps lets callers replace configuration loading and the API clients.
type Deps struct {
	LoadConfig     func(paths ...string) (*config.Config, error)
	NewTelegram    func(cfg *config.Config) TelegramAPI
	NewWordPress   func(cfg *config.Config) WordPressAPI
	ConfigureDebug func(w io.Writer)
}

// DefaultDeps wires the real clients.
func DefaultDeps() Deps {
	return Deps{
		LoadConfig: config.Load,
		NewTelegram: func(cfg *config.Config) TelegramAPI {
			return telegram.NewClient(cfg)
		},
		NewWordPress: func(cfg *config.Config) WordPressAPI {
			return wordpress.NewClient(cfg)
		},
		ConfigureDebug: func(w io.Writer) {
			slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})))
		},
	}
}

type runner struct {
	deps Deps
	cfg  *config.Config
	tg   TelegramAPI
	wp   WordPressAPI
}

// NewApp builds the bridgectl command tree.
func NewApp(deps Deps) *cli.App {
	r := &runner{deps: deps}

	return &cli.App{
		Name:  "bridgectl",
		Usage: "Telegram-WordPress bridge management tool",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config-file",
				Usage: "path to a yaml, json or toml configuration file",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Before: r.before,
		Commands: []*cli.Command{
			{
				Name:   "status",
				Usage:  "display bridge configuration and webhook status",
				Action: r.status,
			},
			{
				Name:  "webhook-info",
				Usage: "display current Telegram webhook information",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format", Value: "table", Usage: "output format: json or table"},
				},
				Action: r.webhookInfo,
			},
			{
				Name:  "set-webhook",
				Usage: "configure the Telegram webhook for this bridge",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "dry-run", Usage: "show the URL without setting it"},
				},
				Action: r.setWebhook,
			},
			{
				Name:   "wp-info",
				Usage:  "display WordPress API configuration",
				Action: r.wpInfo,
			},
			{
				Name:   "wp-check",
				Usage:  "verify WordPress reachability and credentials",
				Action: r.wpCheck,
			},
			{
				Name:  "startup-check",
				Usage: "run startup diagnostics",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "auto-fix-webhook", Value: true, Usage: "configure the webhook if it is not set"},
				},
				Action: r.startupCheck,
			},
		},
	}
}

func (r *runner) before(c *cli.Context) error {
	if c.Bool("debug") && r.deps.ConfigureDebug != nil {
		r.deps.ConfigureDebug(c.App.ErrWriter)
		slog.Debug("Debug mode enabled")
	}

	var paths []string
	if file := c.String("config-file"); file != "" {
		paths = append(paths, file)
	}

	cfg, err := r.deps.LoadConfig(paths...)
	if err != nil {
		return oops.With("config_file", c.String("config-file")).Wrapf(err, "failed to load configuration")
	}

	slog.Debug("Configuration loaded",
		"telegram_bot_token", mask(cfg.TelegramBotToken),
		"public_base_url", cfg.PublicBaseURL,
		"telegram_webhook_secret", mask(cfg.TelegramWebhookSecret),
	)

	r.cfg = cfg
	r.tg = r.deps.NewTelegram(cfg)
	r.wp = r.deps.NewWordPress(cfg)
	return nil
}

func (r *runner) status(c *cli.Context) error {
	out := c.App.Writer
	cfg := r.cfg

	fmt.Fprintln(out, "Telegram-WordPress Bridge Status:")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Configuration:")
	fmt.Fprintf(out, "  Bot token configured: %s\n", mark(cfg.TelegramBotToken != ""))
	fmt.Fprintf(out, "  Public base URL: %s\n", orDefault(cfg.PublicBaseURL, "Not configured"))
	fmt.Fprintf(out, "  Webhook secret configured: %s\n", mark(cfg.TelegramWebhookSecret != ""))
	fmt.Fprintf(out, "  Required hashtag: %s\n", orDefault(cfg.RequiredHashtag, "None"))
	fmt.Fprintf(out, "  Allowed chat types: %s\n", orDefault(strings.Join(cfg.AllowedChatTypes, ", "), "Any"))
	fmt.Fprintf(out, "  Hashtag allowlist: %s\n", orDefault(strings.Join(cfg.HashtagAllowlist, ", "), "None"))
	fmt.Fprintf(out, "  Hashtag blocklist: %s\n", orDefault(strings.Join(cfg.HashtagBlocklist, ", "), "None"))
	fmt.Fprintf(out, "  WordPress base URL: %s\n", orDefault(cfg.WPBaseURL, "Not configured"))
	fmt.Fprintf(out, "  WordPress username: %s\n", orDefault(cfg.WPUsername, "Not configured"))
	fmt.Fprintf(out, "  WordPress password configured: %s\n", mark(cfg.WPAppPassword != ""))
	fmt.Fprintf(out, "  WordPress category ID: %d\n", cfg.WPCategoryID)
	fmt.Fprintf(out, "  WordPress publish status: %s\n", cfg.WPPublishStatus)

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Webhook Status:")

	info, err := r.tg.WebhookInfo(c.Context)
	if err != nil {
		slog.Error("Error checking webhook status", "error", err)
		fmt.Fprintf(out, "  Error checking status: %v\n", err)
		return nil
	}

	fmt.Fprintf(out, "  Configured URL: %s\n", orDefault(info.URL, "Not set"))
	switch {
	case info.URL == "":
		fmt.Fprintln(out, "  Status: ✗ Not configured")
	case info.LastErrorMessage != "":
		fmt.Fprintln(out, "  Status: ⚠ Active with errors")
	default:
		fmt.Fprintln(out, "  Status: ✓ Active")
	}
	if info.LastErrorMessage != "" {
		fmt.Fprintf(out, "  Last error: %s\n", info.LastErrorMessage)
		slog.Warn("Webhook last error", "message", info.LastErrorMessage)
	}

	return nil
}

func (r *runner) webhookInfo(c *cli.Context) error {
	format := c.String("format")
	if format != "json" && format != "table" {
		return oops.With("format", format).Errorf("unsupported format %q, use json or table", format)
	}

	info, err := r.tg.WebhookInfo(c.Context)
	if err != nil {
		fmt.Fprintf(c.App.ErrWriter, "Error getting webhook info: %v\n", err)
		return oops.Wrapf(err, "failed to get webhook info")
	}

	out := c.App.Writer
	if format == "json" {
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return oops.Wrap(err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	lastError := "None"
	if info.LastErrorDate != 0 {
		lastError = fmt.Sprint(info.LastErrorDate)
	}

	fmt.Fprintln(out, "Telegram Webhook Information:")
	fmt.Fprintf(out, "  URL: %s\n", orDefault(info.URL, "Not set"))
	fmt.Fprintf(out, "  Custom certificate: %t\n", info.HasCustomCertificate)
	fmt.Fprintf(out, "  Pending updates: %d\n", info.PendingUpdateCount)
	fmt.Fprintf(out, "  Last error date: %s\n", lastError)
	fmt.Fprintf(out, "  Last error message: %s\n", orDefault(info.LastErrorMessage, "None"))
	fmt.Fprintf(out, "  IP address: %s\n", orDefault(info.IPAddress, "Not set"))
	return nil
}

func (r *runner) setWebhook(c *cli.Context) error {
	out := c.App.Writer
	webhookURL := r.cfg.WebhookURL()

	if c.Bool("dry-run") {
		fmt.Fprintf(out, "Would set webhook to: %s\n", webhookURL)
		return nil
	}

	fmt.Fprintf(out, "Setting webhook to: %s\n", webhookURL)
	if _, err := r.tg.SetWebhook(c.Context); err != nil {
		fmt.Fprintln(c.App.ErrWriter, "✗ Failed to configure webhook")
		fmt.Fprintf(c.App.ErrWriter, "  Error: %v\n", err)
		return oops.Wrapf(err, "failed to set webhook")
	}

	fmt.Fprintln(out, "✓ Webhook configured successfully")
	fmt.Fprintf(out, "  URL: %s\n", webhookURL)
	return nil
}

func (r *runner) wpInfo(c *cli.Context) error {
	out := c.App.Writer
	cfg := r.cfg

	fmt.Fprintln(out, "WordPress API configuration:")
	fmt.Fprintf(out, "  Base URL: %s\n", orDefault(cfg.WPBaseURL, "Not configured"))
	fmt.Fprintf(out, "  Username: %s\n", orDefault(cfg.WPUsername, "Not configured"))
	fmt.Fprintf(out, "  Category ID: %d\n", cfg.WPCategoryID)
	fmt.Fprintf(out, "  Publish status: %s\n", cfg.WPPublishStatus)
	fmt.Fprintf(out, "  Media endpoint: %s\n", orDefault(r.wp.MediaEndpoint(), "N/A"))
	fmt.Fprintf(out, "  Posts endpoint: %s\n", orDefault(r.wp.PostsEndpoint(), "N/A"))
	return nil
}

func (r *runner) wpCheck(c *cli.Context) error {
	out, errOut := c.App.Writer, c.App.ErrWriter
	var failures []string

	if site, err := r.wp.Ping(c.Context); err != nil {
		failures = append(failures, err.Error())
		fmt.Fprintf(errOut, "✗ WordPress ping failed: %v\n", err)
	} else {
		fmt.Fprintln(out, "✓ WordPress reachable")
		fmt.Fprintf(out, "  Name: %s\n", orDefault(site.Name, "Unknown"))
	}

	if user, err := r.wp.CurrentUser(c.Context); err != nil {
		failures = append(failures, err.Error())
		fmt.Fprintf(errOut, "✗ WordPress credential check failed: %v\n", err)
	} else {
		fmt.Fprintln(out, "✓ WordPress credentials valid")
		fmt.Fprintf(out, "  Auth user: %s (id=%d)\n", orDefault(user.Name, "unknown"), user.ID)
	}

	if len(failures) > 0 {
		return oops.Errorf("WordPress check failed: %s", strings.Join(failures, "; "))
	}
	return nil
}

type checkResult struct {
	name string
	ok   bool
	err  string
}

func (r *runner) startupCheck(c *cli.Context) error {
	out, errOut := c.App.Writer, c.App.ErrWriter
	ctx := c.Context

	fmt.Fprintln(out, "Running startup checks...")

	token := checkResult{name: "Bot token configured", ok: r.cfg.TelegramBotToken != ""}
	fmt.Fprintf(out, "Bot token configured: %s\n", mark(token.ok))

	webhook := checkResult{name: "Webhook configured"}
	if !token.ok {
		webhook.err = "Bot token missing"
	} else if info, err := r.tg.WebhookInfo(ctx); err != nil {
		webhook.err = err.Error()
		fmt.Fprintf(errOut, "Webhook check failed: %v\n", err)
	} else if info.URL != "" {
		webhook.ok = true
		fmt.Fprintf(out, "Webhook configured: ✓ (%s)\n", info.URL)
	} else {
		fmt.Fprintln(out, "Webhook configured: ✗")
		if c.Bool("auto-fix-webhook") {
			webhook.ok, webhook.err = r.fixWebhook(ctx, out, errOut)
		}
	}

	reachable := checkResult{name: "WordPress reachable"}
	if site, err := r.wp.Ping(ctx); err != nil {
		reachable.err = err.Error()
		fmt.Fprintf(errOut, "WordPress reachable: ✗ (%v)\n", err)
	} else {
		reachable.ok = true
		fmt.Fprintf(out, "WordPress reachable: ✓ (%s)\n", orDefault(site.Name, "Unknown"))
	}

	creds := checkResult{name: "WordPress credentials"}
	if reachable.ok {
		if user, err := r.wp.CurrentUser(ctx); err != nil {
			creds.err = err.Error()
			fmt.Fprintf(errOut, "WordPress credentials: ✗ (%v)\n", err)
		} else {
			creds.ok = true
			fmt.Fprintf(out, "WordPress credentials: ✓ (user=%s id=%d)\n", orDefault(user.Name, "unknown"), user.ID)
		}
	}

	checks := []checkResult{token, webhook, reachable, creds}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Startup summary:")
	for _, check := range checks {
		fmt.Fprintf(out, "  %s: %s\n", check.name, mark(check.ok))
		if !check.ok && check.err != "" {
			fmt.Fprintf(out, "  %s error: %s\n", check.name, check.err)
		}
	}

	if !lo.EveryBy(checks, func(check checkResult) bool { return check.ok }) {
		return oops.Errorf("startup check reported failures")
	}
	return nil
}

func (r *runner) fixWebhook(ctx context.Context, out, errOut io.Writer) (bool, string) {
	fmt.Fprintln(out, "Attempting to configure webhook...")

	if _, err := r.tg.SetWebhook(ctx); err != nil {
		fmt.Fprintf(errOut, "Webhook configuration failed: %v\n", err)
		return false, err.Error()
	}

	refreshed, err := r.tg.WebhookInfo(ctx)
	if err != nil {
		fmt.Fprintf(errOut, "Webhook check failed: %v\n", err)
		return false, err.Error()
	}

	fmt.Fprintf(out, "Webhook configured successfully at %s\n", orDefault(refreshed.URL, "unknown URL"))
	return refreshed.URL != "", ""
}

func mark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}

func mask(secret string) string {
	if secret == "" {
		return "None"
	}
	return "********"
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
