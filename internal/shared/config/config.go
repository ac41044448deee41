package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

type Config struct {
	TelegramBotToken      string        `koanf:"telegram_bot_token"`
	TelegramAPIURL        string        `koanf:"telegram_api_url"`
	TelegramWebhookSecret string        `koanf:"telegram_webhook_secret"`
	PublicBaseURL         string        `koanf:"public_base_url"`
	WPBaseURL             string        `koanf:"wp_base_url"`
	WPUsername            string        `koanf:"wp_username"`
	WPAppPassword         string        `koanf:"wp_app_password"`
	WPCategoryID          int64         `koanf:"wp_category_id"`
	WPPublishStatus       PublishStatus `koanf:"wp_publish_status"`
	RequiredHashtag       string        `koanf:"required_hashtag"`
	AllowedChatTypes      []string      `koanf:"-"`
	HashtagAllowlist      []string      `koanf:"-"`
	HashtagBlocklist      []string      `koanf:"-"`
	HTTPPort              string        `koanf:"http_port"`
	JournalSize           int           `koanf:"journal_size"`
	AppEnv                AppEnv        `koanf:"app_env"`

	// ConfigFile is the file the values were read from, empty when only
	// the environment was used.
	ConfigFile string `koanf:"-"`
}

// DefaultConfigFiles are probed in order when Load is called without paths.
var DefaultConfigFiles = []string{
	"config.yaml",
	"config.yml",
	"config.json",
	"config.toml",
	".env",
}

// Load reads configuration from the first existing file of paths (or
// DefaultConfigFiles when none are given), then lets environment
// variables override it. Credentials are not validated here.
func Load(paths ...string) (*Config, error) {
	k := koanf.New(".")

	explicit := len(paths) > 0
	if !explicit {
		paths = DefaultConfigFiles
	}

	configFile, found := lo.Find(paths, func(file string) bool {
		_, err := os.Stat(file)
		return err == nil
	})
	if explicit && !found {
		return nil, oops.With("config_files", paths).Errorf("config file not found")
	}

	if found {
		parser, err := parserFor(configFile)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(configFile), parser); err != nil {
			return nil, oops.With("config_file", configFile).Wrap(err)
		}
	}

	// Environment variables override config file values
	if err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ToLower(s)
	}), nil); err != nil {
		return nil, oops.With("context", "loading environment variables").Wrap(err)
	}

	if !k.Exists("telegram_api_url") {
		k.Set("telegram_api_url", "https://api.telegram.org")
	}
	if !k.Exists("http_port") {
		k.Set("http_port", "8080")
	}
	if !k.Exists("wp_publish_status") {
		k.Set("wp_publish_status", "publish")
	}
	if !k.Exists("journal_size") {
		k.Set("journal_size", 50)
	}
	if !k.Exists("app_env") {
		k.Set("app_env", "production")
	}
	if !k.Exists("allowed_chat_types") {
		k.Set("allowed_chat_types", "channel")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.With("context", "unmarshaling config").Wrap(err)
	}
	cfg.ConfigFile = configFile

	cfg.AllowedChatTypes = ParseList(k.Get("allowed_chat_types"))
	cfg.HashtagAllowlist = lo.Map(ParseList(k.Get("hashtag_allowlist")), normalizeHashtag)
	cfg.HashtagBlocklist = lo.Map(ParseList(k.Get("hashtag_blocklist")), normalizeHashtag)
	if cfg.RequiredHashtag = strings.TrimSpace(cfg.RequiredHashtag); cfg.RequiredHashtag != "" {
		cfg.RequiredHashtag = normalizeHashtag(cfg.RequiredHashtag, 0)
	}

	cfg.TelegramAPIURL = strings.TrimRight(cfg.TelegramAPIURL, "/")
	cfg.PublicBaseURL = strings.TrimRight(cfg.PublicBaseURL, "/")
	cfg.WPBaseURL = strings.TrimRight(cfg.WPBaseURL, "/")

	if env, err := ParseAppEnv(k.String("app_env")); err == nil {
		cfg.AppEnv = env
	} else {
		cfg.AppEnv = AppEnvProduction
	}

	status, err := ParsePublishStatus(k.String("wp_publish_status"))
	if err != nil {
		return nil, oops.With("wp_publish_status", k.String("wp_publish_status")).Wrap(err)
	}
	cfg.WPPublishStatus = status

	if cfg.JournalSize < 0 {
		cfg.JournalSize = 0
	}

	return &cfg, nil
}

// IsDebug reports whether verbose logging should be on for this environment.
func (c *Config) IsDebug() bool {
	return c.AppEnv == AppEnvLocal || c.AppEnv == AppEnvDevelopment
}

// WebhookURL is the address Telegram should deliver updates to.
func (c *Config) WebhookURL() string {
	return fmt.Sprintf("%s/webhook/%s", c.PublicBaseURL, c.TelegramWebhookSecret)
}

func parserFor(configFile string) (koanf.Parser, error) {
	switch ext := filepath.Ext(configFile); ext {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".env":
		// Same key mapping as the environment provider
		return dotenv.ParserEnv("", ".", strings.ToLower), nil
	default:
		return nil, oops.Errorf("unsupported config file extension: %s", ext)
	}
}

// ParseList accepts either a comma-separated string or a list value and
// returns its trimmed, non-empty string items.
func ParseList(v any) []string {
	var items []string
	switch val := v.(type) {
	case nil:
		return []string{}
	case string:
		items = strings.Split(val, ",")
	case []string:
		items = val
	case []interface{}:
		items = lo.Map(val, func(item interface{}, _ int) string {
			return fmt.Sprint(item)
		})
	default:
		items = []string{fmt.Sprint(val)}
	}

	return lo.FilterMap(items, func(item string, _ int) (string, bool) {
		item = strings.TrimSpace(item)
		return item, item != ""
	})
}

func normalizeHashtag(tag string, _ int) string {
	tag = strings.TrimSpace(tag)
	if !strings.HasPrefix(tag, "#") {
		return "#" + tag
	}
	return tag
}
