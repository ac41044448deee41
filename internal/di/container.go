package di

import (
	"context"
	"log/slog"
	"time"

	bridgeService "github.com/reshetovitsme/tg-wp-bridge/internal/modules/bridge/service"
	feedDomain "github.com/reshetovitsme/tg-wp-bridge/internal/modules/feed/domain"
	feedService "github.com/reshetovitsme/tg-wp-bridge/internal/modules/feed/service"
	filterDomain "github.com/reshetovitsme/tg-wp-bridge/internal/modules/filter/domain"
	journalRepo "github.com/reshetovitsme/tg-wp-bridge/internal/modules/journal/repository"
	mediaService "github.com/reshetovitsme/tg-wp-bridge/internal/modules/media/service"
	"github.com/reshetovitsme/tg-wp-bridge/internal/shared/config"
	httpServer "github.com/reshetovitsme/tg-wp-bridge/internal/transport/http"
	"github.com/reshetovitsme/tg-wp-bridge/internal/transport/telegram"
	"github.com/reshetovitsme/tg-wp-bridge/internal/transport/wordpress"
	"github.com/samber/do/v2"
	"github.com/samber/oops"
)

const shutdownTimeout = 10 * time.Second

// Setup initializes the dependency injection container. configFiles are
// passed to config.Load.
func Setup(configFiles ...string) (do.Injector, error) {
	injector := do.New()

	// Register Config
	do.Provide(injector, func(i do.Injector) (*config.Config, error) {
		cfg, err := config.Load(configFiles...)
		if err != nil {
			return nil, oops.With("context", "failed to load config").Wrap(err)
		}
		return cfg, nil
	})

	// Register Telegram Client
	do.Provide(injector, func(i do.Injector) (*telegram.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		client := telegram.NewClient(cfg)
		client.SetLogger(slog.Default().With("component", "telegram"))
		return client, nil
	})

	// Register WordPress Client
	do.Provide(injector, func(i do.Injector) (*wordpress.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		client := wordpress.NewClient(cfg)
		client.SetLogger(slog.Default().With("component", "wordpress"))
		return client, nil
	})

	// Register Journal Repository
	do.Provide(injector, func(i do.Injector) (journalRepo.Repository, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return journalRepo.NewMemoryStorage(cfg.JournalSize), nil
	})

	// Register Media Service
	do.Provide(injector, func(i do.Injector) (*mediaService.Service, error) {
		tg := do.MustInvoke[*telegram.Client](i)
		wp := do.MustInvoke[*wordpress.Client](i)
		svc := mediaService.New(tg, wp)
		svc.SetLogger(slog.Default().With("component", "media"))
		return svc, nil
	})

	// Register Bridge Service
	do.Provide(injector, func(i do.Injector) (*bridgeService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		media := do.MustInvoke[*mediaService.Service](i)
		wp := do.MustInvoke[*wordpress.Client](i)
		journal := do.MustInvoke[journalRepo.Repository](i)

		svc := bridgeService.New(FilterContext(cfg), media, wp, journal)
		svc.SetLogger(slog.Default().With("component", "bridge"))
		return svc, nil
	})

	// Register Feed Service
	do.Provide(injector, func(i do.Injector) (*feedService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		journal := do.MustInvoke[journalRepo.Repository](i)
		return feedService.New(feedDomain.FeedConfig{
			Title:       "Telegram posts mirrored to WordPress",
			Link:        cfg.WPBaseURL,
			Description: "Posts recently published by the bridge",
			Limit:       cfg.JournalSize,
		}, journal), nil
	})

	// Register HTTP Server
	do.Provide(injector, func(i do.Injector) (*httpServer.Server, error) {
		cfg := do.MustInvoke[*config.Config](i)
		bridge := do.MustInvoke[*bridgeService.Service](i)
		tg := do.MustInvoke[*telegram.Client](i)

		var feed httpServer.FeedGenerator
		if cfg.JournalSize > 0 {
			feed = do.MustInvoke[*feedService.Service](i)
		}

		server := httpServer.New(cfg, bridge, tg, feed)
		server.SetLogger(slog.Default())
		return server, nil
	})

	return injector, nil
}

// FilterContext builds the publishing policy from configuration.
func FilterContext(cfg *config.Config) filterDomain.Context {
	return filterDomain.Context{
		AllowedChatTypes: cfg.AllowedChatTypes,
		RequiredHashtag:  cfg.RequiredHashtag,
		HashtagAllowlist: cfg.HashtagAllowlist,
		HashtagBlocklist: cfg.HashtagBlocklist,
	}
}

// Shutdown gracefully shuts down all services
func Shutdown(injector do.Injector) error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Shutdown HTTP server if it was started
	if server, err := do.Invoke[*httpServer.Server](injector); err == nil && server != nil {
		if err := server.Shutdown(ctx); err != nil {
			return oops.With("context", "failed to stop http server").Wrap(err)
		}
	}

	return nil
}
