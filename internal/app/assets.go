// Package app wires configuration into the pieces both binaries share.
package app

import (
	"context"
	"os"

	"github.com/youruser/agentcard/internal/cache"
	"github.com/youruser/agentcard/internal/config"
	imagepkg "github.com/youruser/agentcard/internal/image"
	"github.com/youruser/agentcard/internal/logger"
)

// Assets builds the asset source: template files under cfg.Assets.Root and
// remote photos over HTTP, backed by Redis when the cache is enabled. An
// unreachable Redis is logged and skipped. The returned func releases the
// cache connection.
func Assets(ctx context.Context, cfg *config.Config, log logger.Logger) (imagepkg.Source, func()) {
	opts := imagepkg.HTTPOptions{
		Timeout:     cfg.Assets.HTTPTimeout,
		MaxFailures: cfg.Assets.Breaker.MaxFailures,
		OpenTimeout: cfg.Assets.Breaker.Timeout,
		Interval:    cfg.Assets.Breaker.Interval,
	}
	closeFn := func() {}

	if cfg.Cache.Enabled {
		c := cache.NewRedis(cfg.Cache)
		if err := c.Ping(ctx); err != nil {
			log.Warn("asset cache disabled", map[string]interface{}{
				"address": cfg.Cache.Address,
				"error":   err.Error(),
			})
			_ = c.Close()
		} else {
			opts.Cache = c
			closeFn = func() { _ = c.Close() }
			log.Info("asset cache enabled", map[string]interface{}{"address": cfg.Cache.Address})
		}
	}

	return imagepkg.Router{
		Files:  imagepkg.NewFileSource(os.DirFS(cfg.Assets.Root)),
		Remote: imagepkg.NewHTTPSource(opts, log),
	}, closeFn
}
