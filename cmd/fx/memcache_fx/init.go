package memcache_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	mem "bookstore/pkg/memcache"
)

const purgeInterval = 10 * time.Minute

var Module = fx.Provide(provideRevokedTokens)

// provideRevokedTokens also runs a janitor that drops expired entries for
// the lifetime of the app.
func provideRevokedTokens(lc fx.Lifecycle, logger *zap.Logger) mem.RevokedTokenStore {
	store := mem.NewRevokedTokens()
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				ticker := time.NewTicker(purgeInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						if n := store.Purge(); n > 0 {
							logger.Debug("purged revoked tokens", zap.Int("count", n))
						}
					case <-done:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(done)
			return nil
		},
	})
	return store
}
