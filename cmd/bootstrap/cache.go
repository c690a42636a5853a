package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"facility-booking/internal/infra/cache"
	"facility-booking/internal/pkg/config"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewReservationViewCache,
	),
)

// NewReservationViewCache falls back to a no-op cache when CACHE_ENABLED is off.
func NewReservationViewCache(lc fx.Lifecycle, cfg config.Config) (queries.ReservationViewCache, error) {
	if !cfg.Cache.Enabled {
		return queries.NopReservationViewCache{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.Addr,
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errs.Wrap(err, "failed to ping redis at "+cfg.Cache.Addr)
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			slog.Info("closing redis client", "addr", cfg.Cache.Addr)
			return client.Close()
		},
	})

	return cache.NewReservationViewCache(client, cfg.Cache.TTL), nil
}
