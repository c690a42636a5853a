package bootstrap

import (
	"context"
	"log/slog"

	"facility-booking/internal/infra/db"
	"facility-booking/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB connects eagerly so a bad DSN fails the app before the server starts.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	logger.Info("database connected",
		"host", cfg.DB.Host,
		"database", cfg.DB.DBName,
		"max_conns", pool.Config().MaxConns)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			stat := pool.Stat()
			logger.Info("database pool stats",
				"acquired", stat.AcquiredConns(),
				"idle", stat.IdleConns(),
				"total_acquires", stat.AcquireCount())
			cleanup()
			return nil
		},
	})

	return pool, nil
}
