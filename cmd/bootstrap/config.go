package bootstrap

import (
	"log/slog"

	"facility-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logConfigSummary),
)

// logConfigSummary records the switches that change booking behaviour. Secrets stay out.
func logConfigSummary(cfg config.Config, logger *slog.Logger) {
	logger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"db_host", cfg.DB.Host,
		"db_name", cfg.DB.DBName,
		"tx_max_retries", cfg.DB.TxMaxRetries,
		"cache_enabled", cfg.Cache.Enabled,
		"overlap_ignores_terminal", cfg.Booking.OverlapIgnoresTerminal,
		"restore_inventory_on_release", cfg.Booking.RestoreInventoryOnRelease)
}
