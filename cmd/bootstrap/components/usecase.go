package components

import (
	"facility-booking/internal/domain/reservation"
	"facility-booking/internal/pkg/clock"
	"facility-booking/internal/pkg/config"
	"facility-booking/internal/usecase/commands"
	"facility-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	reservation.NewFactory,
	NewBookingPolicy,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewReservationCommands,
		commands.NewCatalogCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewReservationQueries,
		queries.NewSpaceQueries,
		queries.NewResourceQueries,
		queries.NewClientQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		commands.NewTokenValidator,
	),
)

func NewBookingPolicy(cfg config.Config) commands.BookingPolicy {
	return commands.BookingPolicy{
		OverlapIgnoresTerminal:    cfg.Booking.OverlapIgnoresTerminal,
		RestoreInventoryOnRelease: cfg.Booking.RestoreInventoryOnRelease,
	}
}
