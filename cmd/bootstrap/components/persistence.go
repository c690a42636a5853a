package components

import (
	"facility-booking/internal/infra/readstore"
	sqlc "facility-booking/internal/infra/sqlc/generated"
	"facility-booking/internal/infra/uow"
	"facility-booking/internal/pkg/config"
	"facility-booking/internal/usecase/queries"
	"facility-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
	NewUnitOfWork,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Catalog
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CatalogViewQueries)),
		),
		fx.Annotate(
			readstore.NewSpaceReadStore,
			fx.As(new(queries.SpaceReadStore)),
		),
		fx.Annotate(
			readstore.NewResourceReadStore,
			fx.As(new(queries.ResourceReadStore)),
		),
		fx.Annotate(
			readstore.NewClientReadStore,
			fx.As(new(queries.ClientReadStore)),
		),
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationViewQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

// NewUnitOfWork builds repositories per transaction, so none are provided here.
func NewUnitOfWork(pool *pgxpool.Pool, q *sqlc.Queries, cfg config.Config) shared.UnitOfWork {
	return uow.NewPostgresUoW(pool, q, uow.RetryPolicy{
		MaxRetries: cfg.DB.TxMaxRetries,
		BaseDelay:  cfg.DB.TxRetryBaseDelay,
	})
}
