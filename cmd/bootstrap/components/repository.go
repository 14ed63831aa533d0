package components

import (
	"eventure/internal/infra/readstore"
	"eventure/internal/infra/writerepo"
	"eventure/internal/usecase"
	"eventure/internal/usecase/commands"
	"eventure/internal/usecase/queries"
	"eventure/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		func(pool *pgxpool.Pool) shared.TxStarter { return pool },
		// Write side
		fx.Annotate(
			writerepo.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			writerepo.NewScooterRepository,
			fx.As(new(commands.ScooterRepository)),
		),
		// Read side
		fx.Annotate(
			readstore.NewScooterReadStore,
			fx.As(new(queries.ScooterReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(usecase.UserRepository)),
		),
	),
)
