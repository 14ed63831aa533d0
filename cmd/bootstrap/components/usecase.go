package components

import (
	"eventure/internal/pkg/clock"
	"eventure/internal/pkg/config"
	"eventure/internal/usecase"
	"eventure/internal/usecase/commands"
	"eventure/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	usecase.NewAuthUseCase,
	usecase.NewTokenValidator,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewScooterQueries,
		queries.NewBookingQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewScooterCommands,
		NewPaymentCommands,
	),
)

func NewPaymentCommands(
	scooterRepo commands.ScooterRepository,
	gateway commands.PaymentGateway,
	sessions commands.CheckoutSessions,
	cfg config.Config,
) commands.PaymentCommands {
	return commands.NewPaymentCommands(scooterRepo, gateway, sessions, cfg.Payment.SessionTTL)
}
