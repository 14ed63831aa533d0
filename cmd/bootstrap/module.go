package bootstrap

import (
	"eventure/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	RedisModule,
	JWTModule,
	PaymentModule,
	ReconcilerModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
