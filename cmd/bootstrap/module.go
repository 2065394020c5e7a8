package bootstrap

import (
	"slotbook/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	RedisModule,
	IdentityModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
