package bootstrap

import (
	"store-offers-api/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	TracingModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
