package bootstrap

import (
	"context"
	"log/slog"

	"store-offers-api/internal/pkg/config"
	"store-offers-api/internal/pkg/tracing"

	"go.uber.org/fx"
)

var TracingModule = fx.Module("tracing",
	fx.Provide(
		NewTracer,
	),
)

func NewTracer(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*tracing.Tracer, error) {
	tracer, err := tracing.InitTracing(cfg.Tracing)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if err := tracer.Shutdown(ctx); err != nil {
				logger.Warn("failed to flush traces", "error", err)
			}
			return nil
		},
	})

	return tracer, nil
}
