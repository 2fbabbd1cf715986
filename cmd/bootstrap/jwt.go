package bootstrap

import (
	"time"

	"store-offers-api/internal/pkg/config"
	"store-offers-api/internal/pkg/errs"
	"store-offers-api/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	tokenDuration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		return nil, errs.Wrap(err, "invalid JWT_DURATION")
	}
	leeway, err := time.ParseDuration(cfg.JWT.Leeway)
	if err != nil {
		return nil, errs.Wrap(err, "invalid JWT_LEEWAY")
	}

	opts := []jwt.Option{jwt.WithLeeway(leeway)}
	if cfg.JWT.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.JWT.Issuer))
	}
	return jwt.NewService(cfg.JWT.Secret, tokenDuration, opts...), nil
}
