package bootstrap

import (
	"facility-booking/internal/pkg/config"
	"facility-booking/internal/pkg/jwt"
	"facility-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		fx.Annotate(
			NewJWTService,
			fx.As(fx.Self()),
			fx.As(new(commands.TokenService)),
		),
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	return jwt.NewServiceFromConfig(cfg.JWT)
}
