package bootstrap

import (
	"time"

	"hotel-platform/internal/handler/middleware"
	"hotel-platform/internal/pkg/config"
	"hotel-platform/internal/pkg/jwt"
	"hotel-platform/internal/usecase/commands"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
		func(s *jwt.Service) commands.TokenIssuer { return s },
		func(s *jwt.Service) middleware.TokenValidator { return s },
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	if err := cfg.JWT.Validate(); err != nil {
		return nil, err
	}
	// Validate already parsed it once.
	duration, _ := time.ParseDuration(cfg.JWT.Duration)
	return jwt.NewService(cfg.JWT.Secret, duration), nil
}
