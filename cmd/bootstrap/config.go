package bootstrap

import (
	"beads-store/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.ShippingConfig {
			return cfg.Shipping
		},
	),
)
