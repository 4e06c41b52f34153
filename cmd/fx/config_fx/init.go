package config_fx

import (
	"go.uber.org/fx"

	"bookstore/internal/config"
)

var Module = fx.Provide(config.Load)
