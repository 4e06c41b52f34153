package auth_fx

import (
	"go.uber.org/fx"

	"bookstore/internal/config"
	"bookstore/pkg/utils"
)

var Module = fx.Provide(provideTokenManager)

func provideTokenManager(cfg *config.Config) (*utils.TokenManager, error) {
	return utils.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL)
}
