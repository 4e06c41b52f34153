package upload_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"bookstore/internal/config"
	"bookstore/internal/services"
)

var Module = fx.Provide(provideUploadService)

func provideUploadService(cfg *config.Config, logger *zap.Logger) (services.UploadServiceInterface, error) {
	return services.NewUploadService(cfg.Upload, logger)
}
