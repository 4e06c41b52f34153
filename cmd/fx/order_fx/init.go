package order_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"bookstore/internal/config"
	"bookstore/internal/repositories"
	"bookstore/internal/services"
)

var Module = fx.Provide(
	provideOrderRepo, provideOrderService)

func provideOrderRepo(db *gorm.DB) repositories.OrderRepository {
	return repositories.NewOrderRepository(db)
}

func provideOrderService(orderRepo repositories.OrderRepository, cfg *config.Config, logger *zap.Logger) services.OrderServiceInterface {
	return services.NewOrderService(orderRepo, cfg.Orders.StrictTotal, logger)
}
