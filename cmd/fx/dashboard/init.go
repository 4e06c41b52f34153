package dashboard

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"bookstore/internal/repositories"
	"bookstore/internal/services"
)

var Module = fx.Provide(
	provideDashboardRepo, provideDashboardService,
)

func provideDashboardRepo(db *gorm.DB) repositories.DashboardRepository {
	return repositories.NewDashboardRepository(db)
}

func provideDashboardService(dashboardRepo repositories.DashboardRepository, orderRepo repositories.OrderRepository) services.DashboardService {
	return services.NewDashboardService(dashboardRepo, orderRepo)
}
