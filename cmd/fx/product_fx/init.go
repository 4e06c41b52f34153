package product_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"bookstore/internal/repositories"
	"bookstore/internal/services"
)

var Module = fx.Provide(
	provideProductRepo, provideProductService)

func provideProductRepo(db *gorm.DB) repositories.ProductRepository {
	return repositories.NewProductRepository(db)
}

func provideProductService(productRepo repositories.ProductRepository) services.ProductServiceInterface {
	return services.NewProductService(productRepo)
}
