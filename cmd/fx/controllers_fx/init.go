package controllers_fx

import (
	"go.uber.org/fx"

	"bookstore/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewOrderController),
	fx.Provide(controllers.NewProductController),
	fx.Provide(controllers.NewUploadController),
	fx.Provide(controllers.NewDashboardController))
