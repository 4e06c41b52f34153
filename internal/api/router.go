package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"bookstore/internal/api/controllers"
	"bookstore/internal/config"
	mem "bookstore/pkg/memcache"
	"bookstore/pkg/middleware"
	"bookstore/pkg/utils"
)

type RouterParams struct {
	fx.In

	Config  *config.Config
	Logger  *zap.Logger
	Tokens  *utils.TokenManager
	Revoked mem.RevokedTokenStore

	Accounts  *controllers.AccountController
	Orders    *controllers.OrderController
	Products  *controllers.ProductController
	Uploads   *controllers.UploadController
	Dashboard *controllers.DashboardController
}

func NewRouter(p RouterParams) *gin.Engine {
	if !p.Config.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	utils.RegisterValidators()

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(p.Logger))
	r.Use(middleware.Recovery(p.Logger))
	r.Use(middleware.CORSMiddleware(p.Config.CORS.AllowedOrigins))

	RegisterRoutes(r, p)
	return r
}

func RegisterRoutes(r *gin.Engine, p RouterParams) {
	auth := middleware.JWTAuthMiddleware(p.Tokens)
	admin := middleware.RoleMiddleware(utils.RoleAdmin, p.Revoked)

	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "Welcome") })
	r.Static("/uploads", p.Config.Upload.Dir)

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/register", p.Accounts.Register)
	authGroup.POST("/login", p.Accounts.Login)
	authGroup.POST("/logout", auth, p.Accounts.Logout)

	orders := api.Group("/orders", auth)
	orders.GET("", p.Orders.GetOwnOrders)
	orders.POST("", p.Orders.CreateOrder)
	orders.GET("/admin", admin, p.Orders.GetAllOrders)
	orders.DELETE("/:id", admin, p.Orders.CancelOrder)

	users := api.Group("/users", auth, admin)
	users.GET("", p.Accounts.GetAllAccounts)
	users.PUT("/:id", p.Accounts.UpdateAccount)
	users.DELETE("/:id", p.Accounts.DeleteAccount)

	products := api.Group("/products")
	products.GET("", p.Products.GetAllProducts)
	products.GET("/:id", p.Products.GetProduct)

	dashboard := api.Group("/dashboard")
	dashboard.GET("/products", p.Products.GetAllProducts)
	dashboard.GET("/products/:id", p.Products.GetProduct)
	dashboard.POST("/products", auth, admin, p.Products.CreateProduct)
	dashboard.PUT("/products/:id", auth, admin, p.Products.UpdateProduct)
	dashboard.DELETE("/products/:id", auth, admin, p.Products.DeleteProduct)
	dashboard.POST("/uploads/book-cover", auth, admin, p.Uploads.UploadBookCover)

	api.GET("/admin/dashboard", auth, admin, p.Dashboard.GetDashboard)
}
