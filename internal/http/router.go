package http

import (
	"log/slog"

	"avagostar-product-api/internal/config"
	"avagostar-product-api/internal/http/handlers"
	"avagostar-product-api/internal/http/middleware"
	"avagostar-product-api/internal/models"
	"avagostar-product-api/internal/repo"
	"avagostar-product-api/internal/services"
	"github.com/gin-gonic/gin"
)

type Dependencies struct {
	Config         *config.Config
	UserStore      repo.UserStore
	TokenService   *services.TokenService
	AuthService    *services.AuthService
	UserService    *services.UserService
	ProductService *services.ProductService
	Logger         *slog.Logger
	RateLimiter    *middleware.RateLimiter
}

func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(deps.Logger))
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(deps.Config.AllowedOrigins))

	authHandler := handlers.NewAuthHandler(deps.AuthService)
	userHandler := handlers.NewUserHandler(deps.UserService)
	productHandler := handlers.NewProductHandler(deps.ProductService)

	authed := middleware.Auth(deps.TokenService, deps.UserStore)
	adminOnly := middleware.RequireRoles(models.RoleAdmin)
	staffOnly := middleware.RequireRoles(models.RoleAdmin, models.RoleModerator)

	router.GET("/healthz", handlers.Health)

	api := router.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			public := authGroup.Group("")
			public.Use(deps.RateLimiter.Middleware())
			public.POST("/register", authHandler.Register)
			public.POST("/login", authHandler.Login)
			public.POST("/refresh", authHandler.Refresh)

			private := authGroup.Group("")
			private.Use(authed)
			private.GET("/me", authHandler.Me)
			private.PUT("/change-password", authHandler.ChangePassword)
		}

		usersGroup := api.Group("/users")
		usersGroup.Use(authed)
		{
			usersGroup.GET("/me", userHandler.GetMe)
			usersGroup.PUT("/me", userHandler.UpdateMe)

			usersGroup.GET("", staffOnly, userHandler.List)
			usersGroup.GET("/stats/count", adminOnly, userHandler.Stats)
			usersGroup.GET("/:id", staffOnly, userHandler.GetByID)
			usersGroup.PUT("/:id", adminOnly, userHandler.Update)
			usersGroup.DELETE("/:id", adminOnly, userHandler.Delete)
			usersGroup.PATCH("/:id/activate", adminOnly, userHandler.Activate)
			usersGroup.PATCH("/:id/deactivate", adminOnly, userHandler.Deactivate)
			usersGroup.PATCH("/:id/verify", adminOnly, userHandler.Verify)
		}

		productsGroup := api.Group("/products")
		{
			productsGroup.GET("", productHandler.List)
			productsGroup.GET("/search", productHandler.Search)
			productsGroup.GET("/category/:category", productHandler.ByCategory)
			productsGroup.GET("/:id", productHandler.GetByID)

			mutations := productsGroup.Group("")
			mutations.Use(authed, staffOnly)
			mutations.POST("", productHandler.Create)
			mutations.PUT("/:id", productHandler.Update)
			mutations.PATCH("/:id", productHandler.Update)
			mutations.PATCH("/:id/stock", productHandler.UpdateStock)
			mutations.DELETE("/:id", productHandler.Delete)
		}
	}

	return router
}
