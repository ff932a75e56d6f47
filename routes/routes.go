package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/JusticeOpara/real-estate-hub/config"
	"github.com/JusticeOpara/real-estate-hub/handlers"
	"github.com/JusticeOpara/real-estate-hub/metrics"
	"github.com/JusticeOpara/real-estate-hub/middleware"
	"github.com/JusticeOpara/real-estate-hub/models"
)

func RegisterRoutes(e *echo.Echo, cfg *config.Config) {
	userController := handlers.NewUserController(cfg)
	propertyController := handlers.NewPropertyController(cfg)
	favoriteController := handlers.NewFavoriteController(cfg)
	adminController := handlers.NewAdminController(cfg)

	protect := middleware.JWTMiddleware(cfg.JWTSecret)
	activeOnly := middleware.RequireActiveUser(config.GetCollection(cfg.UsersCollection))
	sellerOrAdmin := middleware.RequireRole(models.RoleSeller, models.RoleAdmin)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	e.GET("/health", handlers.HealthCheck)
	e.GET("/metrics", metrics.Handler())

	api := e.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", userController.Register)
	auth.POST("/login", userController.Login)
	auth.GET("/me", userController.Me, protect, activeOnly)
	auth.PUT("/profile", userController.UpdateProfile, protect, activeOnly)
	auth.PUT("/password", userController.ChangePassword, protect, activeOnly)

	properties := api.Group("/properties")
	properties.GET("", propertyController.List)
	properties.POST("", propertyController.Create, protect, activeOnly, sellerOrAdmin)
	properties.GET("/my-properties", propertyController.MyProperties, protect, activeOnly, sellerOrAdmin)
	properties.GET("/:id", propertyController.Get)
	properties.PUT("/:id", propertyController.Update, protect, activeOnly, sellerOrAdmin)
	properties.DELETE("/:id", propertyController.Delete, protect, activeOnly, sellerOrAdmin)

	favorites := api.Group("/favorites", protect, activeOnly)
	favorites.GET("", favoriteController.List)
	favorites.POST("", favoriteController.Add)
	favorites.DELETE("/:propertyId", favoriteController.Remove)

	admin := api.Group("/admin", protect, activeOnly, adminOnly)
	admin.GET("/users", adminController.ListUsers)
	admin.PUT("/users/:id", adminController.UpdateUser)
	admin.DELETE("/users/:id", adminController.DeleteUser)
	admin.GET("/properties", adminController.ListProperties)
	admin.PUT("/properties/:id/status", adminController.UpdatePropertyStatus)
	admin.GET("/stats", adminController.Stats)
}
