package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gaurisonawane07/StoreRater/configs"
	"github.com/gaurisonawane07/StoreRater/controllers"
	"github.com/gaurisonawane07/StoreRater/entity"
	"github.com/gaurisonawane07/StoreRater/middlewares"
	"github.com/gaurisonawane07/StoreRater/repository"
	"github.com/gaurisonawane07/StoreRater/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	storeRepo := repository.NewStoreRepository(db)
	ratingRepo := repository.NewRatingRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg)
	storeSvc := services.NewStoreService(storeRepo, userRepo)
	ratingSvc := services.NewRatingService(ratingRepo, storeRepo)
	adminSvc := services.NewAdminService(userRepo, storeRepo, ratingRepo)
	ownerSvc := services.NewOwnerService(storeRepo, ratingRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	storeCtrl := controllers.NewStoreController(storeSvc)
	ratingCtrl := controllers.NewRatingController(ratingSvc)
	adminCtrl := controllers.NewAdminController(adminSvc, storeSvc)
	ownerCtrl := controllers.NewOwnerController(ownerSvc)

	api := r.Group("/api")

	// Auth (public)
	auth := api.Group("/auth")
	{
		auth.POST("/register", authCtrl.Register)
		auth.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	auth.PUT("/password", middlewares.AuthMiddleware(cfg), authCtrl.UpdatePassword)
	auth.GET("/me", middlewares.AuthMiddleware(cfg), authCtrl.Me)

	// Stores (public, personalized when a token is present)
	api.GET("/stores", middlewares.OptionalAuthMiddleware(cfg), storeCtrl.List)

	// Ratings (user only)
	api.POST("/ratings", middlewares.AuthMiddleware(cfg, entity.RoleUser), ratingCtrl.Create)

	// Admin (admin only)
	admin := api.Group("/admin", middlewares.AuthMiddleware(cfg, entity.RoleAdmin))
	{
		admin.GET("/dashboard", adminCtrl.Dashboard)
		admin.GET("/users", adminCtrl.Users)
		admin.POST("/users", adminCtrl.CreateUser)
		admin.GET("/stores", adminCtrl.StoresList)
		admin.POST("/stores", adminCtrl.CreateStore)
	}

	// Owner (owner only)
	owner := api.Group("/owner", middlewares.AuthMiddleware(cfg, entity.RoleOwner))
	{
		owner.GET("/stores/ratings", ownerCtrl.StoreRatings)
	}
}
