package routes

import (
	"github.com/kasiam87/eCommerceApp/configs"
	"github.com/kasiam87/eCommerceApp/controllers"
	"github.com/kasiam87/eCommerceApp/middlewares"
	"github.com/kasiam87/eCommerceApp/repository"
	"github.com/kasiam87/eCommerceApp/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes wires repositories, services and controllers explicitly and
// mounts the REST surface. Only signup, login and the health probe are
// reachable without a token.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	cartRepo := repository.NewCartRepository(db)
	itemRepo := repository.NewItemRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	userSvc := services.NewUserService(db, userRepo)
	cartSvc := services.NewCartService(db, cartRepo, userRepo, itemRepo)
	itemSvc := services.NewItemService(itemRepo)
	orderSvc := services.NewOrderService(db, userRepo, cartRepo, orderRepo)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)

	// Controllers
	userCtrl := controllers.NewUserController(userSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	itemCtrl := controllers.NewItemController(itemSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	authCtrl := controllers.NewAuthController(authSvc)

	// Public
	r.POST("/login", authCtrl.Login)
	r.POST("/api/user/create", userCtrl.Create)

	// Protected
	api := r.Group("/api", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		api.GET("/user/id/:id", userCtrl.FindByID)
		api.GET("/user/:username", userCtrl.FindByUsername)

		api.POST("/cart/addToCart", cartCtrl.AddToCart)
		api.POST("/cart/removeFromCart", cartCtrl.RemoveFromCart)

		api.GET("/item", itemCtrl.List)
		api.GET("/item/:id", itemCtrl.FindByID)
		api.GET("/item/name/:name", itemCtrl.FindByName)

		api.POST("/order/submit/:username", orderCtrl.Submit)
		api.GET("/order/history/:username", orderCtrl.History)
	}
}
