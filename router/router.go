package router

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/cafe-kiosk/config"
	"github.com/yeremiapane/cafe-kiosk/controllers"
	"github.com/yeremiapane/cafe-kiosk/middlewares"
	"github.com/yeremiapane/cafe-kiosk/services"
	"gorm.io/gorm"
)

// SetupRouter wires every kiosk endpoint under /api.
func SetupRouter(db *gorm.DB, cfg config.Config, orders *services.OrderService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(cfg.CORSOrigin))

	userCtrl := controllers.NewUserController(db, cfg.AdminEmail)
	menuCtrl := controllers.NewMenuController(db)
	orderCtrl := controllers.NewOrderController(orders)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api")

	// ----------------------------------------------------------------
	//                      AUTH
	// ----------------------------------------------------------------
	authGroup := api.Group("/auth")
	{
		limited := authGroup.Group("/")
		limited.Use(middlewares.NewStrictRateLimiter())
		limited.POST("/register", userCtrl.Register)
		limited.POST("/login", userCtrl.Login)

		authGroup.GET("/me", middlewares.AuthMiddleware(), userCtrl.GetProfile)
	}
	api.GET("/users/profile", middlewares.AuthMiddleware(), userCtrl.GetProfile)

	// ----------------------------------------------------------------
	//                      MENU
	// ----------------------------------------------------------------
	menu := api.Group("/menu")
	{
		menu.GET("", menuCtrl.GetMenu)
		menu.GET("/:id", menuCtrl.GetMenuItem)

		admin := menu.Group("")
		admin.Use(middlewares.AuthMiddleware(), middlewares.RequireOperator(db))
		admin.POST("", menuCtrl.CreateMenuItem)
		admin.PUT("/:id", menuCtrl.UpdateMenuItem)
		admin.DELETE("/:id", menuCtrl.DeleteMenuItem)
	}

	// ----------------------------------------------------------------
	//                      ORDERS
	// ----------------------------------------------------------------
	orderGroup := api.Group("/orders")
	{
		// Kiosk checkout works with or without login
		orderGroup.POST("/preview", middlewares.OptionalAuthMiddleware(), orderCtrl.PreviewOrder)
		orderGroup.POST("", middlewares.OptionalAuthMiddleware(), orderCtrl.CreateOrder)

		orderGroup.GET("/my-orders", middlewares.AuthMiddleware(), orderCtrl.GetMyOrders)
		orderGroup.GET("/all", middlewares.AuthMiddleware(), middlewares.RequireOperator(db), orderCtrl.GetAllOrders)
		orderGroup.GET("/:id", middlewares.AuthMiddleware(), middlewares.LoadCapabilities(db), orderCtrl.GetOrderByID)
		orderGroup.PUT("/:id/status", middlewares.AuthMiddleware(), middlewares.RequireOperator(db), orderCtrl.UpdateOrderStatus)
	}

	return r
}
