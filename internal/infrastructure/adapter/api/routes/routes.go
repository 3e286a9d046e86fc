package routes

import (
	"net/http"

	coreport "pocket-wallet/internal/domain/port/core"
	"pocket-wallet/internal/infrastructure/adapter/api/handler"
	"pocket-wallet/internal/infrastructure/adapter/api/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	authHandler *handler.AuthHandler,
	cardHandler *handler.CardHandler,
	walletHandler *handler.WalletHandler,
	notificationHandler *handler.NotificationHandler,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := router.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/logout", authHandler.Logout)
		auth.POST("/forgot-password", authHandler.ForgotPassword)
		auth.POST("/new-password", authHandler.NewPassword)
		auth.GET("/session", authHandler.Session)
	}

	wallet := router.Group("/wallet")
	{
		wallet.GET("", walletHandler.Overview)
		wallet.GET("/transactions", walletHandler.Transactions)
		wallet.POST("/payments", walletHandler.AddPayment)

		wallet.GET("/cards", cardHandler.List)
		wallet.POST("/cards", cardHandler.Add)
		wallet.GET("/cards/:cardId", cardHandler.Get)
		wallet.DELETE("/cards/:cardId", cardHandler.Remove)
	}

	router.GET("/notifications", notificationHandler.Recent)
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(cors.Default())
}
