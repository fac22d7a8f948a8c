package api

import (
	"net/http"

	"github.com/xniebuhr/FinanceTracker/internal/auth/delivery"
	authUsecase "github.com/xniebuhr/FinanceTracker/internal/auth/usecase"
	txDelivery "github.com/xniebuhr/FinanceTracker/internal/transaction/delivery"
	txUsecase "github.com/xniebuhr/FinanceTracker/internal/transaction/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, txUc txUsecase.TransactionUsecase) {
	authHandler := delivery.NewAuthHandler(authUc)
	txHandler := txDelivery.NewTransactionHandler(txUc)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.Refresh)
			auth.POST("/forgot-password", authHandler.ForgotPassword)
			auth.POST("/reset-password", authHandler.ResetPassword)
			auth.DELETE("/delete", delivery.AuthMiddleware(authUc), authHandler.DeleteAccount)
		}

		// User profile routes (protected)
		users := api.Group("/users")
		users.Use(delivery.AuthMiddleware(authUc))
		{
			users.GET("/me", authHandler.Me)
			users.PUT("/update", authHandler.UpdateProfile)
			users.POST("/change-password", authHandler.ChangePassword)
		}

		// Transaction routes (protected)
		transactions := api.Group("/transactions")
		transactions.Use(delivery.AuthMiddleware(authUc))
		{
			transactions.GET("", txHandler.GetTransactions)
			transactions.POST("", txHandler.CreateTransaction)
			transactions.GET("/:id", txHandler.GetTransactionByID)
			transactions.PUT("/:id", txHandler.UpdateTransaction)
			transactions.DELETE("/:id", txHandler.DeleteTransaction)
		}
	}
}
