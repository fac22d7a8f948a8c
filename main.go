package main

import (
	"log"

	api "github.com/xniebuhr/FinanceTracker/cmd/api"
	authdomain "github.com/xniebuhr/FinanceTracker/internal/auth/domain"
	authRepo "github.com/xniebuhr/FinanceTracker/internal/auth/repository"
	"github.com/xniebuhr/FinanceTracker/internal/auth/token"
	authUsecase "github.com/xniebuhr/FinanceTracker/internal/auth/usecase"
	txdomain "github.com/xniebuhr/FinanceTracker/internal/transaction/domain"
	txRepo "github.com/xniebuhr/FinanceTracker/internal/transaction/repository"
	txUsecase "github.com/xniebuhr/FinanceTracker/internal/transaction/usecase"
	"github.com/xniebuhr/FinanceTracker/pkg/config"
	"github.com/xniebuhr/FinanceTracker/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// A missing signing key must stop the process here, never surface as a
	// per-request failure.
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &txdomain.Transaction{}); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	transactionRepository := txRepo.NewGormTransactionRepository(db)

	// Initialize token issuer and use cases
	issuer := token.NewIssuer(cfg)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, issuer, transactionRepository)
	txUsecaseInstance := txUsecase.NewTransactionUsecase(transactionRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, txUsecaseInstance)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
