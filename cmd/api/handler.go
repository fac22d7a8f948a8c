package api

import (
	authUsecase "github.com/xniebuhr/FinanceTracker/internal/auth/usecase"
	txUsecase "github.com/xniebuhr/FinanceTracker/internal/transaction/usecase"

	"github.com/gin-gonic/gin"
)

// Handler owns the gin engine and the wired usecases.
type Handler struct {
	engine *gin.Engine
}

func NewHandler(authUc authUsecase.AuthUsecase, txUc txUsecase.TransactionUsecase) *Handler {
	engine := gin.Default()
	SetupRoutes(engine, authUc, txUc)
	return &Handler{engine: engine}
}

// Start serves HTTP on the given address until the listener fails.
func (h *Handler) Start(addr string) error {
	return h.engine.Run(addr)
}
