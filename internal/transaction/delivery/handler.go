package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/xniebuhr/FinanceTracker/internal/transaction/dto"
	"github.com/xniebuhr/FinanceTracker/internal/transaction/usecase"
	"github.com/xniebuhr/FinanceTracker/pkg/response"

	"github.com/gin-gonic/gin"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	txUsecase usecase.TransactionUsecase
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(txUsecase usecase.TransactionUsecase) *TransactionHandler {
	return &TransactionHandler{
		txUsecase: txUsecase,
	}
}

// GetTransactions returns a page of the authenticated user's transactions
// GET /api/transactions?limit=50&offset=0
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	userID := c.GetString("userID")

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 {
		limit = 50
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	txs, total, err := h.txUsecase.GetUserTransactions(userID, limit, offset)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "Failed to load transactions")
		return
	}

	response.OK(c, "Transactions retrieved successfully", gin.H{
		"transactions": txs,
		"total":        total,
	})
}

// GetTransactionByID returns a single transaction owned by the caller
// GET /api/transactions/:id
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	userID := c.GetString("userID")

	tx, err := h.txUsecase.GetTransactionByID(userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrTransactionNotFound) {
			response.Fail(c, http.StatusNotFound, "Transaction not found")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to load transaction")
		return
	}

	response.OK(c, "Transaction retrieved successfully", tx)
}

// CreateTransaction records a new transaction
// POST /api/transactions
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID := c.GetString("userID")

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err)
		return
	}

	tx, err := h.txUsecase.CreateTransaction(userID, &req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "Failed to create transaction")
		return
	}

	response.Created(c, "Transaction created successfully", tx)
}

// UpdateTransaction applies a partial update to an owned transaction
// PUT /api/transactions/:id
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	userID := c.GetString("userID")

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err)
		return
	}

	tx, err := h.txUsecase.UpdateTransaction(userID, c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrTransactionNotFound) {
			response.Fail(c, http.StatusNotFound, "Transaction not found")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to update transaction")
		return
	}

	response.OK(c, "Transaction updated successfully", tx)
}

// DeleteTransaction removes an owned transaction
// DELETE /api/transactions/:id
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.txUsecase.DeleteTransaction(userID, c.Param("id")); err != nil {
		if errors.Is(err, usecase.ErrTransactionNotFound) {
			response.Fail(c, http.StatusNotFound, "Transaction not found")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to delete transaction")
		return
	}

	response.OK(c, "Transaction deleted successfully", nil)
}
