package usecase

import (
	"errors"

	"github.com/xniebuhr/FinanceTracker/internal/transaction/domain"
	"github.com/xniebuhr/FinanceTracker/internal/transaction/dto"
)

// ErrTransactionNotFound covers both a genuinely missing record and a record
// owned by someone else, so ownership cannot be probed by id.
var ErrTransactionNotFound = errors.New("transaction not found")

// TransactionUsecase defines the business logic for financial records. Every
// operation is scoped to the authenticated owner.
type TransactionUsecase interface {
	// CreateTransaction records a new transaction for the user
	CreateTransaction(userID string, req *dto.CreateTransactionRequest) (*domain.Transaction, error)

	// GetTransactionByID retrieves one record (with ownership check)
	GetTransactionByID(userID, id string) (*domain.Transaction, error)

	// GetUserTransactions returns a page of the user's records
	GetUserTransactions(userID string, limit, offset int) ([]*domain.Transaction, int64, error)

	// UpdateTransaction applies a partial update (with ownership check)
	UpdateTransaction(userID, id string, req *dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes one record (with ownership check)
	DeleteTransaction(userID, id string) error
}
